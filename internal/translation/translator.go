package translation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// Supported providers
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// ErrNoAPIKey is returned when the selected provider has no key configured
var ErrNoAPIKey = errors.New("API key not found")

// Backend translates one Russian word to English
type Backend interface {
	Translate(ctx context.Context, word string) (string, error)
}

// Config selects and configures the translation backend
type Config struct {
	Provider  string
	OpenAIKey string
	GeminiKey string
	Model     string
	Timeout   time.Duration
}

// Gloss pairs a word with its English translation
type Gloss struct {
	Word        string
	Translation string
}

// Translator handles Russian to English translation
type Translator struct {
	backend Backend
	breaker *gobreaker.CircuitBreaker
	cache   *TranslationCache
	timeout time.Duration
}

// NewTranslator creates a translator for the configured provider
func NewTranslator(cfg Config) (*Translator, error) {
	var backend Backend
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderOpenAI:
		backend = newOpenAIBackend(cfg.OpenAIKey, cfg.Model)
	case ProviderGemini:
		backend = newGeminiBackend(cfg.GeminiKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", cfg.Provider)
	}

	t := NewWithBackend(backend)
	if cfg.Timeout > 0 {
		t.timeout = cfg.Timeout
	}
	return t, nil
}

// NewWithBackend wraps an arbitrary backend with caching and a breaker
func NewWithBackend(backend Backend) *Translator {
	settings := gobreaker.Settings{
		Name:        "translation",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		// A missing key is a configuration problem, not an unhealthy backend
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoAPIKey)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fmt.Fprintf(os.Stderr, "Circuit breaker %s: %s -> %s\n", name, from, to)
		},
	}

	return &Translator{
		backend: backend,
		breaker: gobreaker.NewCircuitBreaker(settings),
		cache:   NewTranslationCache(),
		timeout: 30 * time.Second,
	}
}

// TranslateWord translates a Russian word to English
func (t *Translator) TranslateWord(ctx context.Context, word string) (string, error) {
	if cached, ok := t.cache.Get(word); ok {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	result, err := t.breaker.Execute(func() (interface{}, error) {
		return t.backend.Translate(ctx, word)
	})
	if err != nil {
		return "", err
	}

	translation := strings.TrimSpace(result.(string))
	if translation == "" {
		return "", fmt.Errorf("no translation returned for %s", word)
	}

	t.cache.Add(word, translation)
	return translation, nil
}

// TranslateAll glosses every word. Words that fail keep an empty
// translation; the failures are joined into the returned error. Once the
// breaker opens the remaining words are not attempted.
func (t *Translator) TranslateAll(ctx context.Context, words []string) ([]Gloss, error) {
	glosses := make([]Gloss, len(words))
	for i, word := range words {
		glosses[i].Word = word
	}

	var errs []error
	for i, word := range words {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		translation, err := t.TranslateWord(ctx, word)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", word, err))
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, ErrNoAPIKey) {
				break
			}
			continue
		}
		glosses[i].Translation = translation
	}

	return glosses, errors.Join(errs...)
}

// Cache returns the translations gathered so far
func (t *Translator) Cache() *TranslationCache {
	return t.cache
}

func prompt(word string) string {
	return fmt.Sprintf("Translate the Russian word '%s' to English. Respond with only the English translation, nothing else.", word)
}

// TranslationCache stores translations in memory for batch operations
type TranslationCache struct {
	mu           sync.RWMutex
	translations map[string]string
}

// NewTranslationCache creates a new translation cache
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		translations: make(map[string]string),
	}
}

// Add adds a translation to the cache
func (tc *TranslationCache) Add(word, translation string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.translations[word] = translation
}

// Get retrieves a translation from the cache
func (tc *TranslationCache) Get(word string) (string, bool) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	translation, ok := tc.translations[word]
	return translation, ok
}

// GetAll returns all cached translations
func (tc *TranslationCache) GetAll() map[string]string {
	tc.mu.RLock()
	defer tc.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]string, len(tc.translations))
	for k, v := range tc.translations {
		result[k] = v
	}
	return result
}
