package testutil

import (
	"context"
	"fmt"
	"sync"
)

// MockTranslator mocks a translation backend
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error

	mu    sync.Mutex
	Calls []string
}

// Translate mocks translating a single word
func (m *MockTranslator) Translate(ctx context.Context, word string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, fmt.Sprintf("Translate: %s", word))
	m.mu.Unlock()

	if err, ok := m.Errors[word]; ok {
		return "", err
	}

	if translation, ok := m.Translations[word]; ok {
		return translation, nil
	}

	return fmt.Sprintf("mock translation of %s", word), nil
}

// CallCount returns how many times Translate was called
func (m *MockTranslator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
