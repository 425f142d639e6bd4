package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"codeberg.org/snonux/phoneword/internal/batch"
	"codeberg.org/snonux/phoneword/internal/cli"
	"codeberg.org/snonux/phoneword/internal/dictionary"
	"codeberg.org/snonux/phoneword/internal/generator"
	"codeberg.org/snonux/phoneword/internal/phonetic"
	"codeberg.org/snonux/phoneword/internal/server"
	"codeberg.org/snonux/phoneword/internal/translation"
)

// LookupResult is the outcome for one number
type LookupResult struct {
	Number  string            `json:"number"`
	Label   string            `json:"label,omitempty"`
	Words   []string          `json:"words"`
	Glosses map[string]string `json:"glosses,omitempty"`
}

// Processor handles the main lookup and serving logic
type Processor struct {
	flags      *cli.Flags
	dict       *dictionary.Dictionary
	translator *translation.Translator

	stdout io.Writer
	stderr io.Writer
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags:  flags,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// LoadDictionary reads the configured dictionary. It must succeed before
// any lookup or the server can run.
func (p *Processor) LoadDictionary() error {
	if p.dict != nil {
		return nil
	}

	dict, err := dictionary.Load(p.flags.DictionaryPath, dictionary.Options{
		Encoding: p.flags.Encoding,
		Table:    p.flags.Table,
	})
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	fmt.Fprintf(p.stderr, "Loaded %d entries from %s\n", dict.Entries(), dict.Path())
	p.dict = dict
	return nil
}

// Serve loads the dictionary and runs the HTTP server until ctx is done
func (p *Processor) Serve(ctx context.Context) error {
	if err := p.LoadDictionary(); err != nil {
		return err
	}

	srv := server.New(p.dict, server.Config{
		Address:        p.flags.Address,
		AllowedOrigins: p.flags.AllowedOrigins,
	}, log.New(p.stderr, "", log.LstdFlags))

	return srv.ListenAndServe(ctx)
}

// LookupNumbers prints the words for numbers given on the command line
func (p *Processor) LookupNumbers(ctx context.Context, numbers []string) error {
	entries := make([]batch.NumberEntry, 0, len(numbers))
	for _, n := range numbers {
		entries = append(entries, batch.NumberEntry{Number: batch.NormalizeNumber(n)})
	}
	return p.lookup(ctx, entries)
}

// LookupBatch prints the words for every number in the batch file
func (p *Processor) LookupBatch(ctx context.Context) error {
	entries, err := batch.ReadNumbersFile(p.flags.BatchFile)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no numbers found in %s", p.flags.BatchFile)
	}
	return p.lookup(ctx, entries)
}

// DecodeWords prints the number each word encodes. Words are lowercased
// first; a word with a letter outside every consonant class is reported
// instead of failing the whole run.
func (p *Processor) DecodeWords(words []string) error {
	for _, word := range words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			return fmt.Errorf("word cannot be empty")
		}

		digits, ok := phonetic.Project(word)
		switch {
		case !ok:
			fmt.Fprintf(p.stdout, "%s: cannot be encoded\n", word)
		case digits == "":
			fmt.Fprintf(p.stdout, "%s: no consonants\n", word)
		default:
			fmt.Fprintf(p.stdout, "%s: %s\n", word, digits)
		}
	}
	return nil
}

func (p *Processor) lookup(ctx context.Context, entries []batch.NumberEntry) error {
	// Validate all numbers before doing any work
	for _, entry := range entries {
		if err := phonetic.ValidateNumber(entry.Number); err != nil {
			return fmt.Errorf("invalid number '%s': %w", entry.Number, err)
		}
	}

	if err := p.LoadDictionary(); err != nil {
		return err
	}

	if p.flags.Translate && p.translator == nil {
		t, err := translation.NewTranslator(translation.Config{
			Provider:  p.flags.TranslateProvider,
			OpenAIKey: cli.GetOpenAIKey(),
			GeminiKey: cli.GetGeminiKey(),
			Model:     p.flags.TranslateModel,
		})
		if err != nil {
			return err
		}
		p.translator = t
	}

	results := make([]LookupResult, 0, len(entries))
	for _, entry := range entries {
		words, err := generator.Generate(entry.Number, p.dict.Text())
		if err != nil {
			return fmt.Errorf("failed to generate words for %s: %w", entry.Number, err)
		}

		result := LookupResult{
			Number: entry.Number,
			Label:  entry.Label,
			Words:  words,
		}

		if p.translator != nil && len(words) > 0 {
			glosses, err := p.translator.TranslateAll(ctx, words)
			if err != nil {
				// Don't fail the lookup if translation fails
				fmt.Fprintf(p.stderr, "Warning: Translation failed for %s: %v\n", entry.Number, err)
			}
			result.Glosses = make(map[string]string, len(glosses))
			for _, g := range glosses {
				if g.Translation != "" {
					result.Glosses[g.Word] = g.Translation
				}
			}
		}

		results = append(results, result)
	}

	if p.flags.JSONOutput {
		enc := json.NewEncoder(p.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		p.printResult(r)
	}
	return nil
}

func (p *Processor) printResult(r LookupResult) {
	header := r.Number
	if r.Label != "" {
		header = fmt.Sprintf("%s (%s)", r.Number, r.Label)
	}

	if len(r.Words) == 0 {
		fmt.Fprintf(p.stdout, "%s: no words found\n", header)
		return
	}

	if len(r.Glosses) == 0 {
		fmt.Fprintf(p.stdout, "%s: %s\n", header, strings.Join(r.Words, ", "))
		return
	}

	fmt.Fprintf(p.stdout, "%s:\n", header)
	for _, w := range r.Words {
		if gloss, ok := r.Glosses[w]; ok {
			fmt.Fprintf(p.stdout, "  %s = %s\n", w, gloss)
		} else {
			fmt.Fprintf(p.stdout, "  %s\n", w)
		}
	}
}
