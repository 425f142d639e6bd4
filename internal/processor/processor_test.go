package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/phoneword/internal/cli"
	"codeberg.org/snonux/phoneword/internal/phonetic"
	"codeberg.org/snonux/phoneword/internal/testutil"
	"codeberg.org/snonux/phoneword/internal/translation"
)

func newTestProcessor(t *testing.T) (*Processor, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	flags := cli.NewFlags()
	flags.DictionaryPath = testutil.WriteDictionary(t, t.TempDir(), testutil.SampleDictionary...)

	p := NewProcessor(flags)
	var stdout, stderr bytes.Buffer
	p.stdout = &stdout
	p.stderr = &stderr
	return p, &stdout, &stderr
}

func TestNewProcessor(t *testing.T) {
	flags := cli.NewFlags()
	p := NewProcessor(flags)

	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
	if p.flags != flags {
		t.Error("Processor flags not set correctly")
	}
	if p.dict != nil {
		t.Error("Dictionary should be loaded lazily")
	}
}

func TestLookupNumbers(t *testing.T) {
	p, stdout, stderr := newTestProcessor(t)

	if err := p.LookupNumbers(context.Background(), []string{"20", "4444"}); err != nil {
		t.Fatalf("LookupNumbers() error = %v", err)
	}

	want := "20: атом, дама, дом, том\n4444: no words found\n"
	if stdout.String() != want {
		t.Errorf("Output = %q, want %q", stdout.String(), want)
	}
	if !strings.Contains(stderr.String(), "Loaded 10 entries") {
		t.Errorf("Expected load message, got %q", stderr.String())
	}
}

func TestLookupNumbers_InvalidNumber(t *testing.T) {
	p, stdout, _ := newTestProcessor(t)

	err := p.LookupNumbers(context.Background(), []string{"20", "2x"})
	if !errors.Is(err, phonetic.ErrNotDigit) {
		t.Errorf("Expected ErrNotDigit, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Error("Nothing should be printed when validation fails")
	}
	if p.dict != nil {
		t.Error("Dictionary should not be loaded for invalid input")
	}
}

func TestLookupNumbers_MissingDictionary(t *testing.T) {
	p, _, _ := newTestProcessor(t)
	p.flags.DictionaryPath = filepath.Join(t.TempDir(), "missing.txt")

	if err := p.LookupNumbers(context.Background(), []string{"20"}); err == nil {
		t.Error("Expected error for missing dictionary")
	}
}

func TestLookupBatch_JSON(t *testing.T) {
	p, stdout, _ := newTestProcessor(t)
	p.flags.JSONOutput = true
	p.flags.BatchFile = filepath.Join(t.TempDir(), "numbers.txt")
	testutil.CreateTestFile(t, p.flags.BatchFile, []byte("# codes\n20 = door\n7\n"))

	if err := p.LookupBatch(context.Background()); err != nil {
		t.Fatalf("LookupBatch() error = %v", err)
	}

	var results []LookupResult
	if err := json.Unmarshal(stdout.Bytes(), &results); err != nil {
		t.Fatalf("Invalid JSON output: %v\n%s", err, stdout.String())
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Label != "door" || len(results[0].Words) != 4 {
		t.Errorf("Unexpected first result: %+v", results[0])
	}
	if results[1].Number != "7" || len(results[1].Words) != 1 || results[1].Words[0] != "оса" {
		t.Errorf("Unexpected second result: %+v", results[1])
	}
}

func TestLookupBatch_Empty(t *testing.T) {
	p, _, _ := newTestProcessor(t)
	p.flags.BatchFile = filepath.Join(t.TempDir(), "numbers.txt")
	testutil.CreateTestFile(t, p.flags.BatchFile, []byte("# nothing\n"))

	if err := p.LookupBatch(context.Background()); err == nil {
		t.Error("Expected error for batch file without numbers")
	}
}

func TestLookupNumbers_WithTranslation(t *testing.T) {
	p, stdout, stderr := newTestProcessor(t)
	p.flags.Translate = true

	mock := &testutil.MockTranslator{
		Translations: map[string]string{"дом": "house", "том": "volume", "атом": "atom"},
		Errors:       map[string]error{"дама": errors.New("rate limited")},
	}
	p.translator = translation.NewWithBackend(mock)

	if err := p.LookupNumbers(context.Background(), []string{"20"}); err != nil {
		t.Fatalf("LookupNumbers() error = %v", err)
	}

	want := "20:\n  атом = atom\n  дама\n  дом = house\n  том = volume\n"
	if stdout.String() != want {
		t.Errorf("Output = %q, want %q", stdout.String(), want)
	}
	if !strings.Contains(stderr.String(), "Warning: Translation failed for 20") {
		t.Errorf("Expected translation warning, got %q", stderr.String())
	}
}

func TestDecodeWords(t *testing.T) {
	p, stdout, _ := newTestProcessor(t)

	if err := p.DecodeWords([]string{"Дом", "ворота", "соль", "ая"}); err != nil {
		t.Fatalf("DecodeWords() error = %v", err)
	}

	want := "дом: 20\nворота: 892\nсоль: cannot be encoded\nая: no consonants\n"
	if stdout.String() != want {
		t.Errorf("Output = %q, want %q", stdout.String(), want)
	}
	if p.dict != nil {
		t.Error("Decoding should not load the dictionary")
	}
}

func TestDecodeWords_RoundTrip(t *testing.T) {
	p, stdout, _ := newTestProcessor(t)

	if err := p.LookupNumbers(context.Background(), []string{"892"}); err != nil {
		t.Fatalf("LookupNumbers() error = %v", err)
	}
	stdout.Reset()

	if err := p.DecodeWords([]string{"ворота"}); err != nil {
		t.Fatalf("DecodeWords() error = %v", err)
	}
	if stdout.String() != "ворота: 892\n" {
		t.Errorf("Output = %q", stdout.String())
	}
}

func TestDecodeWords_Empty(t *testing.T) {
	p, _, _ := newTestProcessor(t)

	if err := p.DecodeWords([]string{"  "}); err == nil {
		t.Error("Expected error for empty word")
	}
}
