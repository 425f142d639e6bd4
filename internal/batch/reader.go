package batch

import (
	"fmt"
	"os"
	"strings"
)

// NumberEntry is one line of a batch file
type NumberEntry struct {
	Number string
	// Label is an optional note such as "office phone"
	Label string
}

// ReadNumbersFile reads numbers from a file, one per line.
// Supports formats:
// - Number only: "2095550101"
// - With label: "2095550101 = office phone"
// - Phone formatting: "+7 (495) 123-45-67" (separators are dropped)
// Blank lines and lines starting with '#' are skipped.
func ReadNumbersFile(filename string) ([]NumberEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []NumberEntry
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		number, label, _ := strings.Cut(line, "=")
		number = NormalizeNumber(number)
		if number == "" {
			continue
		}

		entries = append(entries, NumberEntry{
			Number: number,
			Label:  strings.TrimSpace(label),
		})
	}

	return entries, nil
}

// NormalizeNumber drops the separators people use when writing phone
// numbers. Other characters are kept so that validation can reject them.
func NormalizeNumber(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '(', ')', '.', '+':
			return -1
		}
		return r
	}, s)
}
