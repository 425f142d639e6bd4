package generator

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"codeberg.org/snonux/phoneword/internal/phonetic"
)

// vowelRun matches any number of vowels, including none
const vowelRun = "[" + phonetic.Vowels + "]*"

// BuildPattern builds the expression for number: optional vowels, then one
// consonant of each digit's class followed by optional vowels, then the
// noun marker and the line break. The match must start at a line start so
// that only whole dictionary words are returned.
func BuildPattern(number string) (*regexp.Regexp, error) {
	if err := phonetic.ValidateNumber(number); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("(?m)^")
	b.WriteString(vowelRun)
	for i := 0; i < len(number); i++ {
		pair := phonetic.Class(number[i])
		b.WriteString("[")
		b.WriteRune(pair[0])
		b.WriteRune(pair[1])
		b.WriteString("]")
		b.WriteString(vowelRun)
	}
	b.WriteString(regexp.QuoteMeta(phonetic.NounMarker))
	b.WriteString(`\n`)

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern for %s: %w", number, err)
	}
	return re, nil
}

// Generate returns the sorted, de-duplicated nouns in corpus that encode
// number. An empty corpus or a number without matches yields an empty,
// non-nil slice.
func Generate(number, corpus string) ([]string, error) {
	re, err := BuildPattern(number)
	if err != nil {
		return nil, err
	}
	return Scan(re, corpus), nil
}

// Scan collects the word stem of every non-overlapping match of re.
func Scan(re *regexp.Regexp, corpus string) []string {
	seen := make(map[string]struct{})
	for _, m := range re.FindAllString(corpus, -1) {
		stem := strings.TrimRight(m, " \t\r\n")
		stem = strings.TrimSuffix(stem, phonetic.NounMarker)
		seen[stem] = struct{}{}
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
