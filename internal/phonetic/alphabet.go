package phonetic

import (
	"errors"
	"fmt"
	"strings"
)

// Vowels are skipped when a word is read back as digits.
const Vowels = "уеыаоэёяию"

// NounMarker terminates every eligible dictionary line.
const NounMarker = ":S"

// ErrNotDigit is returned when a number contains anything but 0-9
var ErrNotDigit = errors.New("number must contain only digits 0-9")

// classes maps each digit to its consonant pair. The pairs are disjoint.
var classes = [10][2]rune{
	{'м', 'н'}, // 0
	{'г', 'ж'}, // 1
	{'д', 'т'}, // 2
	{'к', 'х'}, // 3
	{'ч', 'щ'}, // 4
	{'п', 'б'}, // 5
	{'ш', 'л'}, // 6
	{'с', 'з'}, // 7
	{'в', 'ф'}, // 8
	{'р', 'ц'}, // 9
}

// digitOf is the reverse of classes
var digitOf = func() map[rune]byte {
	m := make(map[rune]byte, 20)
	for d, pair := range classes {
		for _, r := range pair {
			m[r] = byte('0' + d)
		}
	}
	return m
}()

// Class returns the consonant pair for digit d ('0'..'9').
// Callers must validate the number first; any other byte panics.
func Class(d byte) [2]rune {
	if d < '0' || d > '9' {
		panic(fmt.Sprintf("phonetic: %q is not a digit", d))
	}
	return classes[d-'0']
}

// IsVowel reports whether r is one of the ignored vowels
func IsVowel(r rune) bool {
	return strings.ContainsRune(Vowels, r)
}

// DigitFor returns the digit a consonant stands for.
func DigitFor(r rune) (byte, bool) {
	d, ok := digitOf[r]
	return d, ok
}

// Project reads a word back as the digit sequence it encodes. Vowels are
// skipped. It returns false when the word holds a letter outside every
// consonant class (for example 'й' or a soft sign).
func Project(word string) (string, bool) {
	var b strings.Builder
	for _, r := range word {
		if IsVowel(r) {
			continue
		}
		d, ok := DigitFor(r)
		if !ok {
			return "", false
		}
		b.WriteByte(d)
	}
	return b.String(), true
}

// ValidateNumber checks that s is a non-empty run of ASCII digits
func ValidateNumber(s string) error {
	if s == "" {
		return fmt.Errorf("number cannot be empty")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("invalid character %q at position %d: %w", s[i], i, ErrNotDigit)
		}
	}
	return nil
}
