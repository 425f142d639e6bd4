// Package phonetic holds the mnemonic alphabet used to turn digits into
// Russian words. Every digit owns a pair of consonants, vowels carry no
// value, and only dictionary entries tagged as nouns are eligible.
package phonetic
