// Package dictionary loads the part-of-speech word list that phoneword
// scans. A dictionary is read once at startup, from a text file in UTF-8
// or Windows-1251 or from a SQLite table, and is read-only afterwards.
package dictionary
