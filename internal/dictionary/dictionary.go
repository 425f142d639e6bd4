package dictionary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Supported text encodings
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1251 = "windows-1251"
)

// DefaultTable is the SQLite table read when none is configured
const DefaultTable = "words"

// ErrUnsupportedEncoding is returned for an unknown text encoding name
var ErrUnsupportedEncoding = errors.New("unsupported dictionary encoding")

// Options controls how a dictionary file is read
type Options struct {
	// Encoding of a text dictionary, EncodingUTF8 when empty
	Encoding string
	// Table holds word and tag columns in a SQLite dictionary
	Table string
}

// Dictionary is an immutable word list in "<word>:<tag>\n" form.
// It is safe for concurrent use because nothing mutates it after Load.
type Dictionary struct {
	path    string
	text    string
	entries int
}

// Load reads the dictionary at path. SQLite files are recognised by their
// extension; everything else is treated as text in opts.Encoding.
func Load(path string, opts Options) (*Dictionary, error) {
	var (
		text string
		err  error
	)

	if isSQLite(path) {
		table := opts.Table
		if table == "" {
			table = DefaultTable
		}
		text, err = loadSQLite(path, table)
	} else {
		text, err = loadText(path, opts.Encoding)
	}
	if err != nil {
		return nil, err
	}

	return New(path, text), nil
}

// New wraps already decoded dictionary text. A leading byte-order mark is
// dropped, line endings are normalised to "\n" and a final newline is
// added so the first and last entries can match.
func New(path, text string) *Dictionary {
	text = strings.TrimPrefix(text, "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	entries := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			entries++
		}
	}

	return &Dictionary{
		path:    path,
		text:    text,
		entries: entries,
	}
}

// Text returns the full dictionary contents
func (d *Dictionary) Text() string {
	return d.text
}

// Entries returns the number of non-blank lines
func (d *Dictionary) Entries() int {
	return d.entries
}

// Path returns the file the dictionary was loaded from
func (d *Dictionary) Path() string {
	return d.path
}

func loadText(path, encoding string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read dictionary: %w", err)
	}

	text, err := Decode(data, encoding)
	if err != nil {
		return "", fmt.Errorf("failed to decode dictionary %s: %w", path, err)
	}
	return text, nil
}

// Decode converts raw dictionary bytes to a Go string
func Decode(data []byte, encoding string) (string, error) {
	switch normalizeEncoding(encoding) {
	case EncodingUTF8:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("dictionary is not valid UTF-8")
		}
		// Editors on Windows often prepend a byte-order mark
		decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	case EncodingWindows1251:
		decoded, err := charmap.Windows1251.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedEncoding, encoding)
	}
}

func normalizeEncoding(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8
	case "windows-1251", "cp1251", "win1251":
		return EncodingWindows1251
	default:
		return name
	}
}

func isSQLite(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}
