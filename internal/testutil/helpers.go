package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// SampleDictionary is a small noun list used across package tests
var SampleDictionary = []string{
	"дом:S",
	"том:S",
	"атом:S",
	"дама:S",
	"бег:V",
	"тонна:S",
	"ворота:S",
	"оса:S",
	"сыр:S",
	"дым:A",
}

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// WriteDictionary writes lines as a UTF-8 dictionary file and returns its path
func WriteDictionary(t *testing.T, dir string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, "dictionary.txt")
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	CreateTestFile(t, path, []byte(content))
	return path
}

// CreateSQLiteDictionary creates a SQLite database with a words table
// filled from "word:tag" lines and returns its path
func CreateSQLiteDictionary(t *testing.T, dir, table string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, "dictionary.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE " + table + " (word TEXT NOT NULL, tag TEXT NOT NULL)"); err != nil {
		t.Fatalf("Failed to create table %s: %v", table, err)
	}

	for _, line := range lines {
		word, tag, _ := strings.Cut(line, ":")
		if _, err := db.Exec("INSERT INTO "+table+" (word, tag) VALUES (?, ?)", word, tag); err != nil {
			t.Fatalf("Failed to insert %q: %v", line, err)
		}
	}

	return path
}
