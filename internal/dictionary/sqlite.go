package dictionary

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// loadSQLite renders every (word, tag) row of table as a dictionary line.
// The database is opened read-only.
func loadSQLite(path, table string) (string, error) {
	if !validIdentifier(table) {
		return "", fmt.Errorf("invalid table name: %q", table)
	}

	// sql.Open does not touch the file, so check it exists first
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("failed to read dictionary: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return "", fmt.Errorf("failed to open dictionary database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(fmt.Sprintf("SELECT word, tag FROM %s ORDER BY rowid", table))
	if err != nil {
		return "", fmt.Errorf("failed to query dictionary table %s: %w", table, err)
	}
	defer rows.Close()

	var b strings.Builder
	for rows.Next() {
		var word, tag string
		if err := rows.Scan(&word, &tag); err != nil {
			return "", fmt.Errorf("failed to read dictionary row: %w", err)
		}
		b.WriteString(strings.TrimSpace(word))
		b.WriteString(":")
		b.WriteString(strings.TrimSpace(tag))
		b.WriteString("\n")
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("failed to read dictionary rows: %w", err)
	}

	return b.String(), nil
}

func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
