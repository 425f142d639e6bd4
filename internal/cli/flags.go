package cli

import (
	"codeberg.org/snonux/phoneword/internal/dictionary"
	"codeberg.org/snonux/phoneword/internal/server"
	"codeberg.org/snonux/phoneword/internal/translation"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile        string
	DictionaryPath string
	Encoding       string
	Table          string

	// Server flags
	Address        string
	AllowedOrigins []string

	// Lookup flags
	BatchFile  string
	JSONOutput bool

	// Translation flags
	Translate         bool
	TranslateProvider string
	TranslateModel    string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		DictionaryPath:    "russian-POS.txt",
		Encoding:          dictionary.EncodingUTF8,
		Table:             dictionary.DefaultTable,
		Address:           server.DefaultAddress,
		AllowedOrigins:    []string{"*"},
		TranslateProvider: translation.ProviderOpenAI,
	}
}
