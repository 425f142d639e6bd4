package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/phoneword/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phoneword",
		Short: "Mnemonic word generator for numbers",
		Long: `phoneword turns numbers into Russian nouns that are easy to remember.

Every digit stands for a pair of consonants, vowels are free, so a
number can be read back from the consonants of the word.

Examples:
  phoneword serve                         # Start the HTTP API and web page
  phoneword lookup 20                     # дом, том, ...
  phoneword lookup --batch numbers.txt    # Process numbers from a file
  phoneword lookup --translate 892        # Add English glosses
  phoneword decode ворота                 # 892`,
		Version:       internal.Version,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.phoneword.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flags.DictionaryPath, "dictionary", "d", flags.DictionaryPath, "Dictionary file (text, or SQLite with .db/.sqlite extension)")
	rootCmd.PersistentFlags().StringVar(&flags.Encoding, "encoding", flags.Encoding, "Text dictionary encoding: utf-8 or windows-1251")
	rootCmd.PersistentFlags().StringVar(&flags.Table, "table", flags.Table, "Table holding word and tag columns in a SQLite dictionary")

	bindPersistentFlags(rootCmd)

	return rootCmd
}

// CreateServeCommand creates the serve subcommand. The caller sets RunE.
func CreateServeCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve generated words over HTTP",
		Args:  cobra.NoArgs,
	}

	cmd.Flags().StringVarP(&flags.Address, "address", "a", flags.Address, "Listen address")
	cmd.Flags().StringSliceVar(&flags.AllowedOrigins, "allowed-origin", flags.AllowedOrigins, "CORS allowed origins")

	viper.BindPFlag("server.address", cmd.Flags().Lookup("address"))
	viper.BindPFlag("server.allowed_origins", cmd.Flags().Lookup("allowed-origin"))

	return cmd
}

// CreateLookupCommand creates the lookup subcommand. The caller sets RunE.
func CreateLookupCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup [number...]",
		Short: "Print words for one or more numbers",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && flags.BatchFile == "" {
				return fmt.Errorf("please provide a number or use --batch flag")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.BatchFile, "batch", "b", "", "Process numbers from file (one per line)")
	cmd.Flags().BoolVar(&flags.JSONOutput, "json", false, "Print results as JSON")
	cmd.Flags().BoolVarP(&flags.Translate, "translate", "t", false, "Add English translations of the words")
	cmd.Flags().StringVar(&flags.TranslateProvider, "translate-provider", flags.TranslateProvider, "Translation provider: openai or gemini")
	cmd.Flags().StringVar(&flags.TranslateModel, "translate-model", "", "Model used for translations (provider default when empty)")

	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("translate-provider"))
	viper.BindPFlag("translation.model", cmd.Flags().Lookup("translate-model"))

	return cmd
}

// CreateDecodeCommand creates the decode subcommand. The caller sets RunE.
func CreateDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode word...",
		Short: "Print the number a word encodes",
		Args:  cobra.MinimumNArgs(1),
	}
}

func bindPersistentFlags(cmd *cobra.Command) {
	viper.BindPFlag("dictionary.path", cmd.PersistentFlags().Lookup("dictionary"))
	viper.BindPFlag("dictionary.encoding", cmd.PersistentFlags().Lookup("encoding"))
	viper.BindPFlag("dictionary.table", cmd.PersistentFlags().Lookup("table"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".phoneword" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".phoneword")
	}

	// Environment variables, e.g. PHONEWORD_SERVER_ADDRESS
	viper.SetEnvPrefix("PHONEWORD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies configured values into flags. Explicit command-line
// flags win over the config file and environment because they are bound.
func ApplyConfig(flags *Flags) {
	if v := viper.GetString("dictionary.path"); v != "" {
		flags.DictionaryPath = v
	}
	if v := viper.GetString("dictionary.encoding"); v != "" {
		flags.Encoding = v
	}
	if v := viper.GetString("dictionary.table"); v != "" {
		flags.Table = v
	}
	if v := viper.GetString("server.address"); v != "" {
		flags.Address = v
	}
	if v := viper.GetStringSlice("server.allowed_origins"); len(v) > 0 {
		flags.AllowedOrigins = v
	}
	if v := viper.GetString("translation.provider"); v != "" {
		flags.TranslateProvider = v
	}
	if v := viper.GetString("translation.model"); v != "" {
		flags.TranslateModel = v
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.gemini_key")
}
