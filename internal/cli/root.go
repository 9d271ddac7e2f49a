// Package cli wires configuration, secrets and the workflow into the
// file-translator commands.
package cli

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/file-translator/file-translator/internal/config"
)

// Flags holds the persistent flags shared by every command.
type Flags struct {
	CfgFile string
	NoColor bool
}

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the server.
func NewRootCommand() *cobra.Command {
	flags := &Flags{}
	v := config.New()

	rootCmd := &cobra.Command{
		Use:   "file-translator",
		Short: "Universal File Translator - translate txt, srt and pdf files",
		Long: `file-translator translates English text files, subtitles and PDFs into
Urdu, Arabic, Turkish, French, Hindi, German, Chinese or Spanish and
returns the result as a PDF, TXT or SRT download.

Examples:
  file-translator                                  # Serve the web page on :8080
  file-translator translate notes.txt --to fr      # Translate a local file
  file-translator secrets set --secrets-backend sqlite   # Store the API key in SQLite`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, v, flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.CfgFile, "config", "c", "", "config file (yaml or toml)")
	pf.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")
	pf.String("engine", "lingo", "translation engine: "+joinList(config.Engines))
	pf.String("engine-url", "", "override the engine's API base URL")
	pf.String("secrets-backend", "file", "where the API key is stored: "+joinList(config.SecretsBackends))
	pf.String("secrets-path", ".streamlit/secrets.toml", "TOML secrets file holding api_key_val")
	pf.String("data-path", "./data", "directory for the settings database")
	pf.String("pdf-font", "", "TrueType font used for PDF output (needed for non-Latin scripts)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "json", "log format: json or console")
	pf.Int("port", 8080, "HTTP port")
	pf.String("cors-origins", "*", "comma-separated allowed CORS origins")
	bindFlagsToViper(v, pf)

	rootCmd.AddCommand(
		newServeCommand(v, flags),
		newTranslateCommand(v, flags),
		newLanguagesCommand(),
		newSecretsCommand(v, flags),
	)
	return rootCmd
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"engine":          "engine",
	"engine-url":      "engine_url",
	"secrets-backend": "secrets_backend",
	"secrets-path":    "secrets_path",
	"data-path":       "data_path",
	"pdf-font":        "pdf_font_path",
	"log-level":       "log_level",
	"log-format":      "log_format",
	"port":            "port",
	"cors-origins":    "cors_origins",
}

func bindFlagsToViper(v *viper.Viper, set *pflag.FlagSet) {
	set.VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.BindPFlag(key, f)
		}
	})
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
