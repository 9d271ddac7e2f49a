package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/file-translator/file-translator/internal/config"
	"github.com/file-translator/file-translator/internal/db"
	"github.com/file-translator/file-translator/internal/encode"
	"github.com/file-translator/file-translator/internal/logging"
	"github.com/file-translator/file-translator/internal/secrets"
	"github.com/file-translator/file-translator/internal/translate"
	"github.com/file-translator/file-translator/internal/workflow"
)

// app is everything a command needs once startup checks have passed.
type app struct {
	cfg        *config.Config
	log        zerolog.Logger
	secrets    secrets.Provider
	controller *workflow.Controller
	database   *db.Database
}

func (a *app) Close() {
	if a.database != nil {
		a.database.Close()
	}
}

// loadConfig resolves and validates the configuration.
func loadConfig(v *viper.Viper, flags *Flags) (*config.Config, error) {
	cfg, err := config.Load(v, flags.CfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// secretsProvider returns the environment override chained with the
// configured backend. The database is returned when the sqlite backend is used.
func secretsProvider(cfg *config.Config) (secrets.Provider, *db.Database, error) {
	env := secrets.NewEnvProvider(secrets.EnvVar)
	switch cfg.SecretsBackend {
	case "sqlite":
		database, err := db.NewSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open settings database: %w", err)
		}
		return secrets.Chain{env, secrets.NewStoreProvider(database, cfg.DBPath)}, database, nil
	default:
		return secrets.Chain{env, secrets.NewFileProvider(cfg.SecretsPath)}, nil, nil
	}
}

// newApp performs the startup checks. Any error here is a configuration
// error and no interaction may begin.
func newApp(v *viper.Viper, flags *Flags, logOut io.Writer) (*app, error) {
	cfg, err := loadConfig(v, flags)
	if err != nil {
		return nil, err
	}

	log := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: logOut,
	})

	provider, database, err := secretsProvider(cfg)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: log, secrets: provider, database: database}

	apiKey, err := provider.APIKey()
	if err != nil {
		a.Close()
		return nil, err
	}

	translator, err := translate.New(cfg.Engine, apiKey, cfg.EngineURL)
	if err != nil {
		a.Close()
		return nil, err
	}

	encoder := encode.NewEncoder(encode.PDFOptions{FontPath: cfg.PDFFontPath})
	if cfg.PDFFontPath != "" {
		if _, err := encoder.Encode("font check", translate.SourceLocale, encode.FormatPDF); err != nil {
			a.Close()
			return nil, fmt.Errorf("pdf font %s is not usable: %w", cfg.PDFFontPath, err)
		}
	}
	a.controller = workflow.NewController(translator, encoder, log)

	log.Info().
		Str("engine", translator.Name()).
		Str("secrets", provider.Location()).
		Msg("configuration loaded")
	return a, nil
}
