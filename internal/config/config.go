package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           int
	DataPath       string
	DBPath         string
	Engine         string
	EngineURL      string
	SecretsBackend string
	SecretsPath    string
	PDFFontPath    string
	CORSOrigins    []string
	LogLevel       string
	LogFormat      string
}

// Engines lists the translation engines a process can be configured with.
var Engines = []string{"lingo", "openai", "gemini", "deepl"}

// SecretsBackends lists where the API key may be stored.
var SecretsBackends = []string{"file", "sqlite"}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("data_path", "./data")
	v.SetDefault("db_path", "")
	v.SetDefault("engine", "lingo")
	v.SetDefault("engine_url", "")
	v.SetDefault("secrets_backend", "file")
	v.SetDefault("secrets_path", filepath.Join(".streamlit", "secrets.toml"))
	v.SetDefault("pdf_font_path", "")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

// New returns a viper instance wired to defaults and environment variables.
// Keys map to upper-cased env names (port -> PORT, secrets_path -> SECRETS_PATH).
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves the configuration from v, reading cfgFile first when given.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	dataPath := v.GetString("data_path")
	dbPath := v.GetString("db_path")
	if dbPath == "" {
		dbPath = filepath.Join(dataPath, "translator.db")
	}

	cfg := &Config{
		Port:           v.GetInt("port"),
		DataPath:       dataPath,
		DBPath:         dbPath,
		Engine:         strings.ToLower(v.GetString("engine")),
		EngineURL:      v.GetString("engine_url"),
		SecretsBackend: strings.ToLower(v.GetString("secrets_backend")),
		SecretsPath:    v.GetString("secrets_path"),
		PDFFontPath:    v.GetString("pdf_font_path"),
		CORSOrigins:    splitOrigins(v.GetString("cors_origins")),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
	}
	return cfg, nil
}

// Validate reports configuration errors that must stop the process before it
// accepts any interaction.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if !contains(Engines, c.Engine) {
		return fmt.Errorf("unknown engine %q (expected one of %s)", c.Engine, strings.Join(Engines, ", "))
	}
	if !contains(SecretsBackends, c.SecretsBackend) {
		return fmt.Errorf("unknown secrets backend %q (expected one of %s)", c.SecretsBackend, strings.Join(SecretsBackends, ", "))
	}
	if c.PDFFontPath != "" {
		if _, err := os.Stat(c.PDFFontPath); err != nil {
			return fmt.Errorf("pdf font %s: %w", c.PDFFontPath, err)
		}
	}
	return nil
}

// splitOrigins parses a comma-separated origin list; "*" (the default) allows all.
func splitOrigins(v string) []string {
	origins := []string{}
	for _, o := range strings.Split(v, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
