package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "lingo", cfg.Engine)
	assert.Equal(t, "file", cfg.SecretsBackend)
	assert.Equal(t, filepath.Join(".streamlit", "secrets.toml"), cfg.SecretsPath)
	assert.Equal(t, filepath.Join("./data", "translator.db"), cfg.DBPath)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENGINE", "DeepL")
	t.Setenv("DATA_PATH", "/srv/translator")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "deepl", cfg.Engine)
	assert.Equal(t, "/srv/translator/translator.db", cfg.DBPath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translator.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: openai\nsecrets_backend: sqlite\nlog_format: console\n"), 0644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Engine)
	assert.Equal(t, "sqlite", cfg.SecretsBackend)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{Port: 8080, Engine: "lingo", SecretsBackend: "file"}
	}

	cfg := base()
	cfg.Engine = "babelfish"
	assert.ErrorContains(t, cfg.Validate(), "unknown engine")

	cfg = base()
	cfg.SecretsBackend = "vault"
	assert.ErrorContains(t, cfg.Validate(), "unknown secrets backend")

	cfg = base()
	cfg.Port = 0
	assert.ErrorContains(t, cfg.Validate(), "invalid port")

	cfg = base()
	cfg.PDFFontPath = filepath.Join(t.TempDir(), "missing.ttf")
	assert.ErrorContains(t, cfg.Validate(), "pdf font")
}
