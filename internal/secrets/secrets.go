// Package secrets resolves the translation API key at process start.
//
// The key is looked up under a single name, api_key_val, in one of:
//
//   - a TOML secrets file (default .streamlit/secrets.toml)
//   - the settings table of the local SQLite store
//   - the TRANSLATOR_API_KEY environment variable, which overrides both
//
// A missing key is a configuration error: the process must not start.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// KeyName is the name the API key is stored under in every backend.
const KeyName = "api_key_val"

// EnvVar overrides any stored key when set.
const EnvVar = "TRANSLATOR_API_KEY"

// ErrMissingAPIKey matches every MissingConfigError.
var ErrMissingAPIKey = errors.New("API key not found")

// MissingConfigError tells the operator where the key was expected.
type MissingConfigError struct {
	Location string
	Hint     string
}

func (e *MissingConfigError) Error() string {
	msg := fmt.Sprintf("API key not found. Add it in %s as `%s`", e.Location, KeyName)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

func (e *MissingConfigError) Is(target error) bool {
	return target == ErrMissingAPIKey
}

// Provider yields the API key or a *MissingConfigError.
type Provider interface {
	APIKey() (string, error)
	Location() string
}

// FileProvider reads the key from a TOML secrets file.
type FileProvider struct {
	path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Location() string {
	return p.path
}

func (p *FileProvider) APIKey() (string, error) {
	if _, err := os.Stat(p.path); err != nil {
		if os.IsNotExist(err) {
			return "", &MissingConfigError{Location: p.path}
		}
		return "", fmt.Errorf("stat secrets file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(p.path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("read secrets file %s: %w", p.path, err)
	}

	key := strings.TrimSpace(v.GetString(KeyName))
	if key == "" {
		return "", &MissingConfigError{Location: p.path}
	}
	return key, nil
}

// SettingsStore is the subset of the SQLite store used for secrets.
type SettingsStore interface {
	LookupSetting(key string) (string, bool, error)
	SetSetting(key, value string) error
	DeleteSetting(key string) error
}

// StoreProvider reads the key from the local settings database.
type StoreProvider struct {
	store SettingsStore
	path  string
}

func NewStoreProvider(store SettingsStore, path string) *StoreProvider {
	return &StoreProvider{store: store, path: path}
}

func (p *StoreProvider) Location() string {
	return "the settings database " + p.path
}

func (p *StoreProvider) APIKey() (string, error) {
	key, ok, err := p.store.LookupSetting(KeyName)
	if err != nil {
		return "", fmt.Errorf("read settings: %w", err)
	}
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", &MissingConfigError{
			Location: p.Location(),
			Hint:     "run `file-translator secrets set --secrets-backend sqlite`",
		}
	}
	return key, nil
}

// Save stores key in the settings database.
func (p *StoreProvider) Save(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("API key must not be empty")
	}
	return p.store.SetSetting(KeyName, key)
}

// Clear removes the stored key.
func (p *StoreProvider) Clear() error {
	return p.store.DeleteSetting(KeyName)
}

// EnvProvider reads the key from an environment variable.
type EnvProvider struct {
	name string
}

func NewEnvProvider(name string) *EnvProvider {
	return &EnvProvider{name: name}
}

func (p *EnvProvider) Location() string {
	return "the " + p.name + " environment variable"
}

func (p *EnvProvider) APIKey() (string, error) {
	key := strings.TrimSpace(os.Getenv(p.name))
	if key == "" {
		return "", &MissingConfigError{Location: p.Location()}
	}
	return key, nil
}

// Chain tries providers in order. A missing key falls through to the next
// provider; any other error stops the lookup.
type Chain []Provider

func (c Chain) Location() string {
	if len(c) == 0 {
		return ""
	}
	return c[len(c)-1].Location()
}

func (c Chain) APIKey() (string, error) {
	var missing error = &MissingConfigError{Location: c.Location()}
	for _, p := range c {
		key, err := p.APIKey()
		if err == nil {
			return key, nil
		}
		if !errors.Is(err, ErrMissingAPIKey) {
			return "", err
		}
		missing = err
	}
	// the last provider's diagnostic names the configured backend
	return "", missing
}

// Mask hides all but the last four characters of a key for display.
func Mask(key string) string {
	if len(key) > 4 {
		return "••••••••" + key[len(key)-4:]
	}
	return "••••••••"
}
