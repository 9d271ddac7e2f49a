package handlers

import (
	"errors"
	"net/http"

	"github.com/file-translator/file-translator/internal/secrets"
)

// SettingDef describes one displayed setting.
type SettingDef struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Group  string `json:"group"`
	Secret bool   `json:"secret"`
}

var settingsKeys = []SettingDef{
	{Key: "engine", Label: "Translation Engine", Group: "translation", Secret: false},
	{Key: secrets.KeyName, Label: "API Key", Group: "translation", Secret: true},
}

// SettingsHandler reports the process configuration the page depends on.
// Settings are read-only here: the key is resolved once at startup.
type SettingsHandler struct {
	engine   string
	provider secrets.Provider
}

func NewSettingsHandler(engine string, provider secrets.Provider) *SettingsHandler {
	return &SettingsHandler{engine: engine, provider: provider}
}

// GetSettings returns the settings with secrets masked
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	type SettingResponse struct {
		SettingDef
		Value    string `json:"value"`
		HasValue bool   `json:"has_value"`
		Location string `json:"location,omitempty"`
	}

	var result []SettingResponse
	for _, def := range settingsKeys {
		s := SettingResponse{SettingDef: def}
		switch def.Key {
		case "engine":
			s.Value = h.engine
		case secrets.KeyName:
			if h.provider == nil {
				break
			}
			s.Location = h.provider.Location()
			key, err := h.provider.APIKey()
			if err != nil && !errors.Is(err, secrets.ErrMissingAPIKey) {
				jsonError(w, "failed to load settings", http.StatusInternalServerError)
				return
			}
			if key != "" {
				s.Value = secrets.Mask(key)
			}
		}
		s.HasValue = s.Value != ""
		result = append(result, s)
	}

	jsonResponse(w, result, http.StatusOK)
}
