package handlers

import (
	"net/http"

	"github.com/file-translator/file-translator/internal/document"
	"github.com/file-translator/file-translator/internal/encode"
	"github.com/file-translator/file-translator/internal/translate"
)

type LocaleOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type OptionsResponse struct {
	SourceLocale string         `json:"source_locale"`
	Locales      []LocaleOption `json:"locales"`
	Formats      []string       `json:"formats"`
	Extensions   []string       `json:"extensions"`
	Engine       string         `json:"engine"`
}

// OptionsHandler serves the choices offered by the page.
type OptionsHandler struct {
	engine string
}

func NewOptionsHandler(engine string) *OptionsHandler {
	return &OptionsHandler{engine: engine}
}

func (h *OptionsHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	resp := OptionsResponse{
		SourceLocale: translate.SourceLocale,
		Engine:       h.engine,
	}
	for _, l := range translate.Locales {
		resp.Locales = append(resp.Locales, LocaleOption{Code: l.String(), Name: l.Name()})
	}
	for _, f := range encode.Formats {
		resp.Formats = append(resp.Formats, string(f))
	}
	for _, f := range document.Formats {
		resp.Extensions = append(resp.Extensions, f.Extension())
	}
	jsonResponse(w, resp, http.StatusOK)
}

func Health(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]string{"status": "ok"}, http.StatusOK)
}
