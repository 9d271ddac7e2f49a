package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const deeplAPIURL = "https://api-free.deepl.com"

// DeepLTranslator translates text using the DeepL API
type DeepLTranslator struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewDeepLTranslator(apiKey, baseURL string) *DeepLTranslator {
	if baseURL == "" {
		baseURL = deeplAPIURL
	}
	return &DeepLTranslator{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

func (d *DeepLTranslator) Name() string {
	return "deepl"
}

func (d *DeepLTranslator) Translate(ctx context.Context, req Request) (string, error) {
	if d.apiKey == "" {
		return "", fmt.Errorf("DeepL API key not configured")
	}

	form := url.Values{}
	form.Set("text", req.Text)
	form.Set("target_lang", deeplLangCode(string(req.TargetLocale)))
	form.Set("source_lang", deeplLangCode(req.SourceLocale))
	form.Set("preserve_formatting", "1")
	if req.Fast {
		form.Set("model_type", "latency_optimized")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/v2/translate",
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "DeepL-Auth-Key "+d.apiKey)

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("DeepL API request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("DeepL API error (status %d): %s", resp.StatusCode, string(body))
	}

	var deeplResp struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}

	if err := json.Unmarshal(body, &deeplResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	if len(deeplResp.Translations) == 0 || strings.TrimSpace(deeplResp.Translations[0].Text) == "" {
		return "", ErrEmptyResult
	}
	return deeplResp.Translations[0].Text, nil
}

// deeplLangCode converts ISO 639-1 codes to DeepL format
func deeplLangCode(code string) string {
	mapping := map[string]string{
		"en": "EN",
		"zh": "ZH",
		"de": "DE",
		"fr": "FR",
		"es": "ES",
		"ar": "AR",
		"tr": "TR",
	}
	if mapped, ok := mapping[code]; ok {
		return mapped
	}
	return strings.ToUpper(code)
}
