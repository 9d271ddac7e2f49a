package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const lingoAPIURL = "https://engine.lingo.dev"

// LingoTranslator translates text with the Lingo.dev localization engine.
type LingoTranslator struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewLingoTranslator(apiKey, baseURL string) *LingoTranslator {
	if baseURL == "" {
		baseURL = lingoAPIURL
	}
	return &LingoTranslator{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		// No client timeout: the call waits for the service.
		httpClient: &http.Client{},
	}
}

func (l *LingoTranslator) Name() string {
	return "lingo"
}

type lingoRequest struct {
	Params struct {
		WorkflowID string `json:"workflowId"`
		Fast       bool   `json:"fast"`
	} `json:"params"`
	Locale struct {
		Source string `json:"source"`
		Target string `json:"target"`
	} `json:"locale"`
	Data map[string]string `json:"data"`
}

type lingoResponse struct {
	Data  map[string]string `json:"data"`
	Error string            `json:"error,omitempty"`
}

func (l *LingoTranslator) Translate(ctx context.Context, req Request) (string, error) {
	if l.apiKey == "" {
		return "", fmt.Errorf("Lingo.dev API key not configured")
	}

	var payload lingoRequest
	payload.Params.WorkflowID = uuid.NewString()
	payload.Params.Fast = req.Fast
	payload.Locale.Source = req.SourceLocale
	payload.Locale.Target = string(req.TargetLocale)
	payload.Data = map[string]string{"text": req.Text}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+"/i18n", bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json; charset=utf-8")
	httpReq.Header.Set("Authorization", "Bearer "+l.apiKey)

	resp, err := l.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("Lingo.dev API request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Lingo.dev API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var lingoResp lingoResponse
	if err := json.Unmarshal(body, &lingoResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if lingoResp.Error != "" {
		return "", fmt.Errorf("Lingo.dev API error: %s", lingoResp.Error)
	}

	text := lingoResp.Data["text"]
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResult
	}
	return text, nil
}
