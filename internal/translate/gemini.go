package translate

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	geminiFastModel    = "gemini-2.0-flash-lite"
	geminiDefaultModel = "gemini-2.0-flash"
)

// GeminiTranslator translates text using the Google Gemini API
type GeminiTranslator struct {
	apiKey  string
	baseURL string
}

func NewGeminiTranslator(apiKey, baseURL string) *GeminiTranslator {
	return &GeminiTranslator{apiKey: apiKey, baseURL: baseURL}
}

func (g *GeminiTranslator) Name() string {
	return "gemini"
}

func (g *GeminiTranslator) Translate(ctx context.Context, req Request) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("Gemini API key not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      g.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
	})
	if err != nil {
		return "", fmt.Errorf("create Gemini client: %w", err)
	}

	model := geminiDefaultModel
	if req.Fast {
		model = geminiFastModel
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(req.Text), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemPrompt(req.SourceLocale, req.TargetLocale), genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.3),
	})
	if err != nil {
		return "", fmt.Errorf("Gemini API request: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("Gemini blocked: %s", resp.PromptFeedback.BlockReason)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResult
	}
	return text, nil
}
