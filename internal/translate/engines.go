package translate

import (
	"errors"
	"fmt"
)

var ErrUnknownEngine = errors.New("unknown translation engine")

// New returns the engine registered under name. baseURL overrides the
// engine's public endpoint when non-empty.
func New(name, apiKey, baseURL string) (Translator, error) {
	switch name {
	case "lingo", "":
		return NewLingoTranslator(apiKey, baseURL), nil
	case "openai":
		return NewOpenAITranslator(apiKey, baseURL), nil
	case "gemini":
		return NewGeminiTranslator(apiKey, baseURL), nil
	case "deepl":
		return NewDeepLTranslator(apiKey, baseURL), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, name)
}
