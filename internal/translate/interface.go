package translate

import (
	"context"
	"errors"
)

// SourceLocale is the only source language the workflow translates from.
const SourceLocale = "en"

// ErrEmptyResult is returned when an engine answers without any text.
var ErrEmptyResult = errors.New("translation service returned an empty result")

// Request is one translation call. It is built fresh for every run.
type Request struct {
	Text         string
	SourceLocale string
	TargetLocale Locale
	Fast         bool // prefer latency over quality
}

// NewRequest returns a request from English with the fast hint set.
func NewRequest(text string, target Locale) Request {
	return Request{
		Text:         text,
		SourceLocale: SourceLocale,
		TargetLocale: target,
		Fast:         true,
	}
}

// Translator is the common interface for all translation engines
type Translator interface {
	// Translate returns the translated text or an error; never a partial result.
	Translate(ctx context.Context, req Request) (string, error)
	// Name returns the engine name
	Name() string
}
