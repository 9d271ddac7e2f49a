package translate

import (
	"errors"
	"fmt"
	"strings"
)

// Locale is a target language code.
type Locale string

// Locales is the closed set of target languages, in display order.
var Locales = []Locale{"ur", "ar", "tr", "fr", "hi", "de", "zh", "es"}

var ErrUnknownLocale = errors.New("unsupported target language")

var localeNames = map[Locale]string{
	"en": "English",
	"ur": "Urdu",
	"ar": "Arabic",
	"tr": "Turkish",
	"fr": "French",
	"hi": "Hindi",
	"de": "German",
	"zh": "Chinese",
	"es": "Spanish",
}

// ParseLocale validates a target language code.
func ParseLocale(code string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(code)))
	for _, known := range Locales {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLocale, code)
}

// Name returns the English name of the language.
func (l Locale) Name() string {
	if name, ok := localeNames[l]; ok {
		return name
	}
	return string(l)
}

func (l Locale) String() string {
	return string(l)
}
