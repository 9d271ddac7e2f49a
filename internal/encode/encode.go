// Package encode turns translated text into a downloadable artifact.
package encode

import (
	"errors"
	"fmt"
	"strings"
)

// Format is a downloadable output format.
type Format string

const (
	FormatPDF Format = "PDF"
	FormatTXT Format = "TXT"
	FormatSRT Format = "SRT"
)

// Formats lists the output formats in the order they are offered.
var Formats = []Format{FormatPDF, FormatTXT, FormatSRT}

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToUpper(strings.TrimSpace(s)))
	switch f {
	case FormatPDF, FormatTXT, FormatSRT:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	return strings.ToLower(string(f))
}

// MediaType returns the Content-Type offered with the artifact.
func (f Format) MediaType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/plain"
}

// Filename returns translated.<locale>.<ext>.
func Filename(locale string, f Format) string {
	return fmt.Sprintf("translated.%s.%s", locale, f.Extension())
}

// Artifact is the encoded result handed to the user.
type Artifact struct {
	Data      []byte
	Format    Format
	Filename  string
	MediaType string
}

// Encoder builds artifacts. It holds no per-request state and is safe for
// concurrent use.
type Encoder struct {
	pdf PDFOptions
}

func NewEncoder(opts PDFOptions) *Encoder {
	return &Encoder{pdf: opts.withDefaults()}
}

// Encode serializes text for the given locale and format. Nothing is
// returned when encoding fails.
func (e *Encoder) Encode(text, locale string, f Format) (*Artifact, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatPDF:
		data, err = e.encodePDF(text)
	case FormatTXT:
		data = encodeText(text)
	case FormatSRT:
		// Cue numbering and timestamps are not reconstructed.
		data = encodeText(text)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", f, err)
	}

	return &Artifact{
		Data:      data,
		Format:    f,
		Filename:  Filename(locale, f),
		MediaType: f.MediaType(),
	}, nil
}

func encodeText(text string) []byte {
	return []byte(text)
}
