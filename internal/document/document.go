// Package document extracts plain text from uploaded txt, srt and pdf files.
package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format is the declared format of an upload, taken from its extension.
type Format string

const (
	FormatTXT Format = "txt"
	FormatSRT Format = "srt"
	FormatPDF Format = "pdf"
)

// Formats lists the accepted upload formats.
var Formats = []Format{FormatSRT, FormatTXT, FormatPDF}

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrInvalidUTF8       = errors.New("file is not valid UTF-8 text")
)

// Extension returns the format's file extension including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// FormatFromName derives the format from a file name, ignoring case.
func FormatFromName(name string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch Format(ext) {
	case FormatTXT, FormatSRT, FormatPDF:
		return Format(ext), nil
	}
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension (accepted: %s)", ErrUnsupportedFormat, name, AcceptedExtensions())
	}
	return "", fmt.Errorf("%w: .%s (accepted: %s)", ErrUnsupportedFormat, ext, AcceptedExtensions())
}

// AcceptedExtensions returns the accepted extensions, comma separated.
func AcceptedExtensions() string {
	exts := make([]string, len(Formats))
	for i, f := range Formats {
		exts[i] = f.Extension()
	}
	return strings.Join(exts, ", ")
}

// Upload is a file as received from the user.
type Upload struct {
	Name string
	Data []byte
}

// Text is the plain text extracted from an upload.
type Text struct {
	Content string
	Source  Format
}

// Blank reports whether no translatable text was extracted.
func (t *Text) Blank() bool {
	return t == nil || strings.TrimSpace(t.Content) == ""
}

// Extract reads the upload's text according to its declared format.
func Extract(u *Upload) (*Text, error) {
	if u == nil {
		return nil, errors.New("no file provided")
	}
	format, err := FormatFromName(u.Name)
	if err != nil {
		return nil, err
	}

	var content string
	switch format {
	case FormatTXT, FormatSRT:
		content, err = decodeText(u.Data)
	case FormatPDF:
		content, err = extractPDF(u.Data)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", u.Name, err)
	}
	return &Text{Content: content, Source: format}, nil
}

// decodeText returns the bytes as a string. Subtitle cues and timestamps are
// kept as-is.
func decodeText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}
