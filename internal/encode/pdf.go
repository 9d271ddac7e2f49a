package encode

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// ErrUnrenderableText is returned when the default PDF font has no glyph for
// part of the text.
var ErrUnrenderableText = errors.New("text contains characters the default PDF font cannot render; set pdf_font_path to a UTF-8 TrueType font")

// PDFOptions controls PDF layout. The zero value renders Helvetica 12pt
// with an 8mm line height, which covers Latin scripts only; FontPath points
// at a UTF-8 TrueType font for everything else.
type PDFOptions struct {
	FontPath   string
	FontSize   float64
	LineHeight float64
}

func (o PDFOptions) withDefaults() PDFOptions {
	if o.FontSize <= 0 {
		o.FontSize = 12
	}
	if o.LineHeight <= 0 {
		o.LineHeight = 8
	}
	return o
}

const utf8Family = "body"

func (e *Encoder) encodePDF(text string) ([]byte, error) {
	fontDir := ""
	if e.pdf.FontPath != "" {
		fontDir = filepath.Dir(e.pdf.FontPath)
	}
	pdf := fpdf.New("P", "mm", "A4", fontDir)
	pdf.SetCreator("file-translator", true)
	pdf.SetAutoPageBreak(true, 15)

	write := func(s string) string { return s }
	if e.pdf.FontPath != "" {
		// fpdf resolves font files relative to its font directory.
		pdf.AddUTF8Font(utf8Family, "", filepath.Base(e.pdf.FontPath))
		pdf.SetFont(utf8Family, "", e.pdf.FontSize)
	} else {
		if r, ok := firstUnencodable(text); ok {
			return nil, fmt.Errorf("%w (first: %q)", ErrUnrenderableText, r)
		}
		pdf.SetFont("Helvetica", "", e.pdf.FontSize)
		write = pdf.UnicodeTranslatorFromDescriptor("")
	}
	if err := pdf.Error(); err != nil {
		return nil, err
	}

	pdf.AddPage()
	pdf.MultiCell(0, e.pdf.LineHeight, write(normalizeNewlines(text)), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// firstUnencodable returns the first rune outside cp1252, the code page of
// the core PDF fonts.
func firstUnencodable(text string) (rune, bool) {
	for _, r := range text {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return r, true
		}
	}
	return 0, false
}
