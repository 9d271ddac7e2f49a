package document

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// extractPDF returns the text of every page in document order, one newline
// between pages.
func extractPDF(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", nil
	}

	// MuPDF can panic on some malformed streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse PDF: %v", r)
		}
	}()

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		page, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i+1, err)
		}
		pages = append(pages, page)
	}
	return strings.Join(pages, "\n"), nil
}
