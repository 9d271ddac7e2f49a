package document

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSRT = "1\n00:00:01,000 --> 00:00:02,500\nHello there.\n\n2\n00:00:03,000 --> 00:00:04,000\nGeneral Kenobi!\n"

// makePDF renders one page per string.
func makePDF(t *testing.T, pages ...string) []byte {
	t.Helper()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	for _, p := range pages {
		pdf.AddPage()
		pdf.MultiCell(0, 8, p, "", "", false)
	}
	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	return buf.Bytes()
}

func TestFormatFromName(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"notes.txt", FormatTXT, false},
		{"movie.en.SRT", FormatSRT, false},
		{"Report.Pdf", FormatPDF, false},
		{"letter.docx", "", true},
		{"README", "", true},
		{"archive.pdf.zip", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatFromName(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromName_Diagnostic(t *testing.T) {
	_, err := FormatFromName("letter.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".docx")
	assert.Contains(t, err.Error(), ".srt, .txt, .pdf")
}

func TestExtract_Text(t *testing.T) {
	text, err := Extract(&Upload{Name: "hello.txt", Data: []byte("Hello world")})
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text.Content)
	assert.Equal(t, FormatTXT, text.Source)
	assert.False(t, text.Blank())
}

func TestExtract_SubtitleKeptVerbatim(t *testing.T) {
	text, err := Extract(&Upload{Name: "episode.srt", Data: []byte(sampleSRT)})
	require.NoError(t, err)
	assert.Equal(t, sampleSRT, text.Content)
	assert.Equal(t, FormatSRT, text.Source)
}

func TestExtract_PDFPagesInOrder(t *testing.T) {
	data := makePDF(t, "First page text", "Second page text")

	text, err := Extract(&Upload{Name: "doc.pdf", Data: data})
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, text.Source)
	assert.False(t, text.Blank())

	first := strings.Index(text.Content, "First page text")
	second := strings.Index(text.Content, "Second page text")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestExtract_CorruptPDF(t *testing.T) {
	_, err := Extract(&Upload{Name: "broken.pdf", Data: []byte("this is not a pdf")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.pdf")
}

func TestExtract_InvalidUTF8(t *testing.T) {
	_, err := Extract(&Upload{Name: "latin1.txt", Data: []byte{'c', 'a', 'f', 0xe9}})
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestExtract_Unsupported(t *testing.T) {
	_, err := Extract(&Upload{Name: "letter.docx", Data: []byte("PK\x03\x04")})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtract_EmptyAndWhitespaceAreBlank(t *testing.T) {
	for _, u := range []*Upload{
		{Name: "empty.txt", Data: nil},
		{Name: "spaces.srt", Data: []byte(" \n\t \r\n")},
		{Name: "empty.pdf", Data: nil},
	} {
		text, err := Extract(u)
		require.NoError(t, err, u.Name)
		assert.True(t, text.Blank(), u.Name)
	}
}

func TestExtract_NilUpload(t *testing.T) {
	_, err := Extract(nil)
	assert.Error(t, err)
}
