package encode

import (
	"bytes"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"pdf": FormatPDF, "TXT": FormatTXT, " Srt ": FormatSRT} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("docx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFilenameAndMediaType(t *testing.T) {
	assert.Equal(t, "translated.fr.pdf", Filename("fr", FormatPDF))
	assert.Equal(t, "translated.zh.txt", Filename("zh", FormatTXT))
	assert.Equal(t, "translated.ur.srt", Filename("ur", FormatSRT))

	assert.Equal(t, "application/pdf", FormatPDF.MediaType())
	assert.Equal(t, "text/plain", FormatTXT.MediaType())
	assert.Equal(t, "text/plain", FormatSRT.MediaType())
}

func TestEncode_TXTRoundTrip(t *testing.T) {
	text := "Bonjour le monde\nمرحبا بالعالم\n你好，世界"

	a, err := NewEncoder(PDFOptions{}).Encode(text, "fr", FormatTXT)
	require.NoError(t, err)

	require.True(t, utf8.Valid(a.Data))
	assert.Equal(t, text, string(a.Data))
	assert.Equal(t, "translated.fr.txt", a.Filename)
	assert.Equal(t, "text/plain", a.MediaType)
	assert.Equal(t, FormatTXT, a.Format)
}

func TestEncode_SRTMatchesTXT(t *testing.T) {
	text := "1\n00:00:01,000 --> 00:00:02,000\nHola a todos\n"
	enc := NewEncoder(PDFOptions{})

	txt, err := enc.Encode(text, "es", FormatTXT)
	require.NoError(t, err)
	srt, err := enc.Encode(text, "es", FormatSRT)
	require.NoError(t, err)

	assert.Equal(t, txt.Data, srt.Data)
	assert.Equal(t, "translated.es.srt", srt.Filename)
	assert.Equal(t, "text/plain", srt.MediaType)
}

func TestEncode_PDF(t *testing.T) {
	long := bytes.Repeat([]byte("Ein ziemlich langer Absatz, der umgebrochen werden muss. "), 400)

	a, err := NewEncoder(PDFOptions{}).Encode(string(long), "de", FormatPDF)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(a.Data, []byte("%PDF-")))
	assert.Equal(t, "translated.de.pdf", a.Filename)
	assert.Equal(t, "application/pdf", a.MediaType)
}

func TestEncode_PDFMissingFontFails(t *testing.T) {
	enc := NewEncoder(PDFOptions{FontPath: filepath.Join(t.TempDir(), "NotoSans.ttf")})

	a, err := enc.Encode("hello", "hi", FormatPDF)
	assert.Error(t, err)
	assert.Nil(t, a)
}

func TestEncode_PDFDefaultFontRejectsOtherScripts(t *testing.T) {
	enc := NewEncoder(PDFOptions{})

	for locale, text := range map[string]string{
		"ur": "ہیلو دنیا",
		"zh": "你好，世界",
		"hi": "नमस्ते दुनिया",
		"tr": "Merhaba dünya, şimdi ığ",
	} {
		a, err := enc.Encode(text, locale, FormatPDF)
		assert.ErrorIs(t, err, ErrUnrenderableText, locale)
		assert.Nil(t, a, locale)
	}
}

func TestEncode_PDFDefaultFontCoversCP1252(t *testing.T) {
	a, err := NewEncoder(PDFOptions{}).Encode("Grüße, café – «ça va?» €5", "fr", FormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(a.Data, []byte("%PDF-")))
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := NewEncoder(PDFOptions{}).Encode("hello", "fr", Format("DOCX"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
