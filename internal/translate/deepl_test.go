package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepLTranslator_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/translate", r.URL.Path)
		assert.Equal(t, "DeepL-Auth-Key dk", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "Good morning", r.PostForm.Get("text"))
		assert.Equal(t, "EN", r.PostForm.Get("source_lang"))
		assert.Equal(t, "TR", r.PostForm.Get("target_lang"))
		assert.Equal(t, "latency_optimized", r.PostForm.Get("model_type"))
		w.Write([]byte(`{"translations":[{"detected_source_language":"EN","text":"Günaydın"}]}`))
	}))
	defer srv.Close()

	text, err := NewDeepLTranslator("dk", srv.URL).Translate(context.Background(), NewRequest("Good morning", "tr"))
	require.NoError(t, err)
	assert.Equal(t, "Günaydın", text)
}

func TestDeepLTranslator_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Wrong endpoint"}`))
	}))
	defer srv.Close()

	_, err := NewDeepLTranslator("dk", srv.URL).Translate(context.Background(), NewRequest("Hi", "fr"))
	assert.ErrorContains(t, err, "status 403")

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"translations":[]}`))
	}))
	defer empty.Close()

	_, err = NewDeepLTranslator("dk", empty.URL).Translate(context.Background(), NewRequest("Hi", "fr"))
	assert.ErrorIs(t, err, ErrEmptyResult)

	_, err = NewDeepLTranslator("", empty.URL).Translate(context.Background(), NewRequest("Hi", "fr"))
	assert.EqualError(t, err, "DeepL API key not configured")
}

func TestDeeplLangCode(t *testing.T) {
	assert.Equal(t, "ZH", deeplLangCode("zh"))
	assert.Equal(t, "UR", deeplLangCode("ur"))
}
