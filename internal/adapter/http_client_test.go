package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ekazakova/character-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.HandlerFunc) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL})
}

func TestHTTPServerAdapter_Pages_DecodesSummaries(t *testing.T) {
	client := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/pages", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Default Page","characterCount":2,"active":true}]`))
	})

	pages, err := client.Pages(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "Default Page", pages[0].Name)
	assert.True(t, pages[0].Active)
}

func TestHTTPServerAdapter_AddCharacter_SendsFormValues(t *testing.T) {
	client := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/pages/1/characters", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Bob","values":{"age":"29"}}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"name":"Bob","image":"👸","images":[],"createdAt":"2026-01-01T00:00:00Z","age":29}`))
	})

	char, err := client.AddCharacter(context.Background(), 1, "Bob", map[string]string{"age": "29"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), char.ID)
	assert.Equal(t, models.IntValue(29), char.Attributes["age"])
}

func TestHTTPServerAdapter_Characters_ForwardsQuery(t *testing.T) {
	client := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "mage", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[]`))
	})

	chars, err := client.Characters(context.Background(), 1, "mage")
	require.NoError(t, err)
	assert.Empty(t, chars)
}

func TestHTTPServerAdapter_UploadImages_SendsMultipart(t *testing.T) {
	client := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		files := r.MultipartForm.File["images"]
		require.Len(t, files, 2)
		assert.Equal(t, "a.png", files[0].Filename)

		_ = json.NewEncoder(w).Encode(models.UploadReport{Succeeded: 2, Paths: []string{"p/a", "p/b"}})
	})

	report, err := client.UploadImages(context.Background(), 1, 7, []models.ImageUpload{
		{FileName: "a.png", Data: []byte{1}},
		{FileName: "b.jpg", Data: []byte{2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Succeeded)
}

func TestHTTPServerAdapter_DeletePage_MapsConflict(t *testing.T) {
	client := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "at least one page must remain", http.StatusConflict)
	})

	err := client.DeletePage(context.Background(), 1)
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "at least one page must remain")
}

func TestHTTPServerAdapter_Page_MapsNotFound(t *testing.T) {
	client := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "page was not found", http.StatusNotFound)
	})

	_, err := client.Page(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPServerAdapter_UpdateSettings_SendsBlob(t *testing.T) {
	client := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		var settings models.Settings
		require.NoError(t, json.NewDecoder(r.Body).Decode(&settings))
		assert.Equal(t, "art", settings.ImageFolder)
		w.WriteHeader(http.StatusOK)
	})

	updated := models.DefaultSettings()
	updated.ImageFolder = "art"
	assert.NoError(t, client.UpdateSettings(context.Background(), updated))
}
