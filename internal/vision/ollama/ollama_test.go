package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/plantid/internal/domain"
	"github.com/vbonduro/plantid/internal/vision"
)

func TestOllamaIdentify(t *testing.T) {
	var got generateRequest
	var gotPath string

	// Create a test server that mimics Ollama
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)

		resp := map[string]interface{}{
			"model":    got.Model,
			"response": "Name: Aloe\nScientific Name: Aloe vera\nFun Fact: The gel soothes burns",
			"done":     true,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	identifier := NewOllamaIdentifier(server.URL, "llava")

	sub := vision.NewSubmission([]byte("fake image data"), "image/png")
	result, err := identifier.Identify(context.Background(), sub)
	require.NoError(t, err)

	assert.Equal(t, "/api/generate", gotPath)
	assert.Equal(t, "llava", got.Model)
	assert.Equal(t, vision.IdentifyPrompt, got.Prompt)
	assert.Equal(t, []string{sub.Data}, got.Images)
	assert.False(t, got.Stream)

	assert.Equal(t, "Aloe", result.Plant.Name)
	assert.Equal(t, "Aloe vera", result.Plant.ScientificName)
	assert.Equal(t, "The gel soothes burns", result.Plant.FunFact)
	assert.Equal(t, domain.NotAvailable, result.Plant.Description)
}

func TestOllamaIdentifyError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	identifier := NewOllamaIdentifier(server.URL, "missing")

	_, err := identifier.Identify(context.Background(), vision.NewSubmission([]byte("x"), "image/jpeg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestOllamaIdentifyUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	identifier := NewOllamaIdentifier(url, "llava")

	_, err := identifier.Identify(context.Background(), vision.NewSubmission([]byte("x"), "image/jpeg"))
	assert.Error(t, err)
}
