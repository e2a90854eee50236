package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderURLDeterministic(t *testing.T) {
	a := PlaceholderURL("Bordeaux", "Wine Tasting Tour")
	b := PlaceholderURL("Bordeaux", "Wine Tasting Tour")
	assert.Equal(t, a, b)
	assert.Equal(t, "https://picsum.photos/seed/bordeaux-wine-tasting-tour/800/600", a)
}

func TestPlaceholderURLDistinctInputs(t *testing.T) {
	assert.NotEqual(t,
		PlaceholderURL("Bordeaux", "Wine Tasting"),
		PlaceholderURL("Paris", "Wine Tasting"),
	)
}

func TestSearchImagesParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"id":"abc","alt_description":"vineyard","urls":{"regular":"https://img/r","small":"https://img/s","thumb":"https://img/t"}}]}`))
	}))
	defer srv.Close()

	c := NewUnsplashClient("test-key")
	c.baseURL = srv.URL

	results, err := c.SearchImages(context.Background(), "bordeaux vineyard", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "abc", results[0].ID)
	assert.Equal(t, "https://img/r", results[0].URLs["regular"])
}

func TestSearchImagesUnconfigured(t *testing.T) {
	c := NewUnsplashClient("")
	_, err := c.SearchImages(context.Background(), "anything", 1)
	assert.Error(t, err)
}
