// File: services/images/unsplash.go
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wayfare/models"
)

// Searcher finds imagery for a free-text query.
type Searcher interface {
	SearchImages(ctx context.Context, query string, count int) ([]models.ImageResult, error)
}

// UnsplashClient wraps the Unsplash search API.
type UnsplashClient struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
}

func NewUnsplashClient(accessKey string) *UnsplashClient {
	return &UnsplashClient{
		accessKey:  accessKey,
		baseURL:    "https://api.unsplash.com",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type unsplashSearchResponse struct {
	Results []struct {
		ID      string `json:"id"`
		AltText string `json:"alt_description"`
		URLs    struct {
			Raw     string `json:"raw"`
			Full    string `json:"full"`
			Regular string `json:"regular"`
			Small   string `json:"small"`
			Thumb   string `json:"thumb"`
		} `json:"urls"`
	} `json:"results"`
}

// SearchImages queries Unsplash for photos matching the query. Callers are
// expected to substitute PlaceholderURL output when this fails.
func (c *UnsplashClient) SearchImages(ctx context.Context, query string, count int) ([]models.ImageResult, error) {
	if c.accessKey == "" {
		return nil, fmt.Errorf("unsplash access key not configured")
	}
	if count <= 0 {
		count = 1
	}

	endpoint := fmt.Sprintf("%s/search/photos?query=%s&per_page=%d",
		c.baseURL, url.QueryEscape(query), count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed unsplashSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse unsplash response: %w", err)
	}

	results := make([]models.ImageResult, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		results = append(results, models.ImageResult{
			ID:  r.ID,
			Alt: r.AltText,
			URLs: map[string]string{
				"raw":     r.URLs.Raw,
				"full":    r.URLs.Full,
				"regular": r.URLs.Regular,
				"small":   r.URLs.Small,
				"thumb":   r.URLs.Thumb,
			},
		})
	}
	return results, nil
}

// PlaceholderURL builds a deterministic placeholder image URL from the
// destination and activity name, used when image search fails for an
// activity. Identical inputs always yield the same URL.
func PlaceholderURL(destination, activity string) string {
	seed := slugify(destination + "-" + activity)
	return fmt.Sprintf("https://picsum.photos/seed/%s/800/600", seed)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
