// Package provider implements the content provider against an lrclib-style
// lyrics API: free-text search returning candidates, then a get by id for
// the plain lyrics body.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/linernotes/liner/internal/domain"
)

const _maxResponseSize = 4 * 1024 * 1024 // 4 MB

// Client talks to a lyrics provider over HTTP.
type Client struct {
	logger *zap.Logger
	client *http.Client
	base   string
}

// NewClient creates a provider client for the given base URL
// (e.g. "https://lrclib.net").
func NewClient(logger *zap.Logger, base string) *Client {
	return &Client{
		logger: logger,
		client: &http.Client{
			Timeout: 10 * time.Second, // Never block a session on a slow provider
		},
		base: base,
	}
}

type searchResult struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ArtistName string `json:"artistName"`
	AlbumName  string `json:"albumName"`
}

type getResult struct {
	Name        string `json:"name"`
	ArtistName  string `json:"artistName"`
	PlainLyrics string `json:"plainLyrics"`
}

// Search queries the provider for lyric candidates. An empty result set is
// ErrNotFound; any transport or status failure is ErrTransient.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Candidate, error) {
	var results []searchResult
	reqURL := fmt.Sprintf("%s/api/search?q=%s", c.base, url.QueryEscape(query))
	if err := c.getJSON(ctx, reqURL, &results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no lyrics for %q: %w", query, domain.ErrNotFound)
	}

	candidates := make([]domain.Candidate, 0, len(results))
	for _, r := range results {
		candidates = append(candidates, domain.Candidate{
			ID:       fmt.Sprintf("%d", r.ID),
			Title:    r.Name,
			Subtitle: fmt.Sprintf("%s - %s", r.ArtistName, r.AlbumName),
		})
	}

	c.logger.Debug("lyrics search completed",
		zap.String("query", query),
		zap.Int("candidates", len(candidates)))
	return candidates, nil
}

// Fetch resolves a candidate id to its content document.
func (c *Client) Fetch(ctx context.Context, candidateID string) (domain.Document, error) {
	var result getResult
	reqURL := fmt.Sprintf("%s/api/get/%s", c.base, url.PathEscape(candidateID))
	if err := c.getJSON(ctx, reqURL, &result); err != nil {
		return domain.Document{}, err
	}

	c.logger.Debug("lyrics fetched",
		zap.String("candidate_id", candidateID),
		zap.Int("bytes", len(result.PlainLyrics)))

	return domain.Document{
		Title:  result.Name,
		Artist: result.ArtistName,
		Body:   result.PlainLyrics,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "liner/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransient, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return fmt.Errorf("%w: unexpected status code %d", domain.ErrTransient, resp.StatusCode)
	}

	limited := http.MaxBytesReader(nil, resp.Body, _maxResponseSize)
	if err := json.NewDecoder(limited).Decode(out); err != nil {
		return fmt.Errorf("%w: bad response body: %v", domain.ErrTransient, err)
	}
	return nil
}
