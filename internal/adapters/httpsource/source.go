package httpsource

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"promptbuilder/internal/ports"
)

// maxBodySize caps the category payload read from the endpoint
const maxBodySize = 64 << 20

// Source implements ports.TaxonomySource over the data endpoint of a
// promptbuilder server
type Source struct {
	url    string
	client *http.Client
}

// Ensure Source implements TaxonomySource
var _ ports.TaxonomySource = (*Source)(nil)

// NewSource creates a source for url. A nil client uses http.DefaultClient.
func NewSource(url string, client *http.Client) *Source {
	if client == nil {
		client = http.DefaultClient
	}
	return &Source{url: url, client: client}
}

// Fetch performs one GET. Non-2xx statuses are transport failures; the
// envelope's success flag carries rejections.
func (s *Source) Fetch(ctx context.Context) (*ports.FetchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", s.url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.url, err)
	}
	return DecodeEnvelope(body)
}
