package ports

import "context"

// FetchResponse is the envelope returned by the category data endpoint
type FetchResponse struct {
	Success bool   `json:"success"`
	Data    []byte `json:"-"` // raw category mapping, decoded by the domain
	Error   string `json:"error,omitempty"`
}

// TaxonomySource provides the raw category payload
type TaxonomySource interface {
	// Fetch performs a single request for the category mapping. A transport
	// failure is returned as an error; a rejection comes back as
	// Success == false with an optional message.
	Fetch(ctx context.Context) (*FetchResponse, error)
}
