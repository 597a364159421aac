package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Listing is a job posting as supplied by the listing source. The engine
// treats it as read-only.
type Listing struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Location     string   `json:"location"`
	Summary      string   `json:"summary"`
	Facets       FacetSet `json:"facets"`
	Features     []string `json:"features"` // Display labels shown on the job card
}

// Facet describes one accessibility tag in the catalog
type Facet struct {
	Tag        string `json:"tag"`
	Label      string `json:"label"`
	Filterable bool   `json:"filterable"` // Rendered as a filter toggle
}

type ListingRepository interface {
	FetchAll(ctx context.Context) ([]Listing, error)
	GetByID(ctx context.Context, id int64) (*Listing, error)
	Count(ctx context.Context) (int64, error)
}

type ListingUsecase interface {
	Search(ctx context.Context, query string, facets []string) ([]Listing, error)
	GetListing(ctx context.Context, id int64) (*Listing, error)
	Facets(ctx context.Context) ([]Facet, error)
}
