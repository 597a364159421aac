package memory

import (
	"context"

	"github.com/itspb-ux/AccessHire/internal/domain"
)

type listingRepo struct {
	listings []domain.Listing
	byID     map[int64]int
}

// NewListingRepository serves a fixed listing set, typically the catalog seed.
// The set is copied and never changes afterwards.
func NewListingRepository(listings []domain.Listing) domain.ListingRepository {
	r := &listingRepo{
		listings: append([]domain.Listing(nil), listings...),
		byID:     make(map[int64]int, len(listings)),
	}
	for i, l := range r.listings {
		r.byID[l.ID] = i
	}
	return r
}

func (r *listingRepo) FetchAll(_ context.Context) ([]domain.Listing, error) {
	return append([]domain.Listing(nil), r.listings...), nil
}

func (r *listingRepo) GetByID(_ context.Context, id int64) (*domain.Listing, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	l := r.listings[i]
	return &l, nil
}

func (r *listingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.listings)), nil
}
