package usecase

import (
	"context"
	"errors"

	"github.com/itspb-ux/AccessHire/internal/domain"
	"github.com/itspb-ux/AccessHire/pkg/apperror"
)

type listingUsecase struct {
	listingRepo domain.ListingRepository
	facets      []domain.Facet
}

// NewListingUsecase serves listing search over repo. facets is the catalog's
// facet list, in catalog order.
func NewListingUsecase(listingRepo domain.ListingRepository, facets []domain.Facet) domain.ListingUsecase {
	ordered := make([]domain.Facet, 0, len(facets))
	for _, f := range facets {
		if f.Filterable {
			ordered = append(ordered, f)
		}
	}
	for _, f := range facets {
		if !f.Filterable {
			ordered = append(ordered, f)
		}
	}
	return &listingUsecase{listingRepo: listingRepo, facets: ordered}
}

func (u *listingUsecase) Search(ctx context.Context, query string, facets []string) ([]domain.Listing, error) {
	listings, err := u.listingRepo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterListings(listings, domain.NewFilterCriteria(query, facets)), nil
}

func (u *listingUsecase) GetListing(ctx context.Context, id int64) (*domain.Listing, error) {
	listing, err := u.listingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Listing not found")
		}
		return nil, err
	}
	return listing, nil
}

func (u *listingUsecase) Facets(_ context.Context) ([]domain.Facet, error) {
	out := make([]domain.Facet, len(u.facets))
	copy(out, u.facets)
	return out, nil
}
