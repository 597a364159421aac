package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/itspb-ux/AccessHire/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

// DBTX is the subset of *pgxpool.Pool the repositories use
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type listingRepo struct {
	db DBTX
}

func NewListingRepository(db DBTX) domain.ListingRepository {
	return &listingRepo{db: db}
}

const listingColumns = `
	l.id, l.title, l.organization, COALESCE(l.location, ''), COALESCE(l.summary, ''),
	COALESCE(l.features, '{}'),
	COALESCE(array_agg(f.tag ORDER BY f.tag) FILTER (WHERE f.tag IS NOT NULL), '{}')`

// FetchAll returns active listings in id order. Ordering is stable so that
// filtered results keep a deterministic order between requests.
func (r *listingRepo) FetchAll(ctx context.Context) ([]domain.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings l
		LEFT JOIN listing_facets f ON f.listing_id = l.id
		WHERE l.is_active = TRUE
		GROUP BY l.id
		ORDER BY l.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return listings, nil
}

func (r *listingRepo) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings l
		LEFT JOIN listing_facets f ON f.listing_id = l.id
		WHERE l.id = $1 AND l.is_active = TRUE
		GROUP BY l.id`

	l, err := scanListing(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r *listingRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM listings WHERE is_active = TRUE`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return total, nil
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	var features, facets []string

	err := row.Scan(
		&l.ID, &l.Title, &l.Organization, &l.Location, &l.Summary,
		pq.Array(&features), pq.Array(&facets),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan listing: %w", err)
	}

	l.Features = features
	l.Facets = domain.NewFacetSet(facets...)
	return &l, nil
}
