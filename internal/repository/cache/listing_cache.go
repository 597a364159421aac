package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/itspb-ux/AccessHire/internal/domain"
	"github.com/itspb-ux/AccessHire/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// ListingsKey holds the JSON-encoded listing set
const ListingsKey = "listings:all"

type listingCache struct {
	next domain.ListingRepository
	rdb  *redis.Client
	ttl  time.Duration
}

// NewListingCache wraps next with a Redis read-through cache. Redis errors
// are logged and the call falls through to next.
func NewListingCache(next domain.ListingRepository, rdb *redis.Client, ttl time.Duration) domain.ListingRepository {
	return &listingCache{next: next, rdb: rdb, ttl: ttl}
}

func (r *listingCache) FetchAll(ctx context.Context) ([]domain.Listing, error) {
	if listings, ok := r.cached(ctx); ok {
		return listings, nil
	}

	listings, err := r.next.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(listings)
	if err == nil {
		err = r.rdb.Set(ctx, ListingsKey, data, r.ttl).Err()
	}
	if err != nil {
		logger.Log.Warn("Failed to cache listings", "error", err)
	}
	return listings, nil
}

func (r *listingCache) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	listings, ok := r.cached(ctx)
	if !ok {
		return r.next.GetByID(ctx, id)
	}
	for _, l := range listings {
		if l.ID == id {
			found := l
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *listingCache) Count(ctx context.Context) (int64, error) {
	if listings, ok := r.cached(ctx); ok {
		return int64(len(listings)), nil
	}
	return r.next.Count(ctx)
}

func (r *listingCache) cached(ctx context.Context) ([]domain.Listing, bool) {
	val, err := r.rdb.Get(ctx, ListingsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Log.Warn("Listing cache read failed", "error", err)
		}
		return nil, false
	}

	var listings []domain.Listing
	if err := json.Unmarshal(val, &listings); err != nil {
		logger.Log.Warn("Discarding corrupt listing cache", "error", err)
		return nil, false
	}
	return listings, true
}
