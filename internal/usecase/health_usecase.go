package usecase

import (
	"context"
	"time"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	listingSource string
	redisCheck    func(ctx context.Context) error
}

// NewHealthUsecase reports liveness. redisCheck is nil when Redis is not
// configured.
func NewHealthUsecase(listingSource string, redisCheck func(ctx context.Context) error) HealthUsecase {
	return &healthUsecase{listingSource: listingSource, redisCheck: redisCheck}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":   "ok",
		"listings": u.listingSource,
		"redis":    "disabled",
	}
	if u.redisCheck != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := u.redisCheck(ctx); err != nil {
			status["redis"] = "unavailable"
		} else {
			status["redis"] = "connected"
		}
	}
	return status
}
