package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/itspb-ux/AccessHire/internal/domain"
	"github.com/itspb-ux/AccessHire/pkg/apperror"
)

type employerUsecase struct {
	toolkitRepo domain.ToolkitRepository
	listingRepo domain.ListingRepository
}

func NewEmployerUsecase(toolkitRepo domain.ToolkitRepository, listingRepo domain.ListingRepository) domain.EmployerUsecase {
	return &employerUsecase{
		toolkitRepo: toolkitRepo,
		listingRepo: listingRepo,
	}
}

func (u *employerUsecase) Dashboard(ctx context.Context, companyName string) (*domain.EmployerDashboard, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, apperror.BadRequest("Company name is required")
	}

	stats, err := u.toolkitRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	for i := range stats {
		if stats[i].Key != domain.StatActiveListings {
			continue
		}
		count, err := u.listingRepo.Count(ctx)
		if err != nil {
			return nil, err
		}
		stats[i].Value = strconv.FormatInt(count, 10)
	}

	checklist, err := u.toolkitRepo.Checklist(ctx)
	if err != nil {
		return nil, err
	}
	resources, err := u.toolkitRepo.Resources(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.EmployerDashboard{
		CompanyName: companyName,
		Stats:       stats,
		Checklist:   checklist,
		Resources:   resources,
	}, nil
}

func (u *employerUsecase) GetResource(ctx context.Context, id int64) (*domain.Resource, error) {
	res, err := u.toolkitRepo.GetResource(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Resource not found")
		}
		return nil, err
	}
	return res, nil
}
