package memory

import (
	"context"

	"github.com/itspb-ux/AccessHire/internal/domain"
)

type toolkitRepo struct {
	stats     []domain.DashboardStat
	checklist []domain.ChecklistSection
	resources []domain.Resource
}

// NewToolkitRepository serves the employer dashboard content from the catalog
func NewToolkitRepository(stats []domain.DashboardStat, checklist []domain.ChecklistSection, resources []domain.Resource) domain.ToolkitRepository {
	return &toolkitRepo{
		stats:     append([]domain.DashboardStat(nil), stats...),
		checklist: append([]domain.ChecklistSection(nil), checklist...),
		resources: append([]domain.Resource(nil), resources...),
	}
}

func (r *toolkitRepo) Stats(_ context.Context) ([]domain.DashboardStat, error) {
	return append([]domain.DashboardStat(nil), r.stats...), nil
}

func (r *toolkitRepo) Checklist(_ context.Context) ([]domain.ChecklistSection, error) {
	return append([]domain.ChecklistSection(nil), r.checklist...), nil
}

func (r *toolkitRepo) Resources(_ context.Context) ([]domain.Resource, error) {
	return append([]domain.Resource(nil), r.resources...), nil
}

func (r *toolkitRepo) GetResource(_ context.Context, id int64) (*domain.Resource, error) {
	for _, res := range r.resources {
		if res.ID == id {
			found := res
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}
