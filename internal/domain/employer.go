package domain

import "context"

// DashboardStat is one analytics card on the employer dashboard
type DashboardStat struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Value   string `json:"value"`
	Caption string `json:"caption"`
}

// ChecklistSection groups interview checklist items by phase
type ChecklistSection struct {
	ID    int64    `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Resource is a downloadable compliance document
type Resource struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Size        string `json:"size"`
	DownloadURL string `json:"download_url"`
}

// EmployerDashboard is the full payload of the employer landing page
type EmployerDashboard struct {
	CompanyName string             `json:"company_name"`
	Stats       []DashboardStat    `json:"stats"`
	Checklist   []ChecklistSection `json:"checklist"`
	Resources   []Resource         `json:"resources"`
}

// StatActiveListings is computed from the listing source instead of the catalog
const StatActiveListings = "active-listings"

type ToolkitRepository interface {
	Stats(ctx context.Context) ([]DashboardStat, error)
	Checklist(ctx context.Context) ([]ChecklistSection, error)
	Resources(ctx context.Context) ([]Resource, error)
	GetResource(ctx context.Context, id int64) (*Resource, error)
}

type EmployerUsecase interface {
	Dashboard(ctx context.Context, companyName string) (*EmployerDashboard, error)
	GetResource(ctx context.Context, id int64) (*Resource, error)
}
