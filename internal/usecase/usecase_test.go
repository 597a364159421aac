package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/itspb-ux/AccessHire/internal/domain"
	"github.com/itspb-ux/AccessHire/internal/usecase"
	"github.com/itspb-ux/AccessHire/pkg/apperror"
	"github.com/itspb-ux/AccessHire/pkg/security"
	"github.com/itspb-ux/AccessHire/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Mock Repositories
type MockListingRepo struct {
	mock.Mock
}

func (m *MockListingRepo) FetchAll(ctx context.Context) ([]domain.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

func (m *MockListingRepo) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockToolkitRepo struct {
	mock.Mock
}

func (m *MockToolkitRepo) Stats(ctx context.Context) ([]domain.DashboardStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DashboardStat), args.Error(1)
}

func (m *MockToolkitRepo) Checklist(ctx context.Context) ([]domain.ChecklistSection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChecklistSection), args.Error(1)
}

func (m *MockToolkitRepo) Resources(ctx context.Context) ([]domain.Resource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resource), args.Error(1)
}

func (m *MockToolkitRepo) GetResource(ctx context.Context, id int64) (*domain.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func appErrorCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

func TestListingSearch(t *testing.T) {
	ctx := context.Background()
	listings := []domain.Listing{
		{ID: 1, Title: "Product Designer", Facets: domain.NewFacetSet("remote")},
		{ID: 2, Title: "QA Engineer", Facets: domain.NewFacetSet("remote", "neurodiverse-inclusive")},
	}

	t.Run("Should apply the filter engine to the repository contents", func(t *testing.T) {
		repo := new(MockListingRepo)
		repo.On("FetchAll", ctx).Return(listings, nil)
		uc := usecase.NewListingUsecase(repo, nil)

		got, err := uc.Search(ctx, "", []string{"remote", "Neurodiverse-Inclusive"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "QA Engineer", got[0].Title)

		got, err = uc.Search(ctx, "  designer ", nil)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("Should return an empty slice when nothing matches", func(t *testing.T) {
		repo := new(MockListingRepo)
		repo.On("FetchAll", ctx).Return(listings, nil)
		uc := usecase.NewListingUsecase(repo, nil)

		got, err := uc.Search(ctx, "astronaut", nil)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Should propagate repository errors", func(t *testing.T) {
		repo := new(MockListingRepo)
		repo.On("FetchAll", ctx).Return(nil, errors.New("connection reset"))
		uc := usecase.NewListingUsecase(repo, nil)

		_, err := uc.Search(ctx, "", nil)
		assert.Error(t, err)
	})
}

func TestGetListing(t *testing.T) {
	ctx := context.Background()
	repo := new(MockListingRepo)
	repo.On("GetByID", ctx, int64(1)).Return(&domain.Listing{ID: 1, Title: "UX Designer"}, nil)
	repo.On("GetByID", ctx, int64(9)).Return(nil, domain.ErrNotFound)
	uc := usecase.NewListingUsecase(repo, nil)

	t.Run("Should return the listing", func(t *testing.T) {
		l, err := uc.GetListing(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "UX Designer", l.Title)
	})

	t.Run("Should map a missing listing to 404", func(t *testing.T) {
		_, err := uc.GetListing(ctx, 9)
		assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
	})
}

func TestFacets(t *testing.T) {
	uc := usecase.NewListingUsecase(new(MockListingRepo), []domain.Facet{
		{Tag: "sign-language-support", Label: "Sign Language Support"},
		{Tag: "remote", Label: "Remote", Filterable: true},
		{Tag: "assistive-tech", Label: "Assistive Tech"},
		{Tag: "flexible-hours", Label: "Flexible Hours", Filterable: true},
	})

	t.Run("Should list filterable facets first keeping catalog order", func(t *testing.T) {
		facets, err := uc.Facets(context.Background())
		require.NoError(t, err)

		tags := make([]string, len(facets))
		for i, f := range facets {
			tags[i] = f.Tag
		}
		assert.Equal(t, []string{"remote", "flexible-hours", "sign-language-support", "assistive-tech"}, tags)
	})
}

func newFormUsecase(strict bool) (domain.FormUsecase, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	audit := security.NewSecurityLogger(zap.New(core), "access-hire-api", "test")
	v := validation.NewFormValidator(validation.DefaultFormSchema(), nil, strict)
	return usecase.NewFormUsecase(v, audit), logs
}

func TestFormValidate(t *testing.T) {
	ctx := context.WithValue(context.Background(), domain.KeyRequestID, "req-42")

	t.Run("Should report missing candidate fields", func(t *testing.T) {
		uc, logs := newFormUsecase(false)

		result, err := uc.Validate(ctx, validation.RoleCandidate, map[string]string{
			"email":                   "",
			"password":                "x",
			"accessibilityPreference": "",
		})
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, map[string]string{
			"email":                   "Email is required",
			"accessibilityPreference": "Primary Accessibility Preference is required",
		}, result.Errors)

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "validation_failed", logs.All()[0].Message)
		assert.Equal(t, "req-42", fields["request_id"])
	})

	t.Run("Should accept a complete employer form without auditing", func(t *testing.T) {
		uc, logs := newFormUsecase(false)

		result, err := uc.Validate(ctx, validation.RoleEmployer, map[string]string{
			"email":       "hr@techcorp.com",
			"password":    "hunter22",
			"companyName": "TechCorp",
		})
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
		assert.Equal(t, 0, logs.Len())
	})

	t.Run("Should keep free text in the email field out of the audit log", func(t *testing.T) {
		uc, logs := newFormUsecase(false)

		result, err := uc.Validate(ctx, validation.RoleEmployer, map[string]string{
			"email":    "555-867-5309 jane.doe",
			"password": "",
		})
		require.NoError(t, err)
		assert.False(t, result.Valid)

		require.Equal(t, 1, logs.Len())
		subject, _ := logs.All()[0].ContextMap()["subject_value"].(string)
		assert.Equal(t, "***", subject)
		assert.NotContains(t, subject, "867")
		assert.NotContains(t, subject, "jane")
	})

	t.Run("Should reject unsupported roles with 400", func(t *testing.T) {
		uc, logs := newFormUsecase(false)

		_, err := uc.Validate(ctx, "unsupported", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
		assert.ErrorIs(t, err, validation.ErrUnsupportedRole)
		assert.Equal(t, "unsupported_role", logs.All()[0].Message)
	})

	t.Run("Should apply format rules in strict mode", func(t *testing.T) {
		uc, _ := newFormUsecase(true)

		result, err := uc.Validate(ctx, validation.RoleEmployer, map[string]string{
			"email":       "not-an-email",
			"password":    "hunter22",
			"companyName": "TechCorp",
		})
		require.NoError(t, err)
		assert.Equal(t, "Email must be a valid email address", result.Errors["email"])
	})
}

func TestFormSchema(t *testing.T) {
	uc, _ := newFormUsecase(false)
	ctx := context.Background()

	t.Run("Should list roles", func(t *testing.T) {
		assert.Equal(t, []validation.Role{validation.RoleCandidate, validation.RoleEmployer}, uc.Roles(ctx))
	})

	t.Run("Should return the role's fields", func(t *testing.T) {
		specs, err := uc.Schema(ctx, validation.RoleEmployer)
		require.NoError(t, err)
		names := make([]string, len(specs))
		for i, s := range specs {
			names[i] = s.Name
		}
		assert.Equal(t, []string{"email", "password", "companyName"}, names)
	})

	t.Run("Should reject unknown roles", func(t *testing.T) {
		_, err := uc.Schema(ctx, "admin")
		assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
	})
}

func TestEmployerDashboard(t *testing.T) {
	ctx := context.Background()

	newRepos := func() (*MockToolkitRepo, *MockListingRepo) {
		toolkit := new(MockToolkitRepo)
		toolkit.On("Stats", ctx).Return([]domain.DashboardStat{
			{Key: "diversity-hires", Value: "24"},
			{Key: domain.StatActiveListings, Value: "0"},
		}, nil)
		toolkit.On("Checklist", ctx).Return([]domain.ChecklistSection{{ID: 1, Title: "Pre-Interview"}}, nil)
		toolkit.On("Resources", ctx).Return([]domain.Resource{{ID: 1, Title: "ADA Compliance Checklist"}}, nil)
		return toolkit, new(MockListingRepo)
	}

	t.Run("Should compute the active listings stat", func(t *testing.T) {
		toolkit, listings := newRepos()
		listings.On("Count", ctx).Return(int64(3), nil)
		uc := usecase.NewEmployerUsecase(toolkit, listings)

		dash, err := uc.Dashboard(ctx, "  TechCorp ")
		require.NoError(t, err)
		assert.Equal(t, "TechCorp", dash.CompanyName)
		assert.Equal(t, "24", dash.Stats[0].Value)
		assert.Equal(t, "3", dash.Stats[1].Value)
		assert.Len(t, dash.Checklist, 1)
		assert.Len(t, dash.Resources, 1)
	})

	t.Run("Should require a company name", func(t *testing.T) {
		toolkit, listings := newRepos()
		uc := usecase.NewEmployerUsecase(toolkit, listings)

		_, err := uc.Dashboard(ctx, " ")
		assert.Equal(t, http.StatusBadRequest, appErrorCode(t, err))
		toolkit.AssertNotCalled(t, "Stats", mock.Anything)
	})

	t.Run("Should fail when the listing count fails", func(t *testing.T) {
		toolkit, listings := newRepos()
		listings.On("Count", ctx).Return(int64(0), errors.New("timeout"))
		uc := usecase.NewEmployerUsecase(toolkit, listings)

		_, err := uc.Dashboard(ctx, "TechCorp")
		assert.Error(t, err)
	})
}

func TestGetResource(t *testing.T) {
	ctx := context.Background()
	toolkit := new(MockToolkitRepo)
	toolkit.On("GetResource", ctx, int64(2)).Return(&domain.Resource{ID: 2, Type: "PDF"}, nil)
	toolkit.On("GetResource", ctx, int64(5)).Return(nil, domain.ErrNotFound)
	uc := usecase.NewEmployerUsecase(toolkit, new(MockListingRepo))

	res, err := uc.GetResource(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "PDF", res.Type)

	_, err = uc.GetResource(ctx, 5)
	assert.Equal(t, http.StatusNotFound, appErrorCode(t, err))
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("Should report redis as disabled without a checker", func(t *testing.T) {
		status := usecase.NewHealthUsecase("memory", nil).Check(ctx)
		assert.Equal(t, "ok", status["status"])
		assert.Equal(t, "memory", status["listings"])
		assert.Equal(t, "disabled", status["redis"])
	})

	t.Run("Should report redis reachability", func(t *testing.T) {
		up := usecase.NewHealthUsecase("postgres", func(context.Context) error { return nil })
		down := usecase.NewHealthUsecase("postgres", func(context.Context) error { return errors.New("refused") })

		assert.Equal(t, "connected", up.Check(ctx)["redis"])
		assert.Equal(t, "unavailable", down.Check(ctx)["redis"])
	})
}
