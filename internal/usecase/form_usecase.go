package usecase

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"github.com/itspb-ux/AccessHire/internal/domain"
	"github.com/itspb-ux/AccessHire/pkg/apperror"
	"github.com/itspb-ux/AccessHire/pkg/security"
	"github.com/itspb-ux/AccessHire/pkg/validation"
)

type formUsecase struct {
	validator *validation.FormValidator
	audit     *security.SecurityLogger
}

// NewFormUsecase wraps v. audit may be nil, in which case no audit events
// are written.
func NewFormUsecase(v *validation.FormValidator, audit *security.SecurityLogger) domain.FormUsecase {
	return &formUsecase{validator: v, audit: audit}
}

func (u *formUsecase) Validate(ctx context.Context, role validation.Role, fields map[string]string) (*domain.FormResult, error) {
	errs, err := u.validator.Validate(role, fields)
	if err != nil {
		return nil, u.roleError(ctx, role, err)
	}

	result := &domain.FormResult{
		Role:   role,
		Valid:  len(errs) == 0,
		Errors: errs,
	}

	if !result.Valid && u.audit != nil {
		failed := make([]string, 0, len(errs))
		for name := range errs {
			failed = append(failed, name)
		}
		sort.Strings(failed)
		u.audit.LogValidationFailed(ctx, string(role), fields["email"], requestID(ctx), failed)
	}
	return result, nil
}

func (u *formUsecase) Schema(ctx context.Context, role validation.Role) ([]validation.FieldSpec, error) {
	specs, err := u.validator.Fields(role)
	if err != nil {
		return nil, u.roleError(ctx, role, err)
	}
	return specs, nil
}

func (u *formUsecase) Roles(_ context.Context) []validation.Role {
	return u.validator.Roles()
}

func (u *formUsecase) roleError(ctx context.Context, role validation.Role, err error) error {
	if !errors.Is(err, validation.ErrUnsupportedRole) {
		return err
	}
	if u.audit != nil {
		u.audit.LogUnsupportedRole(ctx, string(role), requestID(ctx))
	}
	return apperror.New(http.StatusBadRequest, "unsupported role: "+string(role), err)
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(domain.KeyRequestID).(string)
	return id
}
