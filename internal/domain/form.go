package domain

import (
	"context"

	"github.com/itspb-ux/AccessHire/pkg/validation"
)

// FormResult is the outcome of one validation pass
type FormResult struct {
	Role   validation.Role   `json:"role"`
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

type FormUsecase interface {
	Validate(ctx context.Context, role validation.Role, fields map[string]string) (*FormResult, error)
	Schema(ctx context.Context, role validation.Role) ([]validation.FieldSpec, error)
	Roles(ctx context.Context) []validation.Role
}
