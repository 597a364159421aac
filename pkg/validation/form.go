package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Role selects which required-field table a form is validated against
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
)

// ErrUnsupportedRole is returned for roles missing from the form schema
var ErrUnsupportedRole = errors.New("unsupported role")

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldSpec describes one required form field
type FieldSpec struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Rules   string   `json:"rules,omitempty"` // Extra validator tags, checked only in strict mode
	Options []Option `json:"options,omitempty"`
}

// FormSchema is the role-indexed required-field table
type FormSchema map[Role][]FieldSpec

// DefaultFormSchema returns the sign-up table used when no catalog overrides it
func DefaultFormSchema() FormSchema {
	email := FieldSpec{Name: "email", Label: "Email", Rules: "email"}
	password := FieldSpec{Name: "password", Label: "Password", Rules: "min=8"}

	return FormSchema{
		RoleCandidate: {
			email,
			password,
			{
				Name:  "accessibilityPreference",
				Label: "Primary Accessibility Preference",
				Rules: "oneof=screen-reader keyboard-only high-contrast general",
				Options: []Option{
					{Value: "screen-reader", Label: "Screen Reader Optimized"},
					{Value: "keyboard-only", Label: "Keyboard Only"},
					{Value: "high-contrast", Label: "Visual Aids/High Contrast"},
					{Value: "general", Label: "General"},
				},
			},
		},
		RoleEmployer: {
			email,
			password,
			{Name: "companyName", Label: "Company Name", Rules: "valid_name,no_emoji"},
		},
	}
}

// FormValidator checks field presence per role. It holds no mutable state
// and is safe for concurrent use.
type FormValidator struct {
	schema   FormSchema
	validate *validator.Validate
	strict   bool
}

// NewFormValidator builds a validator over schema. A nil validate gets a
// fresh instance with the custom tags registered. When strict is set, present
// values are also checked against each field's Rules.
func NewFormValidator(schema FormSchema, validate *validator.Validate, strict bool) *FormValidator {
	if validate == nil {
		validate = NewValidator()
	}
	if schema == nil {
		schema = DefaultFormSchema()
	}
	return &FormValidator{schema: withLabels(schema), validate: validate, strict: strict}
}

// withLabels copies schema, filling blank labels from FieldLabels
func withLabels(schema FormSchema) FormSchema {
	out := make(FormSchema, len(schema))
	for role, specs := range schema {
		labeled := make([]FieldSpec, len(specs))
		for i, spec := range specs {
			if strings.TrimSpace(spec.Label) == "" {
				spec.Label = getFieldLabel(spec.Name)
			}
			labeled[i] = spec
		}
		out[role] = labeled
	}
	return out
}

// Roles returns the supported roles in lexical order
func (v *FormValidator) Roles() []Role {
	roles := make([]Role, 0, len(v.schema))
	for role := range v.schema {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// Fields returns a copy of the role's field table
func (v *FormValidator) Fields(role Role) ([]FieldSpec, error) {
	specs, ok := v.schema[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRole, role)
	}
	out := make([]FieldSpec, len(specs))
	copy(out, specs)
	return out, nil
}

// Validate returns field name -> message for every required field of role
// that is missing or blank. An empty map means the form may be submitted.
// Fields outside the role's table are ignored.
func (v *FormValidator) Validate(role Role, fields map[string]string) (map[string]string, error) {
	specs, ok := v.schema[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRole, role)
	}

	errs := make(map[string]string)
	for _, spec := range specs {
		value := strings.TrimSpace(fields[spec.Name])

		if msg := v.check(spec.Label, value, "required"); msg != "" {
			errs[spec.Name] = msg
			continue
		}
		if v.strict && spec.Rules != "" {
			if msg := v.check(spec.Label, value, spec.Rules); msg != "" {
				errs[spec.Name] = msg
			}
		}
	}
	return errs, nil
}

func (v *FormValidator) check(label, value, tag string) string {
	err := v.validate.Var(value, tag)
	if err == nil {
		return ""
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return formatFieldError(label, fieldErrs[0])
	}
	return fmt.Sprintf("%s is invalid", label)
}
