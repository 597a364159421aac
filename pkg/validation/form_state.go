package validation

// FormState is the mutable state of one form instance: the selected role,
// the values typed so far and the errors of the latest validation pass.
// It is owned by a single caller and is not safe for concurrent use.
type FormState struct {
	role      Role
	fields    map[string]string
	errors    map[string]string
	validated bool
}

func NewFormState(role Role) *FormState {
	return &FormState{
		role:   role,
		fields: make(map[string]string),
		errors: make(map[string]string),
	}
}

func (s *FormState) Role() Role {
	return s.role
}

// SetField stores a value. The previous validation result no longer counts
// toward CanSubmit.
func (s *FormState) SetField(name, value string) {
	s.fields[name] = value
	s.validated = false
}

func (s *FormState) Field(name string) string {
	return s.fields[name]
}

// Fields returns a copy of the entered values
func (s *FormState) Fields() map[string]string {
	return copyMap(s.fields)
}

// Errors returns a copy of the latest validation errors
func (s *FormState) Errors() map[string]string {
	return copyMap(s.errors)
}

// SwitchRole selects another role. Errors are dropped because they were
// computed against the other role's table; field values are kept, so shared
// fields such as email stay filled and role-specific ones come back when the
// user switches back.
func (s *FormState) SwitchRole(role Role) {
	if role == s.role {
		return
	}
	s.role = role
	s.errors = make(map[string]string)
	s.validated = false
}

// Validate replaces the error map with a fresh pass for the current role
func (s *FormState) Validate(v *FormValidator) (map[string]string, error) {
	errs, err := v.Validate(s.role, s.fields)
	if err != nil {
		s.errors = make(map[string]string)
		s.validated = false
		return nil, err
	}
	s.errors = errs
	s.validated = true
	return copyMap(errs), nil
}

// CanSubmit is true once a validation pass over the current values found
// no errors.
func (s *FormState) CanSubmit() bool {
	return s.validated && len(s.errors) == 0
}

// Reset clears values and errors, keeping the role
func (s *FormState) Reset() {
	s.fields = make(map[string]string)
	s.errors = make(map[string]string)
	s.validated = false
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
