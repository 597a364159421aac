package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps form field names to user-friendly labels. Catalog
// fields without a label of their own are looked up here.
var FieldLabels = map[string]string{
	"email":                   "Email",
	"password":                "Password",
	"companyName":             "Company Name",
	"accessibilityPreference": "Primary Accessibility Preference",
	"fullName":                "Full Name",
}

// formatFieldError renders a single rule failure for the given label
func formatFieldError(label string, e validator.FieldError) string {
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, formatOneOfOptions(param))

	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)

	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)

	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, numbers, spaces and common punctuation", label)

	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji or special symbols", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts camelCase to capitalized, spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		switch {
		case i == 0 && r >= 'a' && r <= 'z':
			r -= 'a' - 'A'
		case i > 0 && r >= 'A' && r <= 'Z':
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}

// formatOneOfOptions formats oneof options for display
func formatOneOfOptions(param string) string {
	return strings.Join(strings.Fields(param), ", ")
}
