package config

import (
	"errors"
	"net/url"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validator accumulates field violations so that every problem is reported,
// not only the first one.
type Validator struct {
	violations []Violation
	err        error
}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{}
}

// AddError records a violation for a field
func (v *Validator) AddError(field, message string) {
	v.violations = append(v.violations, Violation{Field: field, Message: message})
}

// RequireNonEmpty validates that a string field is not empty
func (v *Validator) RequireNonEmpty(field, value string) {
	if value == "" {
		v.AddError(field, "cannot be empty")
	}
}

// RequireURL validates that value is an absolute URL (scheme and host).
func (v *Validator) RequireURL(field, value string) {
	if !v.isURL(value) {
		v.AddError(field, "must be an absolute URL")
	}
}

// RequireURLOrPath accepts an absolute URL or an absolute path such as
// "/api/observer".
func (v *Validator) RequireURLOrPath(field, value string) {
	if isAbsolutePath(value) {
		return
	}
	if !v.isURL(value) {
		v.AddError(field, "must be an absolute URL or a path starting with /")
	}
}

func (v *Validator) isURL(value string) bool {
	if value == "" {
		return false
	}
	err := validate.Var(value, "url")
	if err == nil {
		return true
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) && v.err == nil {
		// Not a rule violation; surfaced as-is by Err.
		v.err = err
	}
	return false
}

func isAbsolutePath(value string) bool {
	if !strings.HasPrefix(value, "/") || strings.HasPrefix(value, "//") {
		return false
	}
	_, err := url.ParseRequestURI(value)
	return err == nil
}

// Err returns the first unexpected failure unchanged, otherwise a
// *ValidationError carrying every violation, or nil.
func (v *Validator) Err() error {
	if v.err != nil {
		return v.err
	}
	if len(v.violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: slices.Clone(v.violations)}
}
