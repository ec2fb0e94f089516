package config

import (
	"errors"
	"strings"

	"github.com/samber/lo"
)

// ErrInvalidConfig matches every *ValidationError via errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// Violation is a single failed constraint.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}

// ValidationError reports every field of a merged configuration that breaks
// the schema.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return ErrInvalidConfig.Error() + ": " + strings.Join(e.Messages(), ", ")
}

// Is makes errors.Is(err, ErrInvalidConfig) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Messages returns one "field: message" line per violation.
func (e *ValidationError) Messages() []string {
	return lo.Map(e.Violations, func(v Violation, _ int) string {
		return v.String()
	})
}

// Fields returns the violated field paths in report order.
func (e *ValidationError) Fields() []string {
	return lo.Map(e.Violations, func(v Violation, _ int) string {
		return v.Field
	})
}

// HasField reports whether field has at least one violation.
func (e *ValidationError) HasField(field string) bool {
	return lo.ContainsBy(e.Violations, func(v Violation) bool {
		return v.Field == field
	})
}

// AsValidationError unwraps err into a *ValidationError if it holds one.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
