package event

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned for an event whose variant is not part of the model.
var ErrUnknownType = errors.New("unknown event type")

// Visitor handles each event variant. Adding a variant adds a method here, so
// every implementation has to be updated before the code compiles again.
type Visitor interface {
	VisitPageView(*PageView) error
	VisitCustomEvent(*CustomEvent) error
	VisitError(*ErrorEvent) error
}

// Visit dispatches e to the matching method of v. A nil event, including a
// nil variant pointer, yields ErrUnknownType.
func Visit(e Event, v Visitor) error {
	switch e := e.(type) {
	case *PageView:
		if e != nil {
			return v.VisitPageView(e)
		}
	case *CustomEvent:
		if e != nil {
			return v.VisitCustomEvent(e)
		}
	case *ErrorEvent:
		if e != nil {
			return v.VisitError(e)
		}
	}
	return unknown(e)
}

// Match is the value-returning form of Visit. All three handlers are required.
func Match[T any](
	e Event,
	pageView func(*PageView) T,
	custom func(*CustomEvent) T,
	failure func(*ErrorEvent) T,
) (T, error) {
	switch e := e.(type) {
	case *PageView:
		if e != nil {
			return pageView(e), nil
		}
	case *CustomEvent:
		if e != nil {
			return custom(e), nil
		}
	case *ErrorEvent:
		if e != nil {
			return failure(e), nil
		}
	}
	var zero T
	return zero, unknown(e)
}

// IsNil reports whether e is nil or a nil variant pointer.
func IsNil(e Event) bool {
	switch e := e.(type) {
	case *PageView:
		return e == nil
	case *CustomEvent:
		return e == nil
	case *ErrorEvent:
		return e == nil
	default:
		return e == nil
	}
}

func unknown(e Event) error {
	if e != nil && IsNil(e) {
		return fmt.Errorf("%w: nil %T", ErrUnknownType, e)
	}
	return fmt.Errorf("%w: %T", ErrUnknownType, e)
}
