package event

import (
	"fmt"
	"time"

	"github.com/teneburu/observer/utils"
)

// Factory stamps the shared header onto new events: a fresh event ID, the
// current time, the source and whatever correlation keys it was built with.
type Factory struct {
	source    Source
	sessionID string
	visitorID string
	userID    string

	clock func() time.Time
	newID func() string
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithSessionID sets the session correlation key.
func WithSessionID(id string) FactoryOption {
	return func(f *Factory) { f.sessionID = id }
}

// WithVisitorID sets the long-lived anonymous visitor key.
func WithVisitorID(id string) FactoryOption {
	return func(f *Factory) { f.visitorID = id }
}

// WithUserID sets the authenticated user key.
func WithUserID(id string) FactoryOption {
	return func(f *Factory) { f.userID = id }
}

// WithClock overrides time.Now.
func WithClock(clock func() time.Time) FactoryOption {
	return func(f *Factory) { f.clock = clock }
}

// WithIDGenerator overrides utils.GenerateUUID.
func WithIDGenerator(newID func() string) FactoryOption {
	return func(f *Factory) { f.newID = newID }
}

// NewFactory creates a Factory for events produced by source.
func NewFactory(source Source, opts ...FactoryOption) *Factory {
	f := &Factory{
		source: source,
		clock:  time.Now,
		newID:  utils.GenerateUUID,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithUser returns a copy of f bound to another user, e.g. after login.
func (f *Factory) WithUser(userID string) *Factory {
	cp := *f
	cp.userID = userID
	return &cp
}

func (f *Factory) header() Base {
	clock := f.clock
	if clock == nil {
		clock = time.Now
	}
	newID := f.newID
	if newID == nil {
		newID = utils.GenerateUUID
	}
	return Base{
		EventID:   newID(),
		Timestamp: clock().UnixMilli(),
		Source:    f.source,
		SessionID: f.sessionID,
		VisitorID: f.visitorID,
		UserID:    f.userID,
	}
}

// PageView returns data with its header filled in. Any header already set on
// data is replaced.
func (f *Factory) PageView(data PageView) *PageView {
	data.Base = f.header()
	return &data
}

// Custom returns a custom event named name.
func (f *Factory) Custom(name string, properties map[string]any) *CustomEvent {
	return &CustomEvent{
		Base:       f.header(),
		Name:       name,
		Properties: properties,
	}
}

// Error returns data with its header filled in.
func (f *Factory) Error(data ErrorEvent) *ErrorEvent {
	data.Base = f.header()
	return &data
}

// Exception builds an error event from err. The error name is the dynamic Go
// type of err; context is attached as-is. A nil err yields a nil event, which
// Visit, Match and transports reject with ErrUnknownType.
func (f *Factory) Exception(err error, context map[string]any) *ErrorEvent {
	if err == nil {
		return nil
	}
	return f.Error(ErrorEvent{
		Error: ErrorDetail{
			Message: err.Error(),
			Name:    fmt.Sprintf("%T", err),
			Type:    ErrorTypeCapturedException,
		},
		Context: context,
	})
}

// Panic builds an error event from a value returned by recover and the stack
// captured at that point (typically debug.Stack()).
func (f *Factory) Panic(recovered any, stack []byte) *ErrorEvent {
	detail := ErrorDetail{
		Message:    fmt.Sprint(recovered),
		Name:       fmt.Sprintf("%T", recovered),
		StackTrace: string(stack),
		Type:       ErrorTypePanic,
	}
	if err, ok := recovered.(error); ok {
		detail.Message = err.Error()
	}
	return f.Error(ErrorEvent{Error: detail})
}
