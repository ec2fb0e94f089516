// Package event declares the telemetry event model: a closed set of event
// variants sharing a common header, and the Payload envelope used to ship a
// batch of events together with a minimal configuration snapshot.
//
// Events are plain values. Nothing here validates them; producers are
// expected to fill the fields required by each variant, and should not
// modify an event once it has been handed to a Payload.
package event

// Type is the discriminant carried in the "type" field of every event.
type Type string

const (
	TypePageView Type = "page_view"
	TypeCustom   Type = "custom_event"
	TypeError    Type = "error"
)

// Types lists every variant, in declaration order.
var Types = []Type{TypePageView, TypeCustom, TypeError}

// Source is where an event was produced.
type Source string

const (
	SourceClient Source = "client"
	SourceServer Source = "server"
)

// Base holds the fields shared by every event.
type Base struct {
	EventID   string `json:"eventId"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
	Source    Source `json:"source"`

	// Correlation keys, from broadest to most specific identity.
	SessionID string `json:"sessionId,omitempty"`
	VisitorID string `json:"visitorId,omitempty"`
	UserID    string `json:"userId,omitempty"`
}

// Header returns the shared fields.
func (b Base) Header() Base {
	return b
}

// Event is implemented by *PageView, *CustomEvent and *ErrorEvent only.
// Use Visit to handle all of them.
type Event interface {
	Type() Type
	Header() Base
	isEvent()
}

// PageView records a page being displayed.
type PageView struct {
	Base
	URL          string `json:"url"`
	Referrer     string `json:"referrer,omitempty"`
	Title        string `json:"title,omitempty"`
	ScreenWidth  int    `json:"screenWidth,omitempty"`
	ScreenHeight int    `json:"screenHeight,omitempty"`
	Language     string `json:"language,omitempty"`
}

// CustomEvent records an application-defined action.
type CustomEvent struct {
	Base
	Name       string         `json:"name"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Values for ErrorDetail.Type.
const (
	ErrorTypeUnhandledException = "unhandled_exception"
	ErrorTypeUnhandledRejection = "unhandled_rejection"
	ErrorTypeRenderingError     = "rendering_error"
	ErrorTypeCapturedException  = "captured_exception"
	ErrorTypePanic              = "panic"
)

// ErrorDetail describes the failure carried by an ErrorEvent.
type ErrorDetail struct {
	Message    string `json:"message"`
	Name       string `json:"name,omitempty"`
	StackTrace string `json:"stackTrace,omitempty"`
	Type       string `json:"type,omitempty"`
}

// ErrorEvent records a client or server error.
type ErrorEvent struct {
	Base
	Error     ErrorDetail    `json:"error"`
	Context   map[string]any `json:"context,omitempty"`
	URL       string         `json:"url,omitempty"`       // client side
	UserAgent string         `json:"userAgent,omitempty"` // client side
	TRPCPath  string         `json:"trpcPath,omitempty"`  // server side
}

func (*PageView) Type() Type    { return TypePageView }
func (*CustomEvent) Type() Type { return TypeCustom }
func (*ErrorEvent) Type() Type  { return TypeError }

func (*PageView) isEvent()    {}
func (*CustomEvent) isEvent() {}
func (*ErrorEvent) isEvent()  {}
