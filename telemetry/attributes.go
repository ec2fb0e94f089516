package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

var (
	ServiceNameKey           = semconv.ServiceNameKey
	DeploymentEnvironmentKey = semconv.DeploymentEnvironmentKey
	ExceptionMessageKey      = semconv.ExceptionMessageKey
	ExceptionTypeKey         = semconv.ExceptionTypeKey
	ExceptionStacktraceKey   = semconv.ExceptionStacktraceKey
	URLFullKey               = semconv.URLFullKey
	UserAgentOriginalKey     = semconv.UserAgentOriginalKey

	SessionIDKey = attribute.Key("session.id")
	UserIDKey    = attribute.Key("enduser.id")

	AttrEventIDKey          = attribute.Key("observer.event.id")
	AttrEventTypeKey        = attribute.Key("observer.event.type")
	AttrEventSourceKey      = attribute.Key("observer.event.source")
	AttrVisitorIDKey        = attribute.Key("observer.visitor.id")
	AttrPageReferrerKey     = attribute.Key("observer.page.referrer")
	AttrPageTitleKey        = attribute.Key("observer.page.title")
	AttrScreenWidthKey      = attribute.Key("observer.screen.width")
	AttrScreenHeightKey     = attribute.Key("observer.screen.height")
	AttrLanguageKey         = attribute.Key("observer.language")
	AttrCustomNameKey       = attribute.Key("observer.custom.name")
	AttrCustomPropertiesKey = attribute.Key("observer.custom.properties")
	AttrErrorKindKey        = attribute.Key("observer.error.type")
	AttrErrorContextKey     = attribute.Key("observer.error.context")
	AttrTRPCPathKey         = attribute.Key("observer.trpc.path")
	AttrPayloadEventsKey    = attribute.Key("observer.payload.events")
)
