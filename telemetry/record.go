package telemetry

import (
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/log"

	"github.com/teneburu/observer/event"
)

// Attributes returns the span attributes identifying e.
func Attributes(e event.Event) []attribute.KeyValue {
	h := e.Header()
	attrs := []attribute.KeyValue{
		AttrEventIDKey.String(h.EventID),
		AttrEventTypeKey.String(string(e.Type())),
		AttrEventSourceKey.String(string(h.Source)),
	}
	if h.SessionID != "" {
		attrs = append(attrs, SessionIDKey.String(h.SessionID))
	}
	return attrs
}

// Record converts e into an OpenTelemetry log record. Error events get error
// severity, everything else is informational.
func Record(e event.Event) (log.Record, error) {
	return event.Match(e, pageViewRecord, customRecord, errorRecord)
}

func newRecord(e event.Event, body string, severity log.Severity, severityText string) log.Record {
	h := e.Header()

	var r log.Record
	r.SetTimestamp(time.UnixMilli(h.Timestamp))
	r.SetObservedTimestamp(time.Now())
	r.SetSeverity(severity)
	r.SetSeverityText(severityText)
	r.SetBody(log.StringValue(body))
	r.AddAttributes(
		log.String(string(AttrEventIDKey), h.EventID),
		log.String(string(AttrEventTypeKey), string(e.Type())),
		log.String(string(AttrEventSourceKey), string(h.Source)),
	)
	addString(&r, SessionIDKey, h.SessionID)
	addString(&r, AttrVisitorIDKey, h.VisitorID)
	addString(&r, UserIDKey, h.UserID)
	return r
}

func pageViewRecord(pv *event.PageView) log.Record {
	r := newRecord(pv, pv.URL, log.SeverityInfo, "INFO")
	addString(&r, URLFullKey, pv.URL)
	addString(&r, AttrPageReferrerKey, pv.Referrer)
	addString(&r, AttrPageTitleKey, pv.Title)
	addString(&r, AttrLanguageKey, pv.Language)
	if pv.ScreenWidth != 0 || pv.ScreenHeight != 0 {
		r.AddAttributes(
			log.Int(string(AttrScreenWidthKey), pv.ScreenWidth),
			log.Int(string(AttrScreenHeightKey), pv.ScreenHeight),
		)
	}
	return r
}

func customRecord(c *event.CustomEvent) log.Record {
	r := newRecord(c, c.Name, log.SeverityInfo, "INFO")
	r.AddAttributes(log.String(string(AttrCustomNameKey), c.Name))
	if len(c.Properties) > 0 {
		r.AddAttributes(log.Map(string(AttrCustomPropertiesKey), KeyValues(c.Properties)...))
	}
	return r
}

func errorRecord(ee *event.ErrorEvent) log.Record {
	r := newRecord(ee, ee.Error.Message, log.SeverityError, "ERROR")
	r.AddAttributes(log.String(string(ExceptionMessageKey), ee.Error.Message))
	addString(&r, ExceptionTypeKey, ee.Error.Name)
	addString(&r, ExceptionStacktraceKey, ee.Error.StackTrace)
	addString(&r, AttrErrorKindKey, ee.Error.Type)
	addString(&r, URLFullKey, ee.URL)
	addString(&r, UserAgentOriginalKey, ee.UserAgent)
	addString(&r, AttrTRPCPathKey, ee.TRPCPath)
	if len(ee.Context) > 0 {
		r.AddAttributes(log.Map(string(AttrErrorContextKey), KeyValues(ee.Context)...))
	}
	return r
}

func addString(r *log.Record, key attribute.Key, value string) {
	if value == "" {
		return
	}
	r.AddAttributes(log.String(string(key), value))
}
