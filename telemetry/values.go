package telemetry

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/log"
)

// Value converts a decoded JSON-like value into a log.Value. Maps are emitted
// with sorted keys so the same input always yields the same record.
func Value(v any) log.Value {
	switch val := v.(type) {
	case nil:
		return log.Value{}
	case string:
		return log.StringValue(val)
	case bool:
		return log.BoolValue(val)
	case int:
		return log.IntValue(val)
	case int32:
		return log.Int64Value(int64(val))
	case int64:
		return log.Int64Value(val)
	case float32:
		return log.Float64Value(float64(val))
	case float64:
		return log.Float64Value(val)
	case []byte:
		return log.BytesValue(val)
	case []string:
		return log.SliceValue(lo.Map(val, func(s string, _ int) log.Value { return log.StringValue(s) })...)
	case []any:
		return log.SliceValue(lo.Map(val, func(item any, _ int) log.Value { return Value(item) })...)
	case map[string]any:
		return log.MapValue(KeyValues(val)...)
	case error:
		return log.StringValue(val.Error())
	case fmt.Stringer:
		return log.StringValue(val.String())
	default:
		return log.StringValue(fmt.Sprintf("%+v", val))
	}
}

// KeyValues converts m into log attributes ordered by key.
func KeyValues(m map[string]any) []log.KeyValue {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return lo.Map(keys, func(k string, _ int) log.KeyValue {
		return log.KeyValue{Key: k, Value: Value(m[k])}
	})
}
