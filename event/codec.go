package event

import (
	"encoding/json"
	"fmt"
)

// The variants marshal as flat JSON objects with the discriminant first:
// {"type":"page_view","eventId":"...","timestamp":1700000000000,...}

func (e PageView) MarshalJSON() ([]byte, error) {
	type plain PageView
	return json.Marshal(struct {
		Type Type `json:"type"`
		plain
	}{TypePageView, plain(e)})
}

func (e CustomEvent) MarshalJSON() ([]byte, error) {
	type plain CustomEvent
	return json.Marshal(struct {
		Type Type `json:"type"`
		plain
	}{TypeCustom, plain(e)})
}

func (e ErrorEvent) MarshalJSON() ([]byte, error) {
	type plain ErrorEvent
	return json.Marshal(struct {
		Type Type `json:"type"`
		plain
	}{TypeError, plain(e)})
}

// Decode parses a single JSON event, choosing the variant from its "type"
// field.
func Decode(data []byte) (Event, error) {
	var head struct {
		Type Type `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}

	var e Event
	switch head.Type {
	case TypePageView:
		e = &PageView{}
	case TypeCustom:
		e = &CustomEvent{}
	case TypeError:
		e = &ErrorEvent{}
	default:
		return nil, fmt.Errorf("decode event: %w: %q", ErrUnknownType, head.Type)
	}

	if err := json.Unmarshal(data, e); err != nil {
		return nil, fmt.Errorf("decode %s event: %w", head.Type, err)
	}
	return e, nil
}
