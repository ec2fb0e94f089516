package event

import (
	"encoding/json"
	"fmt"
)

// PayloadConfig is the configuration snapshot sent with every batch.
type PayloadConfig struct {
	ServiceName string `json:"serviceName"`
	Environment string `json:"environment"`
}

// Payload is a batch of events ready to be handed to a transport. Events
// keep the order in which they were supplied.
type Payload struct {
	Config PayloadConfig `json:"config"`
	Events []Event       `json:"events"`
}

// NewPayload copies events into a new batch.
func NewPayload(cfg PayloadConfig, events ...Event) Payload {
	return Payload{
		Config: cfg,
		Events: append(make([]Event, 0, len(events)), events...),
	}
}

// Len returns the number of events in the batch.
func (p Payload) Len() int {
	return len(p.Events)
}

// CountByType tallies the batch per variant. Nil entries are not counted.
func (p Payload) CountByType() map[Type]int {
	counts := make(map[Type]int, len(Types))
	for _, e := range p.Events {
		if IsNil(e) {
			continue
		}
		counts[e.Type()]++
	}
	return counts
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	var raw struct {
		Config PayloadConfig     `json:"config"`
		Events []json.RawMessage `json:"events"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	events := make([]Event, 0, len(raw.Events))
	for i, msg := range raw.Events {
		e, err := Decode(msg)
		if err != nil {
			return fmt.Errorf("decode payload event %d: %w", i, err)
		}
		events = append(events, e)
	}

	p.Config = raw.Config
	p.Events = events
	return nil
}
