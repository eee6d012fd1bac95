package models

import "encoding/json"

// RawRecord is one untrusted access-log entry as received on the wire.
// Fields may be absent or wrong-typed; the engine's validator decides what
// survives.
type RawRecord map[string]any

// UnmarshalJSON tolerates entries that are not objects at all. Such entries
// decode to a nil record, which validation drops like any other malformed
// record; one garbage element must not fail the whole batch.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		*r = nil
		return nil
	}
	*r = fields
	return nil
}

// AnalyzeRequest is the payload of an analyze call. A nil Logs collection is
// an invalid argument; an empty one is a valid request yielding the canonical
// empty report. Thresholds, when set, override the configured tables for this
// call only.
type AnalyzeRequest struct {
	Logs       []RawRecord `json:"logs"`
	Thresholds *Thresholds `json:"thresholds,omitempty"`
}
