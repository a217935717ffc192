package calendar

import (
	"encoding/json"
)

type rangeJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MarshalJSON writes the range as calendar dates. The zero range is null.
func (r DateRange) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(rangeJSON{Start: r.StartDate(), End: r.EndDate()})
}

// UnmarshalJSON re-validates the range, so persisted data that no longer
// satisfies the invariants is rejected.
func (r *DateRange) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = DateRange{}
		return nil
	}
	var raw rangeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseRange(raw.Start, raw.End)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
