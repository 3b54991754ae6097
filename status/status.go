// Package status defines the three-way verdict shared by every analyzer.
package status

import (
	"encoding/json"
	"fmt"
)

// Status is the outcome of one check. Higher values are worse.
type Status int

const (
	Achieved  Status = iota // requirement met
	Close                   // near the requirement
	Violation               // requirement not met
)

// statusNames maps Status values to their string names.
var statusNames = [...]string{
	Achieved:  "achieved",
	Close:     "close",
	Violation: "violation",
}

// statusFromName maps string names back to Status values.
var statusFromName = map[string]Status{
	"achieved":  Achieved,
	"close":     Close,
	"violation": Violation,
}

// String returns the name of the status.
func (s Status) String() string {
	if int(s) >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalJSON encodes the status as a JSON string (e.g. "achieved").
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "close") into a Status.
func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, ok := statusFromName[str]
	if !ok {
		return fmt.Errorf("status: unknown status: %q", str)
	}
	*s = v
	return nil
}

// Bool maps a pass/fail outcome to Achieved or Violation.
func Bool(ok bool) Status {
	if ok {
		return Achieved
	}
	return Violation
}
