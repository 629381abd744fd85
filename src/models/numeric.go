package models

import (
	"fmt"
	"strconv"
)

// Numeric is an integer field that tolerates the loose typing of the admin
// client: JSON numbers (including floats, which are truncated) and numeric
// strings are all accepted, anything else is rejected so a non-numeric value
// never reaches storage.
type Numeric int64

// UnmarshalJSON unmarshals b into a Numeric.
func (n *Numeric) UnmarshalJSON(b []byte) error {
	// From json.Unmarshaler: By convention, to approximate the behavior of
	// Unmarshal itself, Unmarshalers implement UnmarshalJSON([]byte("null")) as
	// a no-op.
	if string(b) == "null" {
		return nil
	}
	if n == nil {
		return fmt.Errorf("nil receiver passed to UnmarshalJSON")
	}

	s := string(b)
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}

	if ci, err := strconv.ParseInt(s, 10, 64); err == nil {
		*n = Numeric(ci)
		return nil
	}

	if cf, err := strconv.ParseFloat(s, 64); err == nil {
		*n = Numeric(int64(cf))
		return nil
	}

	return fmt.Errorf("invalid numeric value: %q", string(b))
}
