package response

import (
	"encoding/json"
	"time"
)

// Resp is the JSON envelope every handler returns.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a calendar date travelling as "YYYY-MM-DD". Deadline dates are UTC
// midnights, so both directions work in UTC rather than server-local time.
type Date time.Time

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateFormat))
}

// UnmarshalJSON implements json.Unmarshaler. An empty string decodes to the
// zero Date.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

// Time returns the date as a time.Time.
func (d Date) Time() time.Time { return time.Time(d) }
