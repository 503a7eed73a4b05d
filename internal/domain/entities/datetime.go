package entities

import (
	"fmt"
	"strconv"
	"time"
)

// localDateTimeLayout is the backend's zone-less timestamp format.
const localDateTimeLayout = "2006-01-02T15:04:05"

// LocalDateTime wraps time.Time with the backend's LocalDateTime JSON
// encoding (no zone offset, optional fractional seconds on input).
type LocalDateTime struct {
	time.Time
}

// NewLocalDateTime builds a LocalDateTime from a time.Time.
func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t}
}

// MarshalJSON encodes the timestamp in the backend layout.
func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.Format(localDateTimeLayout))), nil
}

// UnmarshalJSON accepts the backend layout with or without fractional seconds.
func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("unable to parse LocalDateTime from %s", data)
	}
	for _, layout := range []string{localDateTimeLayout, "2006-01-02T15:04:05.999999999", time.RFC3339} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unable to parse LocalDateTime %q", raw)
}
