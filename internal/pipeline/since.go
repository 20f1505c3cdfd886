package pipeline

import (
	"fmt"
	"time"
)

// ParseSince accepts an RFC3339 timestamp, a YYYY-MM-DD date or a duration before now.
func ParseSince(raw string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return now.Add(-d), nil
	}
	return time.Time{}, fmt.Errorf("invalid since %q: want RFC3339, YYYY-MM-DD or a duration", raw)
}
