package helper_util

import (
	"time"
)

// StoredTimeLayout has a fixed-width fraction so stored timestamps sort
// lexically in time order.
const StoredTimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// FormatTime renders timestamps the way they are stored on graph nodes
func FormatTime(t time.Time) string {
	return t.UTC().Format(StoredTimeLayout)
}

func ParseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseNullableTime accepts a stored string or a native temporal value.
func ParseNullableTime(value interface{}) *time.Time {
	switch v := value.(type) {
	case time.Time:
		return &v
	case string:
		if v == "" {
			return nil
		}
		t := ParseTime(v)
		if t.IsZero() {
			return nil
		}
		return &t
	default:
		return nil
	}
}
