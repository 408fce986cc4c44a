package sqlite

import (
	"time"
)

// dbTimeLayout keeps a fixed-width fraction so stored values sort lexically in time order.
const dbTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// FormatTimeForDB formats a time.Time value as a fixed-width RFC3339 string in UTC
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(dbTimeLayout)
}

// ParseTimeFromDB parses a time written by FormatTimeForDB. Plain RFC3339 values are accepted as well.
func ParseTimeFromDB(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
