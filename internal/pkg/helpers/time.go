package helpers

import "time"

const DateLayout = "2006-01-02"

// DayKey formats t as a calendar date in UTC.
func DayKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate accepts a bare date or an RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
