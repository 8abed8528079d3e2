package helpers

import "time"

// DateLayout is the wire format for date-typed values in JSON responses.
const DateLayout = "2006-01-02"

// FormatDate renders a date-typed value as ISO-8601 text.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatNullableDate renders an optional date, or nil when absent.
func FormatNullableDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// ParseDate parses an ISO-8601 date string into a local start-of-day time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}
