// Package isotime formats the ISO-8601 timestamps carried by domain records.
package isotime

import "time"

// Layout is RFC 3339 with nanoseconds, always rendered in UTC.
const Layout = time.RFC3339Nano

// Clock returns the current instant. Tests replace it to pin "now".
var Clock = time.Now

// Format renders t in UTC using Layout.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Now returns the current instant formatted with Format.
func Now() string {
	return Format(Clock())
}

// FormatPtr returns nil for a nil time, the formatted value otherwise.
func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Format(*t)
	return &s
}

// Parse accepts any RFC 3339 timestamp, with or without fractional seconds.
func Parse(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// Valid reports whether s is a parseable ISO-8601 timestamp.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
