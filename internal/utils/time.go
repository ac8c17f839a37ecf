package utils

import "time"

// ISOTimeLayout renders timestamps in UTC with millisecond precision and a
// "Z" suffix, e.g. 2026-10-19T08:15:30.123Z.
const ISOTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatISOTime formats t with [ISOTimeLayout] after converting it to UTC.
func FormatISOTime(t time.Time) string {
	return t.UTC().Format(ISOTimeLayout)
}
