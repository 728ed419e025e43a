package util

import (
	"strconv"
	"time"
)

// snapshotLayouts are the timestamp formats seen in station snapshot exports,
// tried in order.
var snapshotLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
}

// ParseTimestamp tries the known snapshot layouts and unix seconds.
// Returns (t, true) if any worked.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range snapshotLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
		return time.Unix(ts, 0), true
	}
	return time.Time{}, false
}

// ParseTimestampDefault parses a timestamp or returns default if empty/invalid.
func ParseTimestampDefault(s string, def time.Time) time.Time {
	if t, ok := ParseTimestamp(s); ok {
		return t
	}
	return def
}

// FormatHourRange renders an hour of day as the "HH:00-HH:00" interval used
// by the peak-hour summary panel.
func FormatHourRange(hour int) string {
	return twoDigit(hour) + ":00-" + twoDigit(hour+1) + ":00"
}

func twoDigit(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
