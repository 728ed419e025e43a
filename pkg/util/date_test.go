package util

import (
	"strconv"
	"testing"
	"time"
)

func TestParseTimestampRFC3339(t *testing.T) {
	s := "2025-02-10T08:30:00Z"
	got, ok := ParseTimestamp(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimestampSpaceSeparated(t *testing.T) {
	got, ok := ParseTimestamp("2025-02-10 08:30:00")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Hour() != 8 || got.Minute() != 30 {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimestampUnix(t *testing.T) {
	ts := time.Date(2025, 2, 10, 8, 30, 0, 0, time.UTC).Unix()
	got, ok := ParseTimestamp(strconv.FormatInt(ts, 10))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != ts {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}

func TestParseTimestampDefault(t *testing.T) {
	def := time.Date(2025, 2, 10, 8, 30, 0, 0, time.UTC)
	got := ParseTimestampDefault("", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}

func TestFormatHourRange(t *testing.T) {
	if got := FormatHourRange(7); got != "07:00-08:00" {
		t.Fatalf("unexpected range %q", got)
	}
	if got := FormatHourRange(17); got != "17:00-18:00" {
		t.Fatalf("unexpected range %q", got)
	}
}
