package ui

import (
	"testing"
	"time"
)

func TestCLFTimestampRoundTrips(t *testing.T) {
	const layout = "02/Jan/2006:15:04:05 -0700"

	at := time.Date(2025, time.March, 9, 17, 4, 5, 0, time.FixedZone("AEDT", 11*3600))
	got := CLFTimestamp(at)

	parsed, err := time.Parse(layout, got)
	if err != nil {
		t.Fatalf("timestamp %q does not parse as CLF: %v", got, err)
	}
	if !parsed.Equal(at) {
		t.Fatalf("parsed %v, want %v", parsed, at)
	}
	if got != "09/Mar/2025:06:04:05 +0000" {
		t.Fatalf("timestamp not rendered in UTC: %q", got)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	if NewLogger(false).Core().Enabled(-1) {
		t.Fatal("quiet logger should not emit debug entries")
	}
	if !NewLogger(true).Core().Enabled(-1) {
		t.Fatal("verbose logger should emit debug entries")
	}
}
