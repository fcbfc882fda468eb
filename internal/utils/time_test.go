package utils

import "testing"

func TestParseClockToleratesSeconds(t *testing.T) {
	for _, raw := range []string{"19:00", "19:00:00"} {
		got, err := ParseClock(raw)
		if err != nil {
			t.Fatalf("ParseClock(%q) returned error: %v", raw, err)
		}
		if got.Hour() != 19 || got.Minute() != 0 {
			t.Fatalf("ParseClock(%q) = %v", raw, got)
		}
	}
	if _, err := ParseClock("7pm"); err == nil {
		t.Fatalf("expected error for unparsable clock value")
	}
}

func TestClockHM(t *testing.T) {
	if got := ClockHM("19:00:00"); got != "19:00" {
		t.Fatalf("ClockHM = %q", got)
	}
	if got := ClockHM(" 9:00"); got != "9:00" {
		t.Fatalf("ClockHM should trim, got %q", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-12")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if d.Year() != 2026 || d.Month() != 9 || d.Day() != 12 {
		t.Fatalf("ParseDate = %v", d)
	}
	if _, err := ParseDate("12/09/2026"); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
}
