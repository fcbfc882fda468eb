package utils

import (
	"strings"
	"time"
)

const (
	LayoutDate   = "2006-01-02"
	LayoutTime   = "15:04"
	LayoutICS    = "20060102T150405"
	LayoutReport = "Monday, 2 January 2006"
	LayoutLetter = "Monday, January 2, 2006"
)

// ParseDate parses YYYY-MM-DD in the server's local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutDate, strings.TrimSpace(s), time.Local)
}

// ParseClock parses HH:MM; seconds from the store ("HH:MM:SS") are tolerated.
func ParseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(LayoutTime) {
		s = s[:len(LayoutTime)]
	}
	return time.Parse(LayoutTime, s)
}

// ClockHM normalizes a stored time value to HH:MM for display.
func ClockHM(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 5 {
		return s[:5]
	}
	return s
}
