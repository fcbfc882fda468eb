package services

import (
	"strings"
	"testing"

	"harrylist/internal/domain"
)

func TestSubmittedEmailBody(t *testing.T) {
	r := feedReservation()
	body := buildSubmittedEmailBody(r, "Hubble and Meteor Community Cafes")

	for _, want := range []string{
		"Dear Eva Janssen,",
		"K7XP2A",
		"Board Game Night",
		"Saturday, September 12, 2026",
		"19:00 - 23:00",
		"Hubble Community Café",
		"Pending Review",
		"Hubble and Meteor Community Cafes",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("submitted body missing %q", want)
		}
	}
}

func TestStatusChangeCopyPerStatus(t *testing.T) {
	cases := []struct {
		status  domain.ReservationStatus
		color   string
		message string
		subject string
	}{
		{domain.StatusConfirmed, "#4CAF50", "pleased to confirm", "Reservation Confirmed - "},
		{domain.StatusRejected, "#f44336", "unable to accommodate", "Reservation Request - "},
		{domain.StatusCancelled, "#f44336", "cancelled as requested", "Reservation Cancelled - "},
		{domain.StatusCompleted, "#2196F3", "hope you had a great event", "Thank You - "},
		{domain.StatusPending, "#FF9800", "status has been updated", "Reservation Update - "},
	}
	for _, tc := range cases {
		if got := statusChangeColor(tc.status); got != tc.color {
			t.Fatalf("%s: color = %q, want %q", tc.status, got, tc.color)
		}
		if got := statusChangeMessage(tc.status); !strings.Contains(got, tc.message) {
			t.Fatalf("%s: message %q missing %q", tc.status, got, tc.message)
		}

		r := feedReservation()
		r.Status = tc.status
		if got := statusChangeSubject(r); !strings.HasPrefix(got, tc.subject) {
			t.Fatalf("%s: subject = %q", tc.status, got)
		}
		body := buildStatusChangeEmailBody(r, "Bar")
		if !strings.Contains(body, tc.color) {
			t.Fatalf("%s: body missing color %s", tc.status, tc.color)
		}
	}
}

func TestStaffNotificationBodyDefaults(t *testing.T) {
	r := feedReservation()
	r.PhoneNumber = ""
	r.OrganizationName = ""
	body := buildStaffNotificationBody(r)

	if !strings.Contains(body, "Not provided") {
		t.Fatalf("blank contact fields should read 'Not provided'")
	}
	if !strings.Contains(body, "Board Game Night") || !strings.Contains(body, "eva@example.org") {
		t.Fatalf("staff body missing reservation facts")
	}
}

func TestCustomEmailBodyConvertsNewlines(t *testing.T) {
	r := feedReservation()
	body := buildCustomEmailBody(r, "first line\nsecond line", "Bar", "staff@example.org")

	if !strings.Contains(body, "first line<br>second line") {
		t.Fatalf("newlines not converted to <br>:\n%s", body)
	}
	if !strings.Contains(body, "#6b46c1") {
		t.Fatalf("custom mail should use the custom accent color")
	}
}

func TestLetterDate(t *testing.T) {
	if got := letterDate("2026-09-12"); got != "Saturday, September 12, 2026" {
		t.Fatalf("letterDate = %q", got)
	}
	// Unparsable input falls through untouched.
	if got := letterDate("soon"); got != "soon" {
		t.Fatalf("letterDate passthrough = %q", got)
	}
}
