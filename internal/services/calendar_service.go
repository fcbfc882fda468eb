package services

import (
	"fmt"
	"strings"
	"time"

	"harrylist/internal/domain"
	"harrylist/internal/domain/models"
	"harrylist/internal/repositories"
	"harrylist/internal/utils"
)

// CalendarService renders reservations as an iCalendar feed that any
// calendar app can subscribe to. Two modes: public (contact details
// redacted) and staff (everything, behind its own token).
type CalendarService struct {
	Repo repositories.ReservationRepository

	// Loader overrides the repository, for tests.
	Loader func() ([]models.Reservation, error)
	// Now overrides render time, for tests.
	Now func() time.Time
}

// FeedFilter narrows which reservations make it into a feed. An empty
// status list means no status filtering; Location matches the venue tag
// case-insensitively; UpcomingOnly keeps events dated today or later.
type FeedFilter struct {
	Statuses     []domain.ReservationStatus
	Location     string
	UpcomingOnly bool
}

const (
	feedTimezone = "Europe/Amsterdam"
	feedUIDSuffix = "@harrylist.hubble.cafe"
)

// GenerateFeed builds the full ICS document for all reservations that
// pass the filter, in store iteration order.
func (s CalendarService) GenerateFeed(filter FeedFilter, includeConfidential bool) (string, error) {
	reservations, err := s.load()
	if err != nil {
		return "", err
	}

	var today string
	if filter.UpcomingOnly {
		today = s.now().Format(utils.LayoutDate)
	}

	var selected []models.Reservation
	for _, r := range reservations {
		if filter.UpcomingOnly && (r.EventDate == "" || r.EventDate < today) {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, r.Status) {
			continue
		}
		if filter.Location != "" && !strings.EqualFold(filter.Location, string(r.Location)) {
			continue
		}
		selected = append(selected, r)
	}

	return s.buildCalendar(selected, includeConfidential), nil
}

func (s CalendarService) load() ([]models.Reservation, error) {
	if s.Loader != nil {
		return s.Loader()
	}
	return s.Repo.List()
}

func (s CalendarService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func containsStatus(set []domain.ReservationStatus, status domain.ReservationStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

func (s CalendarService) buildCalendar(reservations []models.Reservation, includeConfidential bool) string {
	var ics strings.Builder

	calendarName := "The Harry List - Reservations"
	if includeConfidential {
		calendarName = "The Harry List - Staff Reservations"
	}

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//The Harry List//Reservation System//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	ics.WriteString("X-WR-CALNAME:" + calendarName + "\r\n")
	ics.WriteString("X-WR-TIMEZONE:" + feedTimezone + "\r\n")
	ics.WriteString(timezoneDefinition)

	for _, r := range reservations {
		s.writeEvent(&ics, r, includeConfidential)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func (s CalendarService) writeEvent(ics *strings.Builder, r models.Reservation, includeConfidential bool) {
	ics.WriteString("BEGIN:VEVENT\r\n")

	fmt.Fprintf(ics, "UID:reservation-%d%s\r\n", r.ID, feedUIDSuffix)
	ics.WriteString("DTSTAMP:" + s.now().Format(utils.LayoutICS) + "\r\n")

	if !r.CreatedAt.IsZero() {
		ics.WriteString("CREATED:" + r.CreatedAt.Format(utils.LayoutICS) + "\r\n")
	}
	if !r.UpdatedAt.IsZero() {
		ics.WriteString("LAST-MODIFIED:" + r.UpdatedAt.Format(utils.LayoutICS) + "\r\n")
	}

	if start, err := eventInstant(r.EventDate, r.StartTime); err == nil {
		fmt.Fprintf(ics, "DTSTART;TZID=%s:%s\r\n", feedTimezone, start.Format(utils.LayoutICS))

		if end, err := eventInstant(r.EventDate, r.EndTime); err == nil {
			// A numerically earlier end time means the event runs past
			// midnight; shift the end to the next calendar day.
			if end.Before(start) {
				end = end.AddDate(0, 0, 1)
			}
			fmt.Fprintf(ics, "DTEND;TZID=%s:%s\r\n", feedTimezone, end.Format(utils.LayoutICS))
		}
	}

	status := r.Status
	if status == "" {
		status = domain.StatusPending
	}
	fmt.Fprintf(ics, "SUMMARY:%s! Pax: %d [%s]\r\n", escapeICSText(r.EventTitle), r.Guests(), status)

	if loc := formatEventLocation(r); loc != "" {
		ics.WriteString("LOCATION:" + escapeICSText(loc) + "\r\n")
	}

	description := buildPublicDescription(r)
	if includeConfidential {
		description = buildStaffDescription(r)
	}
	ics.WriteString("DESCRIPTION:" + escapeICSText(description) + "\r\n")

	ics.WriteString("STATUS:" + calendarStatus(r.Status) + "\r\n")

	if r.Location != "" {
		ics.WriteString("CATEGORIES:" + r.Location.DisplayName() + "\r\n")
	}

	ics.WriteString("END:VEVENT\r\n")
}

// calendarStatus maps the reservation lifecycle onto the three VEVENT
// status values calendar clients understand.
func calendarStatus(status domain.ReservationStatus) string {
	switch status {
	case domain.StatusConfirmed:
		return "CONFIRMED"
	case domain.StatusCancelled, domain.StatusRejected:
		return "CANCELLED"
	default:
		return "TENTATIVE"
	}
}

func eventInstant(date, clock string) (time.Time, error) {
	d, err := utils.ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	c, err := utils.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, time.Local), nil
}

func formatEventLocation(r models.Reservation) string {
	var sb strings.Builder
	if r.Location != "" {
		sb.WriteString(r.Location.DisplayName())
	}
	if r.SeatingArea != "" {
		sb.WriteString(" " + r.SeatingArea.DisplayName())
	}
	if r.SpecificArea != "" {
		sb.WriteString(" - " + r.SpecificArea)
	}
	return strings.TrimSpace(sb.String())
}

// buildStaffDescription includes the confidential contact block; only
// the staff feed ever sees it.
func buildStaffDescription(r models.Reservation) string {
	var sb strings.Builder

	if r.Description != "" {
		sb.WriteString(r.Description + "\n\n")
	}

	sb.WriteString("Personal Details:\n")
	sb.WriteString("Name: " + r.ContactName + "\n")
	if r.OrganizationName != "" {
		sb.WriteString("Organization: " + r.OrganizationName + "\n")
	}

	sb.WriteString("\nEvent Details:\n")
	if r.EventDate != "" {
		sb.WriteString("Date: " + r.EventDate + "\n")
	}
	if r.StartTime != "" && r.EndTime != "" {
		sb.WriteString("Time: " + utils.ClockHM(r.StartTime) + " - " + utils.ClockHM(r.EndTime) + "\n")
	}
	sb.WriteString("Title: " + r.EventTitle + "\n")
	fmt.Fprintf(&sb, "Pax: %d\n", r.Guests())
	sb.WriteString("Location: " + formatEventLocation(r) + "\n")

	if r.OrganizerType != "" {
		sb.WriteString("For: " + r.OrganizerType.DisplayName() + "\n")
	}
	if r.EventType != "" {
		sb.WriteString("Event Type: " + r.EventType.DisplayName() + "\n")
	}

	if r.PaymentOption != "" {
		sb.WriteString("\nPayment: " + r.PaymentOption.DisplayName() + "\n")
	}
	if r.CostCenter != "" {
		sb.WriteString("Kostenplaats: " + r.CostCenter + "\n")
	}
	if r.InvoiceName != "" {
		sb.WriteString("Invoice Name: " + r.InvoiceName + "\n")
	}
	if r.InvoiceAddress != "" {
		sb.WriteString("Invoice Address: " + r.InvoiceAddress + "\n")
	}

	if r.FoodRequired {
		sb.WriteString("\nFood Required: Yes\n")
		if r.DietaryPreference != "" {
			sb.WriteString("Dietary: " + r.DietaryPreference.DisplayName() + "\n")
		}
		if r.DietaryNotes != "" {
			sb.WriteString("Dietary Notes: " + r.DietaryNotes + "\n")
		}
	}

	if r.Comments != "" {
		sb.WriteString("\nComments: " + r.Comments + "\n")
	}

	sb.WriteString("\n─────────────────────────────\n")
	sb.WriteString("Confidential Details:\n")
	sb.WriteString("Email: " + r.Email + "\n")
	if r.PhoneNumber != "" {
		sb.WriteString("Phone: " + r.PhoneNumber + "\n")
	}

	sb.WriteString("\n─────────────────────────────\n")
	sb.WriteString("Status: " + string(r.Status) + "\n")
	if r.ConfirmationNumber != "" {
		sb.WriteString("Ref: " + r.ConfirmationNumber + "\n")
	}
	if r.ConfirmedBy != "" {
		sb.WriteString("Confirmed by: " + r.ConfirmedBy + "\n")
	}

	return sb.String()
}

// buildPublicDescription redacts email and phone and points readers at
// the admin portal instead.
func buildPublicDescription(r models.Reservation) string {
	var sb strings.Builder

	if r.Description != "" {
		sb.WriteString(r.Description + "\n\n")
	}

	sb.WriteString("Contact: " + r.ContactName + "\n")
	if r.OrganizationName != "" {
		sb.WriteString("Organization: " + r.OrganizationName + "\n")
	}

	sb.WriteString("\nEvent Details:\n")
	if r.EventDate != "" {
		sb.WriteString("Date: " + r.EventDate + "\n")
	}
	if r.StartTime != "" && r.EndTime != "" {
		sb.WriteString("Time: " + utils.ClockHM(r.StartTime) + " - " + utils.ClockHM(r.EndTime) + "\n")
	}
	fmt.Fprintf(&sb, "Pax: %d\n", r.Guests())
	sb.WriteString("Location: " + formatEventLocation(r) + "\n")

	if r.OrganizerType != "" {
		sb.WriteString("For: " + r.OrganizerType.DisplayName() + "\n")
	}
	if r.EventType != "" {
		sb.WriteString("Event Type: " + r.EventType.DisplayName() + "\n")
	}

	if r.PaymentOption != "" {
		sb.WriteString("\nPayment: " + r.PaymentOption.DisplayName() + "\n")
	}

	if r.FoodRequired {
		sb.WriteString("\nFood Required: Yes\n")
		if r.DietaryPreference != "" {
			sb.WriteString("Dietary: " + r.DietaryPreference.DisplayName() + "\n")
		}
	}

	if r.Comments != "" {
		sb.WriteString("\nComments: " + r.Comments + "\n")
	}

	sb.WriteString("\n---\n")
	sb.WriteString("Status: " + string(r.Status) + "\n")
	if r.ConfirmationNumber != "" {
		sb.WriteString("Ref: " + r.ConfirmationNumber + "\n")
	}

	sb.WriteString("\n(Contact details available in admin portal)")
	return sb.String()
}

// escapeICSText escapes per the iCalendar text-value grammar. Literal
// newlines in the source become the two-character sequence \n.
func escapeICSText(text string) string {
	text = strings.ReplaceAll(text, "\\", "\\\\")
	text = strings.ReplaceAll(text, ",", "\\,")
	text = strings.ReplaceAll(text, ";", "\\;")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.ReplaceAll(text, "\n", "\\n")
}

// Fixed Europe/Amsterdam definition: DST starts the last Sunday of
// March and ends the last Sunday of October.
const timezoneDefinition = "BEGIN:VTIMEZONE\r\n" +
	"TZID:Europe/Amsterdam\r\n" +
	"X-LIC-LOCATION:Europe/Amsterdam\r\n" +
	"BEGIN:DAYLIGHT\r\n" +
	"TZOFFSETFROM:+0100\r\n" +
	"TZOFFSETTO:+0200\r\n" +
	"TZNAME:CEST\r\n" +
	"DTSTART:19700329T020000\r\n" +
	"RRULE:FREQ=YEARLY;BYMONTH=3;BYDAY=-1SU\r\n" +
	"END:DAYLIGHT\r\n" +
	"BEGIN:STANDARD\r\n" +
	"TZOFFSETFROM:+0200\r\n" +
	"TZOFFSETTO:+0100\r\n" +
	"TZNAME:CET\r\n" +
	"DTSTART:19701025T030000\r\n" +
	"RRULE:FREQ=YEARLY;BYMONTH=10;BYDAY=-1SU\r\n" +
	"END:STANDARD\r\n" +
	"END:VTIMEZONE\r\n"
