package services

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"harrylist/internal/domain"
	"harrylist/internal/domain/models"
	"harrylist/internal/repositories"
	"harrylist/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ExportService renders the printable daily report: every reservation
// for one venue on one date, one card per page.
type ExportService struct {
	Repo      repositories.ReservationRepository
	RequestID string

	// Loader overrides the repository, for tests.
	Loader func() ([]models.Reservation, error)
}

type venueColors struct {
	headerR, headerG, headerB int
	accentR, accentG, accentB int
}

func colorsFor(location domain.BarLocation) venueColors {
	if location == domain.LocationMeteor {
		return venueColors{5, 56, 38, 155, 141, 111}
	}
	return venueColors{15, 77, 100, 189, 232, 236}
}

// GenerateDailyReport builds the PDF for the given venue and date and
// returns the document bytes with a download filename.
func (s ExportService) GenerateDailyReport(date time.Time, location domain.BarLocation, confirmedOnly bool) ([]byte, string, error) {
	reservations, err := s.load()
	if err != nil {
		return nil, "", err
	}

	day := date.Format(utils.LayoutDate)
	var selected []models.Reservation
	for _, r := range reservations {
		if r.EventDate != day {
			continue
		}
		if !strings.EqualFold(string(r.Location), string(location)) {
			continue
		}
		if confirmedOnly && r.Status != domain.StatusConfirmed {
			continue
		}
		selected = append(selected, r)
	}
	sort.SliceStable(selected, func(i, j int) bool {
		a, b := selected[i].StartTime, selected[j].StartTime
		if a == "" || b == "" {
			return b == "" && a != ""
		}
		return a < b
	})

	utils.LogEvent(s.RequestID, "export", "daily_report",
		fmt.Sprintf("location=%s date=%s count=%d", location, day, len(selected)))

	out, err := buildDailyReportPDF(selected, date, location)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("reservations-%s-%s.pdf", strings.ToLower(string(location)), day)
	return out, filename, nil
}

func (s ExportService) load() ([]models.Reservation, error) {
	if s.Loader != nil {
		return s.Loader()
	}
	return s.Repo.List()
}

func buildDailyReportPDF(reservations []models.Reservation, date time.Time, location domain.BarLocation) ([]byte, error) {
	colors := colorsFor(location)
	venueName := location.DisplayName()
	reportDate := date.Format(utils.LayoutReport)

	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; venue names carry accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Daily Reservations - "+venueName, false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title block on the first page.
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(colors.headerR, colors.headerG, colors.headerB)
	pdf.CellFormat(0, 12, tr(venueName), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 8, "Reservations for "+reportDate, "", 1, "C", false, 0, "")

	totalGuests := 0
	for _, r := range reservations {
		totalGuests += r.Guests()
	}
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%d reservation(s), %d expected guest(s)", len(reservations), totalGuests),
		"", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(reservations) == 0 {
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 10, "No reservations for this date.", "", 1, "C", false, 0, "")
	}

	for i, r := range reservations {
		if i > 0 {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "B", 12)
			pdf.SetTextColor(colors.headerR, colors.headerG, colors.headerB)
			pdf.CellFormat(0, 8, tr(venueName+" - "+reportDate), "", 1, "C", false, 0, "")
			pdf.Ln(2)
		}
		writeReservationCard(pdf, tr, r, i+1, len(reservations), colors)
	}

	pdf.SetY(-20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, "Generated on "+time.Now().Format(utils.LayoutReport)+" | The Harry List",
		"", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeReservationCard(pdf *gofpdf.Fpdf, tr func(string) string, r models.Reservation, index, total int, colors venueColors) {
	blank := func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return "-"
		}
		return v
	}

	// Colored header bar.
	pdf.SetFillColor(colors.headerR, colors.headerG, colors.headerB)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	header := fmt.Sprintf("Reservation %d of %d | %s", index, total, r.EventTitle)
	if r.StartTime != "" && r.EndTime != "" {
		header += fmt.Sprintf("  •  %s - %s", utils.ClockHM(r.StartTime), utils.ClockHM(r.EndTime))
	}
	header += fmt.Sprintf("  •  %d guests", r.Guests())
	pdf.CellFormat(0, 9, tr(header), "", 1, "L", true, 0, "")
	pdf.Ln(2)

	left := [][2]string{
		{"Contact", blank(r.ContactName)},
		{"Organization", blank(r.OrganizationName)},
		{"Email", blank(r.Email)},
		{"Phone", blank(r.PhoneNumber)},
		{"Organizer", blank(r.OrganizerType.DisplayName())},
		{"Event Type", blank(r.EventType.DisplayName())},
	}
	right := [][2]string{
		{"Status", blank(string(r.Status))},
		{"Seating", blank(r.SeatingArea.DisplayName())},
		{"Area Notes", blank(r.SpecificArea)},
		{"Payment", blank(r.PaymentOption.DisplayName())},
		{"Cost Center", blank(r.CostCenter)},
		{"Invoice Name", blank(r.InvoiceName)},
	}

	pdf.SetTextColor(0, 0, 0)
	startY := pdf.GetY()
	leftX := pdf.GetX()
	for _, row := range left {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(28, 6, row[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(62, 6, tr(row[1]), "", 1, "L", false, 0, "")
	}
	endY := pdf.GetY()

	pdf.SetXY(leftX+95, startY)
	for _, row := range right {
		pdf.SetX(leftX + 95)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(28, 6, row[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(62, 6, tr(row[1]), "", 1, "L", false, 0, "")
	}
	if y := pdf.GetY(); y < endY {
		pdf.SetY(endY)
	}
	pdf.Ln(2)

	writeOptionalLine := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(28, 6, label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 6, tr(value), "", "L", false)
	}

	if r.FoodRequired {
		food := "Yes"
		if r.DietaryPreference != "" {
			food += " (" + r.DietaryPreference.DisplayName() + ")"
		}
		if r.DietaryNotes != "" {
			food += " - " + r.DietaryNotes
		}
		writeOptionalLine("Food", food)
	}
	writeOptionalLine("Description", r.Description)
	writeOptionalLine("Comments", r.Comments)
	writeOptionalLine("Internal Notes", r.InternalNotes)

	pdf.Ln(2)
	pdf.SetFillColor(colors.accentR, colors.accentG, colors.accentB)
	pdf.SetFont("Helvetica", "I", 9)
	footer := "Ref: " + blank(r.ConfirmationNumber)
	if r.ConfirmedBy != "" {
		footer += " | Confirmed by: " + r.ConfirmedBy
	}
	pdf.CellFormat(0, 7, tr(footer), "", 1, "L", true, 0, "")
}
