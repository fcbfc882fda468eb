package models

import (
	"time"

	"harrylist/internal/domain"
)

// Reservation is the single entity this system manages: one request to
// reserve part of a café for an event. JSON tags follow the original
// form contract used by both frontends.
type Reservation struct {
	ID                 int64                     `json:"id"`
	ConfirmationNumber string                    `json:"confirmationNumber"`

	// Contact
	ContactName      string `json:"contactName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	PhoneNumber      string `json:"phoneNumber"`
	OrganizationName string `json:"organizationName"`

	// Event
	EventTitle     string               `json:"eventTitle" binding:"required"`
	Description    string               `json:"description"`
	EventType      domain.EventType     `json:"eventType" binding:"required"`
	OrganizerType  domain.OrganizerType `json:"organizerType" binding:"required"`
	ExpectedGuests *int                 `json:"expectedGuests"`

	// Scheduling; dates as "2006-01-02", times as "15:04". An end time
	// numerically before the start represents an overnight event.
	EventDate        string `json:"eventDate" binding:"required"`
	StartTime        string `json:"startTime" binding:"required"`
	EndTime          string `json:"endTime" binding:"required"`
	SetupTimeMinutes *int   `json:"setupTimeMinutes"`

	// Location
	Location     domain.BarLocation `json:"location" binding:"required"`
	SeatingArea  domain.SeatingArea `json:"seatingArea"`
	SpecificArea string             `json:"specificArea"`

	// Payment
	PaymentOption  domain.PaymentOption `json:"paymentOption" binding:"required"`
	CostCenter     string               `json:"costCenter"`
	InvoiceName    string               `json:"invoiceName"`
	InvoiceAddress string               `json:"invoiceAddress"`
	VATNumber      string               `json:"vatNumber"`

	// Food & drinks
	FoodRequired      bool                     `json:"foodRequired"`
	DietaryPreference domain.DietaryPreference `json:"dietaryPreference"`
	DietaryNotes      string                   `json:"dietaryNotes"`
	DrinksIncluded    bool                     `json:"drinksIncluded"`
	BudgetPerPerson   *float64                 `json:"budgetPerPerson"`

	// Misc
	Comments       string `json:"comments"`
	TermsAccepted  bool   `json:"termsAccepted"`
	ReferralSource string `json:"referralSource"`

	// Lifecycle, store-managed
	Status        domain.ReservationStatus `json:"status"`
	InternalNotes string                   `json:"internalNotes"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
	ConfirmedBy   string                   `json:"confirmedBy"`
}

// Guests returns the expected guest count, defaulting to 0 when the
// submitter left it blank. Renderers print this value directly.
func (r Reservation) Guests() int {
	if r.ExpectedGuests == nil {
		return 0
	}
	return *r.ExpectedGuests
}

// SubmissionResponse is the reduced payload returned to public submitters.
// It never exposes internal fields beyond the confirmation number.
type SubmissionResponse struct {
	ConfirmationNumber string `json:"confirmationNumber"`
	EventTitle         string `json:"eventTitle"`
	ContactName        string `json:"contactName"`
	Email              string `json:"email"`
	Message            string `json:"message"`
}
