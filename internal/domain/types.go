package domain

import (
	"fmt"
	"strings"
)

// ReservationStatus tracks where a reservation sits in its lifecycle.
// New reservations always start as PENDING; staff move them from there.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusRejected  ReservationStatus = "REJECTED"
	StatusCancelled ReservationStatus = "CANCELLED"
	StatusCompleted ReservationStatus = "COMPLETED"
)

// BarLocation is one of the two cafés served by this system.
type BarLocation string

const (
	LocationHubble BarLocation = "HUBBLE"
	LocationMeteor BarLocation = "METEOR"
)

// EventType answers "what kind of event is it?" on the forms.
type EventType string

const (
	EventBorrel     EventType = "BORREL"
	EventLunch      EventType = "LUNCH"
	EventActivity   EventType = "ACTIVITY"
	EventGraduation EventType = "GRADUATION"
	EventDinner     EventType = "DINNER"
	EventParty      EventType = "PARTY"
	EventMeeting    EventType = "MEETING"
	EventOther      EventType = "OTHER"
)

// OrganizerType answers "who is the event for?" on the forms.
type OrganizerType string

const (
	OrganizerAssociation OrganizerType = "ASSOCIATION"
	OrganizerCompany     OrganizerType = "COMPANY"
	OrganizerPrivate     OrganizerType = "PRIVATE"
	OrganizerUniversity  OrganizerType = "UNIVERSITY"
	OrganizerPhD         OrganizerType = "PHD"
	OrganizerStudent     OrganizerType = "STUDENT"
	OrganizerStaff       OrganizerType = "STAFF"
	OrganizerOther       OrganizerType = "OTHER"
)

// PaymentOption answers "how would you like to pay?" on the forms.
type PaymentOption string

const (
	PaymentIndividual PaymentOption = "INDIVIDUAL"
	PaymentOnePerson  PaymentOption = "ONE_PERSON"
	PaymentInvoice    PaymentOption = "INVOICE"
	PaymentCostCenter PaymentOption = "COST_CENTER"
	PaymentVouchers   PaymentOption = "VOUCHERS"
)

// SeatingArea is the seating preference inside a café.
type SeatingArea string

const (
	SeatingInside  SeatingArea = "INSIDE"
	SeatingOutside SeatingArea = "OUTSIDE"
	SeatingBoth    SeatingArea = "BOTH"
)

// DietaryPreference is the primary dietary requirement for catering.
type DietaryPreference string

const (
	DietaryNone        DietaryPreference = "NONE"
	DietaryVegetarian  DietaryPreference = "VEGETARIAN"
	DietaryVegan       DietaryPreference = "VEGAN"
	DietaryHalal       DietaryPreference = "HALAL"
	DietaryGlutenFree  DietaryPreference = "GLUTEN_FREE"
	DietaryLactoseFree DietaryPreference = "LACTOSE_FREE"
	DietaryNutAllergy  DietaryPreference = "NUT_ALLERGY"
	DietaryOther       DietaryPreference = "OTHER"
)

var statusLabels = map[ReservationStatus]string{
	StatusPending:   "Pending Review",
	StatusConfirmed: "Confirmed",
	StatusRejected:  "Rejected",
	StatusCancelled: "Cancelled",
	StatusCompleted: "Completed",
}

var locationLabels = map[BarLocation]string{
	LocationHubble: "Hubble Community Café",
	LocationMeteor: "Meteor Community Café",
}

var eventTypeLabels = map[EventType]string{
	EventBorrel:     "Borrel / Drinks",
	EventLunch:      "Lunch",
	EventActivity:   "Activity",
	EventGraduation: "Graduation / PhD Defense",
	EventDinner:     "Dinner",
	EventParty:      "Party",
	EventMeeting:    "Meeting",
	EventOther:      "Other",
}

var organizerTypeLabels = map[OrganizerType]string{
	OrganizerAssociation: "Association / Study Association",
	OrganizerCompany:     "Company / Business",
	OrganizerPrivate:     "Private / Individual",
	OrganizerUniversity:  "University / TU/e",
	OrganizerPhD:         "PhD Candidate",
	OrganizerStudent:     "Student",
	OrganizerStaff:       "Staff",
	OrganizerOther:       "Other",
}

var paymentOptionLabels = map[PaymentOption]string{
	PaymentIndividual: "People pay individually",
	PaymentOnePerson:  "One person pays at the end",
	PaymentInvoice:    "Invoice (>50 euros only)",
	PaymentCostCenter: "Kostenplaats",
	PaymentVouchers:   "Vouchers/Coins",
}

var seatingAreaLabels = map[SeatingArea]string{
	SeatingInside:  "Inside",
	SeatingOutside: "Outside (Terrace)",
	SeatingBoth:    "Both / No Preference",
}

var dietaryPreferenceLabels = map[DietaryPreference]string{
	DietaryNone:        "No special requirements",
	DietaryVegetarian:  "Vegetarian",
	DietaryVegan:       "Vegan",
	DietaryHalal:       "Halal",
	DietaryGlutenFree:  "Gluten-free",
	DietaryLactoseFree: "Lactose-free",
	DietaryNutAllergy:  "Nut allergy",
	DietaryOther:       "Other (specify in comments)",
}

// Declaration order of each enum; map iteration would scramble the
// options endpoints and the rendered dropdowns.
var (
	statusOrder = []ReservationStatus{
		StatusPending, StatusConfirmed, StatusRejected, StatusCancelled, StatusCompleted,
	}
	locationOrder = []BarLocation{LocationHubble, LocationMeteor}
	eventOrder    = []EventType{
		EventBorrel, EventLunch, EventActivity, EventGraduation,
		EventDinner, EventParty, EventMeeting, EventOther,
	}
	organizerOrder = []OrganizerType{
		OrganizerAssociation, OrganizerCompany, OrganizerPrivate, OrganizerUniversity,
		OrganizerPhD, OrganizerStudent, OrganizerStaff, OrganizerOther,
	}
	paymentOrder = []PaymentOption{
		PaymentIndividual, PaymentOnePerson, PaymentInvoice, PaymentCostCenter, PaymentVouchers,
	}
	seatingOrder = []SeatingArea{SeatingInside, SeatingOutside, SeatingBoth}
	dietaryOrder = []DietaryPreference{
		DietaryNone, DietaryVegetarian, DietaryVegan, DietaryHalal,
		DietaryGlutenFree, DietaryLactoseFree, DietaryNutAllergy, DietaryOther,
	}
)

func (s ReservationStatus) DisplayName() string { return statusLabels[s] }
func (l BarLocation) DisplayName() string       { return locationLabels[l] }
func (e EventType) DisplayName() string         { return eventTypeLabels[e] }
func (o OrganizerType) DisplayName() string     { return organizerTypeLabels[o] }
func (p PaymentOption) DisplayName() string     { return paymentOptionLabels[p] }
func (a SeatingArea) DisplayName() string       { return seatingAreaLabels[a] }
func (d DietaryPreference) DisplayName() string { return dietaryPreferenceLabels[d] }

func (s ReservationStatus) Valid() bool { _, ok := statusLabels[s]; return ok }
func (l BarLocation) Valid() bool       { _, ok := locationLabels[l]; return ok }

// ParseStatus maps a request token to a ReservationStatus, case-insensitively.
func ParseStatus(raw string) (ReservationStatus, error) {
	s := ReservationStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", ValidationError{Field: "status", Msg: fmt.Sprintf("unknown status %q", raw)}
	}
	return s, nil
}

// ParseLocation maps a request token to a BarLocation, case-insensitively.
func ParseLocation(raw string) (BarLocation, error) {
	l := BarLocation(strings.ToUpper(strings.TrimSpace(raw)))
	if !l.Valid() {
		return "", ValidationError{Field: "location", Msg: fmt.Sprintf("unknown location %q", raw)}
	}
	return l, nil
}

// ParseStatusList parses a comma-separated status filter ("CONFIRMED,PENDING").
// An empty input yields an empty list, meaning no filtering.
func ParseStatusList(raw string) ([]ReservationStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var out []ReservationStatus
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		s, err := ParseStatus(part)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Option is one dropdown entry for the reservation forms.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func StatusOptions() []Option {
	out := make([]Option, 0, len(statusOrder))
	for _, v := range statusOrder {
		out = append(out, Option{Value: string(v), Label: statusLabels[v]})
	}
	return out
}

func LocationOptions() []Option {
	out := make([]Option, 0, len(locationOrder))
	for _, v := range locationOrder {
		out = append(out, Option{Value: string(v), Label: locationLabels[v]})
	}
	return out
}

func EventTypeOptions() []Option {
	out := make([]Option, 0, len(eventOrder))
	for _, v := range eventOrder {
		out = append(out, Option{Value: string(v), Label: eventTypeLabels[v]})
	}
	return out
}

func OrganizerTypeOptions() []Option {
	out := make([]Option, 0, len(organizerOrder))
	for _, v := range organizerOrder {
		out = append(out, Option{Value: string(v), Label: organizerTypeLabels[v]})
	}
	return out
}

func PaymentOptionOptions() []Option {
	out := make([]Option, 0, len(paymentOrder))
	for _, v := range paymentOrder {
		out = append(out, Option{Value: string(v), Label: paymentOptionLabels[v]})
	}
	return out
}

func SeatingAreaOptions() []Option {
	out := make([]Option, 0, len(seatingOrder))
	for _, v := range seatingOrder {
		out = append(out, Option{Value: string(v), Label: seatingAreaLabels[v]})
	}
	return out
}

func DietaryPreferenceOptions() []Option {
	out := make([]Option, 0, len(dietaryOrder))
	for _, v := range dietaryOrder {
		out = append(out, Option{Value: string(v), Label: dietaryPreferenceLabels[v]})
	}
	return out
}
