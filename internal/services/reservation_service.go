package services

import (
	"fmt"

	"harrylist/internal/domain"
	"harrylist/internal/domain/models"
	"harrylist/internal/repositories"
	"harrylist/internal/utils"
)

// ReservationService orchestrates the reservation lifecycle: CRUD plus
// status and notes mutations, each followed by a best-effort email when
// the caller asked for one.
type ReservationService struct {
	Repo          repositories.ReservationRepository
	Notifications NotificationService
	RequestID     string
}

// List returns all reservations in store order.
func (s ReservationService) List() ([]models.Reservation, error) {
	return s.Repo.List()
}

// Get fetches one reservation by id.
func (s ReservationService) Get(id int64) (models.Reservation, error) {
	return s.Repo.GetByID(id)
}

// Create stores a new reservation. Whatever status or internal fields
// the payload carried are discarded: the insert path forces PENDING and
// stamps its own timestamps and confirmation number.
func (s ReservationService) Create(res *models.Reservation, sendEmail bool) error {
	if err := validateEnums(res); err != nil {
		return err
	}
	if err := s.Repo.Insert(res); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "reservation", "create",
		fmt.Sprintf("id=%d location=%s", res.ID, res.Location))

	if sendEmail {
		s.notifications().ReservationSubmitted(*res)
	}
	return nil
}

// Update replaces every caller-editable field while preserving the
// stored status and creation timestamp, no matter what the payload says.
func (s ReservationService) Update(res *models.Reservation, sendEmail bool) error {
	if err := validateEnums(res); err != nil {
		return err
	}
	existing, err := s.Repo.GetByID(res.ID)
	if err != nil {
		return err
	}

	res.Status = existing.Status
	res.CreatedAt = existing.CreatedAt
	res.ConfirmationNumber = existing.ConfirmationNumber
	res.ConfirmedBy = existing.ConfirmedBy
	if res.InternalNotes == "" {
		res.InternalNotes = existing.InternalNotes
	}

	if err := s.Repo.Update(res); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "reservation", "update", fmt.Sprintf("id=%d", res.ID))

	if sendEmail {
		s.notifications().ReservationUpdated(*res)
	}
	return nil
}

// Delete removes a reservation permanently, mailing the requester first
// when asked. The mail is best-effort; the delete proceeds regardless.
func (s ReservationService) Delete(id int64, sendEmail bool) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}

	if sendEmail {
		s.notifications().ReservationCancelled(existing)
	}

	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "reservation", "delete", fmt.Sprintf("id=%d", id))
	return nil
}

// ChangeStatus applies a lifecycle transition. Transitions are
// deliberately permissive: staff may move a reservation from any status
// to any other. confirmedBy is recorded only on CONFIRMED.
func (s ReservationService) ChangeStatus(id int64, status domain.ReservationStatus, confirmedBy string, sendEmail bool) (models.Reservation, error) {
	if !status.Valid() {
		return models.Reservation{}, domain.ValidationError{Field: "status", Msg: fmt.Sprintf("unknown status %q", status)}
	}

	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Reservation{}, err
	}
	oldStatus := existing.Status

	if err := s.Repo.UpdateStatus(id, status, confirmedBy); err != nil {
		return models.Reservation{}, err
	}
	utils.LogEvent(s.RequestID, "reservation", "status",
		fmt.Sprintf("id=%d %s -> %s", id, oldStatus, status))

	updated, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Reservation{}, err
	}

	if sendEmail {
		s.notifications().StatusChanged(updated, oldStatus)
	}
	return updated, nil
}

// UpdateNotes replaces the staff-only internal notes. No notification:
// notes never leave the admin portal.
func (s ReservationService) UpdateNotes(id int64, notes string) (models.Reservation, error) {
	if err := s.Repo.UpdateNotes(id, notes); err != nil {
		return models.Reservation{}, err
	}
	utils.LogEvent(s.RequestID, "reservation", "notes", fmt.Sprintf("id=%d", id))
	return s.Repo.GetByID(id)
}

// SendCustomEmail delivers an operator-authored message to the
// reservation's contact. The error is surfaced so the handler can
// report sent / disabled / error.
func (s ReservationService) SendCustomEmail(id int64, subject, message string) error {
	res, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	return s.notifications().SendCustom(res, subject, message)
}

func (s ReservationService) notifications() NotificationService {
	n := s.Notifications
	if n.RequestID == "" {
		n.RequestID = s.RequestID
	}
	return n
}

// validateEnums rejects enum tokens binding could not refuse. Optional
// enum fields are allowed to stay empty.
func validateEnums(res *models.Reservation) error {
	if !res.Location.Valid() {
		return domain.ValidationError{Field: "location", Msg: fmt.Sprintf("unknown location %q", res.Location)}
	}
	if res.EventType.DisplayName() == "" {
		return domain.ValidationError{Field: "eventType", Msg: fmt.Sprintf("unknown event type %q", res.EventType)}
	}
	if res.OrganizerType.DisplayName() == "" {
		return domain.ValidationError{Field: "organizerType", Msg: fmt.Sprintf("unknown organizer type %q", res.OrganizerType)}
	}
	if res.PaymentOption.DisplayName() == "" {
		return domain.ValidationError{Field: "paymentOption", Msg: fmt.Sprintf("unknown payment option %q", res.PaymentOption)}
	}
	if res.SeatingArea != "" && res.SeatingArea.DisplayName() == "" {
		return domain.ValidationError{Field: "seatingArea", Msg: fmt.Sprintf("unknown seating area %q", res.SeatingArea)}
	}
	if res.DietaryPreference != "" && res.DietaryPreference.DisplayName() == "" {
		return domain.ValidationError{Field: "dietaryPreference", Msg: fmt.Sprintf("unknown dietary preference %q", res.DietaryPreference)}
	}
	if res.ExpectedGuests != nil && *res.ExpectedGuests <= 0 {
		return domain.ValidationError{Field: "expectedGuests", Msg: "must be positive"}
	}
	if _, err := utils.ParseDate(res.EventDate); err != nil {
		return domain.ValidationError{Field: "eventDate", Msg: "must be YYYY-MM-DD", Err: err}
	}
	if _, err := utils.ParseClock(res.StartTime); err != nil {
		return domain.ValidationError{Field: "startTime", Msg: "must be HH:MM", Err: err}
	}
	if _, err := utils.ParseClock(res.EndTime); err != nil {
		return domain.ValidationError{Field: "endTime", Msg: "must be HH:MM", Err: err}
	}
	return nil
}
