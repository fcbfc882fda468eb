package services

import (
	"context"
	"fmt"
	"time"

	"harrylist/internal/domain"
	"harrylist/internal/domain/models"
	"harrylist/internal/mail"
	"harrylist/internal/utils"
)

// NotificationService sends lifecycle emails. Every send is best-effort:
// a delivery failure is logged and swallowed so it can never fail the
// mutation that triggered it. Only SendCustom surfaces its error, because
// the custom-email endpoint reports a tri-state outcome.
type NotificationService struct {
	Sender     mail.Sender
	BarName    string
	StaffEmail string
	RequestID  string
}

const sendTimeout = 15 * time.Second

// Enabled reports whether a mail provider is configured.
func (s NotificationService) Enabled() bool {
	return s.Sender != nil
}

// ReservationSubmitted thanks the requester and copies staff with the
// full event facts.
func (s NotificationService) ReservationSubmitted(r models.Reservation) {
	if !s.Enabled() {
		return
	}
	subject := "Reservation Request Received - " + r.EventTitle
	s.deliver(r.Email, subject, buildSubmittedEmailBody(r, s.BarName), "submitted")

	if s.StaffEmail != "" {
		staffSubject := "[New Reservation] " + r.EventTitle + " - " + r.ContactName
		s.deliver(s.StaffEmail, staffSubject, buildStaffNotificationBody(r), "staff_copy")
	}
}

// StatusChanged tells the requester about a lifecycle transition.
func (s NotificationService) StatusChanged(r models.Reservation, oldStatus domain.ReservationStatus) {
	if !s.Enabled() {
		return
	}
	utils.LogEvent(s.RequestID, "mail", "status_change",
		fmt.Sprintf("reservation=%d %s -> %s", r.ID, oldStatus, r.Status))
	s.deliver(r.Email, statusChangeSubject(r), buildStatusChangeEmailBody(r, s.BarName), "status_change")
}

// ReservationUpdated asks the requester to review edited details.
func (s NotificationService) ReservationUpdated(r models.Reservation) {
	if !s.Enabled() {
		return
	}
	s.deliver(r.Email, "Reservation Updated - "+r.EventTitle, buildUpdatedEmailBody(r, s.BarName), "updated")
}

// ReservationCancelled is sent before a hard delete.
func (s NotificationService) ReservationCancelled(r models.Reservation) {
	if !s.Enabled() {
		return
	}
	s.deliver(r.Email, "Reservation Cancelled - "+r.EventTitle, buildCancelledEmailBody(r, s.StaffEmail, s.BarName), "cancelled")
}

// ErrMailDisabled distinguishes "no provider configured" from delivery
// failures for the custom-email endpoint.
var ErrMailDisabled = fmt.Errorf("mail not configured")

// SendCustom delivers an operator-authored message and returns the
// delivery error, unlike the lifecycle sends.
func (s NotificationService) SendCustom(r models.Reservation, subject, message string) error {
	if !s.Enabled() {
		return ErrMailDisabled
	}
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	body := buildCustomEmailBody(r, message, s.BarName, s.StaffEmail)
	if err := s.Sender.Send(ctx, r.Email, subject, body); err != nil {
		utils.LogEvent(s.RequestID, "mail", "custom_failed", err.Error())
		return err
	}
	utils.LogEvent(s.RequestID, "mail", "custom_sent", fmt.Sprintf("reservation=%d", r.ID))
	return nil
}

func (s NotificationService) deliver(to, subject, body, action string) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := s.Sender.Send(ctx, to, subject, body); err != nil {
		// Never propagate: the primary mutation already committed.
		utils.LogEvent(s.RequestID, "mail", action+"_failed", err.Error())
		return
	}
	utils.LogEvent(s.RequestID, "mail", action, "delivered")
}
