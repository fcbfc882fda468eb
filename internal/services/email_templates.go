package services

import (
	"fmt"
	"strings"

	"harrylist/internal/domain"
	"harrylist/internal/domain/models"
	"harrylist/internal/utils"
)

// HTML bodies for the five notification kinds. All share the same
// branded shell: colored header bar, detail block, footer. Colors are
// keyed off the reservation status for status-change mail.

const (
	colorGreen  = "#4CAF50"
	colorRed    = "#f44336"
	colorBlue   = "#2196F3"
	colorOrange = "#FF9800"
	colorPurple = "#6b46c1"
)

func letterDate(s string) string {
	t, err := utils.ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(utils.LayoutLetter)
}

func buildSubmittedEmailBody(r models.Reservation, barName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #4CAF50; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .details { background-color: white; padding: 15px; margin: 15px 0; border-left: 4px solid #4CAF50; }
        .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
        .confirmation-number { font-size: 24px; font-weight: bold; color: #4CAF50; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Reservation Request Received</h1>
        </div>
        <div class="content">
            <p>Dear %s,</p>
            <p>Thank you for reaching out to us. Please consider that reservations made less then 72 hours in advance cannot always be confirmed or denied in time. If you don't receive a confirmation, you are still welcome to visit us if capacity allows!</p>
            <p>This is not a confirmation, your reservation still awaits approval! Please note that we generally do not reply within 72 hours.</p>

            <div class="details">
                <p><strong>Confirmation Number:</strong> <span class="confirmation-number">%s</span></p>
                <p><strong>Event:</strong> %s</p>
                <p><strong>Date:</strong> %s</p>
                <p><strong>Time:</strong> %s - %s</p>
                <p><strong>Location:</strong> %s</p>
                <p><strong>Expected Guests:</strong> %d</p>
                <p><strong>Status:</strong> <em>Pending Review</em></p>
            </div>

            <p>If you have any questions, please don't hesitate to contact us.</p>

            <p>Best regards,<br>
            %s</p>
        </div>
    </div>
</body>
</html>`,
		r.ContactName,
		r.ConfirmationNumber,
		r.EventTitle,
		letterDate(r.EventDate),
		utils.ClockHM(r.StartTime),
		utils.ClockHM(r.EndTime),
		r.Location.DisplayName(),
		r.Guests(),
		barName,
	)
}

func statusChangeMessage(status domain.ReservationStatus) string {
	switch status {
	case domain.StatusConfirmed:
		return "We're pleased to confirm your reservation!"
	case domain.StatusRejected:
		return "Unfortunately, we're unable to accommodate your reservation request at this time."
	case domain.StatusCancelled:
		return "Your reservation has been cancelled as requested."
	case domain.StatusCompleted:
		return "Thank you for choosing us! We hope you had a great event."
	default:
		return "Your reservation status has been updated."
	}
}

func statusChangeColor(status domain.ReservationStatus) string {
	switch status {
	case domain.StatusConfirmed:
		return colorGreen
	case domain.StatusRejected, domain.StatusCancelled:
		return colorRed
	case domain.StatusCompleted:
		return colorBlue
	default:
		return colorOrange
	}
}

func statusChangeSubject(r models.Reservation) string {
	switch r.Status {
	case domain.StatusConfirmed:
		return "Reservation Confirmed - " + r.EventTitle
	case domain.StatusRejected:
		return "Reservation Request - " + r.EventTitle
	case domain.StatusCancelled:
		return "Reservation Cancelled - " + r.EventTitle
	case domain.StatusCompleted:
		return "Thank You - " + r.EventTitle
	default:
		return "Reservation Update - " + r.EventTitle
	}
}

func buildStatusChangeEmailBody(r models.Reservation, barName string) string {
	color := statusChangeColor(r.Status)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: %s; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .details { background-color: white; padding: 15px; margin: 15px 0; border-left: 4px solid %s; }
        .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Reservation %s</h1>
        </div>
        <div class="content">
            <p>Dear %s,</p>
            <p>%s</p>

            <div class="details">
                <p><strong>Confirmation Number:</strong> %s</p>
                <p><strong>Event:</strong> %s</p>
                <p><strong>Date:</strong> %s</p>
                <p><strong>Time:</strong> %s - %s</p>
                <p><strong>Location:</strong> %s</p>
                <p><strong>Guests:</strong> %d</p>
                <p><strong>Status:</strong> %s</p>
            </div>

            <p>Best regards,<br>
            %s</p>
        </div>
    </div>
</body>
</html>`,
		color,
		color,
		r.Status.DisplayName(),
		r.ContactName,
		statusChangeMessage(r.Status),
		r.ConfirmationNumber,
		r.EventTitle,
		letterDate(r.EventDate),
		utils.ClockHM(r.StartTime),
		utils.ClockHM(r.EndTime),
		r.Location.DisplayName(),
		r.Guests(),
		r.Status.DisplayName(),
		barName,
	)
}

func buildUpdatedEmailBody(r models.Reservation, barName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #FF9800; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .details { background-color: white; padding: 15px; margin: 15px 0; border-left: 4px solid #FF9800; }
        .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Reservation Updated</h1>
        </div>
        <div class="content">
            <p>Dear %s,</p>
            <p>Your reservation has been updated. Please review the details below:</p>

            <div class="details">
                <p><strong>Confirmation Number:</strong> %s</p>
                <p><strong>Event:</strong> %s</p>
                <p><strong>Date:</strong> %s</p>
                <p><strong>Time:</strong> %s - %s</p>
                <p><strong>Location:</strong> %s</p>
                <p><strong>Guests:</strong> %d</p>
                <p><strong>Status:</strong> %s</p>
            </div>

            <p>If you did not request this change or have any questions, please contact us immediately.</p>

            <p>Best regards,<br>
            %s</p>
        </div>
    </div>
</body>
</html>`,
		r.ContactName,
		r.ConfirmationNumber,
		r.EventTitle,
		letterDate(r.EventDate),
		utils.ClockHM(r.StartTime),
		utils.ClockHM(r.EndTime),
		r.Location.DisplayName(),
		r.Guests(),
		r.Status.DisplayName(),
		barName,
	)
}

func buildCancelledEmailBody(r models.Reservation, staffEmail, barName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #f44336; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Reservation Cancelled</h1>
        </div>
        <div class="content">
            <p>Dear %s,</p>
            <p>Your reservation <strong>%s</strong> (Confirmation #%s) has been cancelled.</p>

            <p>We hope to see you again in the future! If you'd like to make a new reservation, please visit our website.</p>

            <p>If you have any questions, please contact us at %s.</p>

            <p>Best regards,<br>
            %s</p>
        </div>
        <div class="footer">
            <p>This is an automated message. Please do not reply to this email.</p>
        </div>
    </div>
</body>
</html>`,
		r.ContactName,
		r.EventTitle,
		r.ConfirmationNumber,
		staffEmail,
		barName,
	)
}

func buildStaffNotificationBody(r models.Reservation) string {
	orDefault := func(v string) string {
		if v == "" {
			return "Not provided"
		}
		return v
	}

	foodLine := ""
	if r.FoodRequired {
		dietary := "None"
		if r.DietaryPreference != "" {
			dietary = r.DietaryPreference.DisplayName()
		}
		foodLine = "<p><strong>Food Required:</strong> Yes (Dietary: " + dietary + ")</p>"
	}
	descLine := ""
	if r.Description != "" {
		descLine = "<p><strong>Description:</strong> " + r.Description + "</p>"
	}
	commentsLine := ""
	if r.Comments != "" {
		commentsLine = "<p><strong>Comments:</strong> " + r.Comments + "</p>"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #2196F3; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .details { background-color: white; padding: 15px; margin: 15px 0; border-left: 4px solid #2196F3; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Reservation Request</h1>
        </div>
        <div class="content">
            <p>A new reservation has been submitted and requires review:</p>

            <div class="details">
                <p><strong>Reservation Number:</strong> %s</p>
                <p><strong>Contact:</strong> %s</p>
                <p><strong>Email:</strong> %s</p>
                <p><strong>Phone:</strong> %s</p>
                <p><strong>Organization:</strong> %s</p>
                <hr>
                <p><strong>Event:</strong> %s</p>
                <p><strong>Type:</strong> %s (%s)</p>
                <p><strong>Date:</strong> %s</p>
                <p><strong>Time:</strong> %s - %s</p>
                <p><strong>Location:</strong> %s</p>
                <p><strong>Guests:</strong> %d</p>
                <p><strong>Payment:</strong> %s</p>
                %s
                %s
                %s
            </div>

            <p>Please review and respond to the customer as soon as possible.</p>
        </div>
    </div>
</body>
</html>`,
		r.ConfirmationNumber,
		r.ContactName,
		r.Email,
		orDefault(r.PhoneNumber),
		orDefault(r.OrganizationName),
		r.EventTitle,
		r.EventType.DisplayName(),
		r.OrganizerType.DisplayName(),
		letterDate(r.EventDate),
		utils.ClockHM(r.StartTime),
		utils.ClockHM(r.EndTime),
		r.Location.DisplayName(),
		r.Guests(),
		r.PaymentOption.DisplayName(),
		foodLine,
		descLine,
		commentsLine,
	)
}

func buildCustomEmailBody(r models.Reservation, messageContent, barName, staffEmail string) string {
	htmlMessage := strings.ReplaceAll(messageContent, "\n", "<br>")

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #6b46c1; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .message { background-color: white; padding: 15px; margin: 15px 0; border-left: 4px solid #6b46c1; }
        .details { background-color: #f0f0f0; padding: 10px; margin-top: 20px; border-radius: 5px; font-size: 12px; }
        .footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Message from %s</h1>
        </div>
        <div class="content">
            <p>Dear %s,</p>

            <div class="message">
                %s
            </div>

            <div class="details">
                <p><strong>Regarding your reservation:</strong></p>
                <p>Event: %s<br>
                Date: %s<br>
                Location: %s<br>
                Confirmation #: %s</p>
            </div>

            <p>If you have any questions, please reply to this email or contact us at %s.</p>

            <p>Best regards,<br>
            %s</p>
        </div>
    </div>
</body>
</html>`,
		barName,
		r.ContactName,
		htmlMessage,
		r.EventTitle,
		letterDate(r.EventDate),
		r.Location.DisplayName(),
		r.ConfirmationNumber,
		staffEmail,
		barName,
	)
}
