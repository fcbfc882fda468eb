package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"harrylist/internal/domain"
	"harrylist/internal/http/middleware"
	"harrylist/internal/services"

	"github.com/gin-gonic/gin"
)

// PATCH /api/admin/reservations/:id/status?status=CONFIRMED&sendEmail=true
//
// Any status can move to any other status; staff sometimes un-cancel or
// re-open requests after a phone call. The acting username is taken
// from the session unless confirmedBy overrides it.
func UpdateReservationStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	status, err := domain.ParseStatus(c.Query("status"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_status", err.Error(), nil)
		return
	}

	confirmedBy := strings.TrimSpace(c.Query("confirmedBy"))
	if confirmedBy == "" {
		confirmedBy = middleware.GetStaffUser(c)
	}
	sendEmail := boolQuery(c, "sendEmail", true)

	updated, err := reservationService(c).ChangeStatus(id, status, confirmedBy, sendEmail)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PATCH /api/admin/reservations/:id/notes
//
// Body is the raw note text, not JSON. An empty body clears the notes.
func UpdateReservationNotes(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "could not read body", err)
		return
	}

	updated, err := reservationService(c).UpdateNotes(id, strings.TrimSpace(string(body)))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

type customEmailRequest struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// POST /api/admin/reservations/:id/email
//
// Sends a free-form message to the requester. Unlike the lifecycle
// notifications this reports delivery back to the caller, so the staff
// UI can tell "sent" from "mail not configured" from a hard failure.
func SendReservationEmail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req customEmailRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	err := reservationService(c).SendCustomEmail(id, req.Subject, req.Message)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "sent", "message": "email sent to requester"})
	case errors.Is(err, services.ErrMailDisabled):
		c.JSON(http.StatusOK, gin.H{"status": "disabled", "message": "email notifications are not configured"})
	case domain.IsNotFound(err) || domain.IsValidation(err):
		RespondDomainError(c, err)
	default:
		c.JSON(http.StatusBadGateway, gin.H{"status": "error", "message": err.Error()})
	}
}
