package handlers

import (
	"fmt"
	"net/http"

	"harrylist/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/public/reservations
//
// The open intake endpoint behind the submission form. It accepts the
// full form payload, stores it as PENDING with a fresh confirmation
// code, and returns a reduced acknowledgement.
func SubmitReservation(c *gin.Context) {
	var res models.Reservation
	if !BindJSONOrError(c, &res) {
		return
	}

	svc := reservationService(c)
	if err := svc.Create(&res, true); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.SubmissionResponse{
		ConfirmationNumber: res.ConfirmationNumber,
		EventTitle:         res.EventTitle,
		ContactName:        res.ContactName,
		Email:              res.Email,
		Message: fmt.Sprintf("Your reservation request has been submitted successfully. "+
			"We will review your request and contact you at %s soon.", res.Email),
	})
}
