package handlers

import (
	"net/http"

	"harrylist/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/reservations
func GetReservations(c *gin.Context) {
	svc := reservationService(c)
	reservations, err := svc.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if reservations == nil {
		reservations = []models.Reservation{}
	}
	c.JSON(http.StatusOK, reservations)
}

// GET /api/reservations/:id
func GetReservationByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := reservationService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/reservations
//
// Staff-side create. Same validation as the public form; the sendEmail
// query flag (default true) suppresses the notification when staff are
// entering historical bookings.
func CreateReservation(c *gin.Context) {
	var res models.Reservation
	if !BindJSONOrError(c, &res) {
		return
	}
	sendEmail := boolQuery(c, "sendEmail", true)

	if err := reservationService(c).Create(&res, sendEmail); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// PUT /api/reservations/:id
func UpdateReservation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var res models.Reservation
	if !BindJSONOrError(c, &res) {
		return
	}
	res.ID = id
	sendEmail := boolQuery(c, "sendEmail", true)

	if err := reservationService(c).Update(&res, sendEmail); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /api/reservations/:id
func DeleteReservation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sendEmail := boolQuery(c, "sendEmail", true)

	if err := reservationService(c).Delete(id, sendEmail); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation deleted", "id": id})
}
