package handlers

import (
	"net/http"

	"harrylist/internal/domain"

	"github.com/gin-gonic/gin"
)

// The options endpoints feed the submission form's dropdowns so the
// frontend never hardcodes enum values.

// GET /api/options/event-types
func GetEventTypeOptions(c *gin.Context) {
	c.JSON(http.StatusOK, domain.EventTypeOptions())
}

// GET /api/options/organizer-types
func GetOrganizerTypeOptions(c *gin.Context) {
	c.JSON(http.StatusOK, domain.OrganizerTypeOptions())
}

// GET /api/options/payment-options
func GetPaymentOptions(c *gin.Context) {
	c.JSON(http.StatusOK, domain.PaymentOptionOptions())
}

// GET /api/options/locations
func GetLocationOptions(c *gin.Context) {
	c.JSON(http.StatusOK, domain.LocationOptions())
}

// GET /api/options/dietary-preferences
func GetDietaryPreferenceOptions(c *gin.Context) {
	c.JSON(http.StatusOK, domain.DietaryPreferenceOptions())
}

// GET /api/options/all
func GetAllOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"eventTypes":         domain.EventTypeOptions(),
		"organizerTypes":     domain.OrganizerTypeOptions(),
		"paymentOptions":     domain.PaymentOptionOptions(),
		"locations":          domain.LocationOptions(),
		"dietaryPreferences": domain.DietaryPreferenceOptions(),
	})
}
