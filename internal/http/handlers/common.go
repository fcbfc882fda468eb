package handlers

import (
	"net/http"
	"strconv"

	intconfig "harrylist/internal/config"
	"harrylist/internal/http/middleware"
	"harrylist/internal/mail"
	"harrylist/internal/repositories"
	"harrylist/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	cfg    intconfig.Env
	sender mail.Sender
)

// Configure wires runtime configuration and the outgoing mail sender
// into the handler package. Call once at startup, before serving.
func Configure(env intconfig.Env, mailSender mail.Sender) {
	cfg = env
	sender = mailSender
}

func reservationService(c *gin.Context) services.ReservationService {
	rid := middleware.GetRequestID(c)
	return services.ReservationService{
		Repo: repositories.ReservationRepository{},
		Notifications: services.NotificationService{
			Sender:     sender,
			BarName:    cfg.BarName,
			StaffEmail: cfg.StaffEmail,
			RequestID:  rid,
		},
		RequestID: rid,
	}
}

func calendarService() services.CalendarService {
	return services.CalendarService{Repo: repositories.ReservationRepository{}}
}

func exportService(c *gin.Context) services.ExportService {
	return services.ExportService{
		Repo:      repositories.ReservationRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "invalid reservation id", nil)
		return 0, false
	}
	return id, true
}

// boolQuery reads a boolean query parameter, defaulting when absent or
// unparsable.
func boolQuery(c *gin.Context, name string, fallback bool) bool {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
