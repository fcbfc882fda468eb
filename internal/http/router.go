package api

import (
	"log"
	stdhttp "net/http"
	"os"
	"strings"
	"time"

	intconfig "harrylist/internal/config"
	h "harrylist/internal/http/handlers"
	"harrylist/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		api.POST("/auth/login", h.Login)

		// Open intake form
		api.POST("/public/reservations", h.SubmitReservation)

		// Form dropdown values
		options := api.Group("/options")
		options.GET("/event-types", h.GetEventTypeOptions)
		options.GET("/organizer-types", h.GetOrganizerTypeOptions)
		options.GET("/payment-options", h.GetPaymentOptions)
		options.GET("/locations", h.GetLocationOptions)
		options.GET("/dietary-preferences", h.GetDietaryPreferenceOptions)
		options.GET("/all", h.GetAllOptions)

		// Calendar feeds, token-gated rather than JWT-gated so calendar
		// apps can subscribe.
		calendar := api.Group("/calendar")
		calendar.GET("/feed.ics", h.PublicCalendarFeed)
		calendar.GET("/staff-feed.ics", h.StaffCalendarFeed)
		calendar.GET("/info", h.CalendarInfo)

		// Staff portal
		staff := api.Group("", middleware.StaffAuth([]byte(env.JWTSecret)))
		{
			reservations := staff.Group("/reservations")
			reservations.GET("", h.GetReservations)
			reservations.GET("/:id", h.GetReservationByID)
			reservations.POST("", h.CreateReservation)
			reservations.PUT("/:id", h.UpdateReservation)
			reservations.DELETE("/:id", h.DeleteReservation)

			admin := staff.Group("/admin")
			admin.PATCH("/reservations/:id/status", h.UpdateReservationStatus)
			admin.PATCH("/reservations/:id/notes", h.UpdateReservationNotes)
			admin.POST("/reservations/:id/email", h.SendReservationEmail)
			admin.GET("/calendar/feeds", h.AdminCalendarFeeds)
			admin.GET("/export/daily-report", h.DailyReportPDF)
		}
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		var origins []string
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
