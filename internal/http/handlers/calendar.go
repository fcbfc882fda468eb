package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"harrylist/internal/domain"
	"harrylist/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/calendar/feed.ics
//
// Public subscription feed, contact details redacted. When a public
// token is configured the caller must present it; otherwise the feed
// is open.
func PublicCalendarFeed(c *gin.Context) {
	if cfg.FeedToken != "" && !tokenMatches(c.Query("token"), cfg.FeedToken) {
		c.String(http.StatusUnauthorized, "Invalid or missing token")
		return
	}
	serveFeed(c, false, "reservations.ics")
}

// GET /api/calendar/staff-feed.ics
//
// Staff feed with full contact details. Refuses to serve at all when
// its token is not configured; the token must differ from the public
// one in deployment but that is an ops concern, not enforced here.
func StaffCalendarFeed(c *gin.Context) {
	if cfg.StaffFeedToken == "" {
		c.String(http.StatusServiceUnavailable, "Staff feed not configured")
		return
	}
	if !tokenMatches(c.Query("token"), cfg.StaffFeedToken) {
		c.String(http.StatusUnauthorized, "Invalid or missing staff token")
		return
	}
	serveFeed(c, true, "staff-reservations.ics")
}

func serveFeed(c *gin.Context, includeConfidential bool, filename string) {
	filter := services.FeedFilter{
		Location:     strings.TrimSpace(c.Query("location")),
		UpcomingOnly: boolQuery(c, "upcomingOnly", false),
	}
	if raw := c.Query("status"); raw != "" {
		statuses, err := domain.ParseStatusList(raw)
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid status value. Use: PENDING, CONFIRMED, REJECTED, CANCELLED")
			return
		}
		filter.Statuses = statuses
	}

	ics, err := calendarService().GenerateFeed(filter, includeConfidential)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	// Calendar clients poll; discourage caching so edits show up fast.
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}

func tokenMatches(presented, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(presented), []byte(expected)) == 1
}

// GET /api/calendar/info
func CalendarInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"description": "Two calendar feeds available: public (no contact details) and staff (full details)",
		"publicFeed": gin.H{
			"url":         "/api/calendar/feed.ics",
			"description": "Public feed - does NOT include email/phone for privacy",
			"example":     "/api/calendar/feed.ics?token=PUBLIC_TOKEN",
		},
		"staffFeed": gin.H{
			"url":         "/api/calendar/staff-feed.ics",
			"description": "Staff feed - includes ALL details including email/phone",
			"example":     "/api/calendar/staff-feed.ics?token=STAFF_TOKEN",
		},
		"parameters": gin.H{
			"token":        "Required authentication token",
			"status":       "Optional: Filter by status (comma-separated: PENDING,CONFIRMED,REJECTED,CANCELLED)",
			"location":     "Optional: Filter by location (HUBBLE or METEOR)",
			"upcomingOnly": "Optional: Set to true to only show upcoming events",
		},
		"instructions": gin.H{
			"googleCalendar": "Settings > Add calendar > From URL > Paste the feed URL",
			"outlook":        "Add calendar > Subscribe from web > Paste the feed URL",
			"appleCalendar":  "File > New Calendar Subscription > Paste the feed URL",
		},
	})
}

type calendarFeedInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	HasToken    bool   `json:"hasToken"`
}

type feedParameterInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// GET /api/admin/calendar/feeds
//
// Returns ready-to-subscribe URLs with the tokens embedded, so staff
// can copy them straight into a calendar app. Base URL honors reverse
// proxy headers.
func AdminCalendarFeeds(c *gin.Context) {
	baseURL := requestBaseURL(c)

	publicFeed := calendarFeedInfo{
		ID:          "public",
		Name:        "Public Feed",
		Description: "Event details without contact information. Token not configured.",
	}
	if cfg.FeedToken != "" {
		publicFeed.Description = "Event details without contact information (email/phone). Safe to share with external partners."
		publicFeed.URL = baseURL + "/api/calendar/feed.ics?token=" + cfg.FeedToken
		publicFeed.HasToken = true
	}

	staffFeed := calendarFeedInfo{
		ID:          "staff",
		Name:        "Staff Feed",
		Description: "Full event details including contact information. Token not configured.",
	}
	if cfg.StaffFeedToken != "" {
		staffFeed.Description = "Full event details including contact information (email/phone). Only share with staff members."
		staffFeed.URL = baseURL + "/api/calendar/staff-feed.ics?token=" + cfg.StaffFeedToken
		staffFeed.HasToken = true
	}

	c.JSON(http.StatusOK, gin.H{
		"feeds": []calendarFeedInfo{publicFeed, staffFeed},
		"parameters": []feedParameterInfo{
			{
				Name:        "status",
				Description: "Filter by status: PENDING, CONFIRMED, REJECTED, CANCELLED (comma-separated)",
				Example:     "?token=xxx&status=CONFIRMED",
			},
			{
				Name:        "location",
				Description: "Filter by location: HUBBLE or METEOR",
				Example:     "?token=xxx&location=HUBBLE",
			},
			{
				Name:        "upcomingOnly",
				Description: "Only show future events",
				Example:     "?token=xxx&upcomingOnly=true",
			},
		},
	})
}

func requestBaseURL(c *gin.Context) string {
	scheme := c.GetHeader("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
	}
	host := c.GetHeader("X-Forwarded-Host")
	if host == "" {
		host = c.Request.Host
	}
	return scheme + "://" + host
}
