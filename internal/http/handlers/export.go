package handlers

import (
	"net/http"

	"harrylist/internal/domain"
	"harrylist/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/export/daily-report?date=2026-03-15&location=HUBBLE&confirmedOnly=false
//
// Renders the printable PDF the bar crew pins behind the counter. Only
// confirmed reservations are included unless confirmedOnly=false.
func DailyReportPDF(c *gin.Context) {
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD", nil)
		return
	}

	location, err := domain.ParseLocation(c.Query("location"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_location", err.Error(), nil)
		return
	}

	confirmedOnly := boolQuery(c, "confirmedOnly", true)

	pdfBytes, filename, err := exportService(c).GenerateDailyReport(date, location, confirmedOnly)
	if err != nil {
		if domain.IsNotFound(err) || domain.IsValidation(err) {
			RespondDomainError(c, err)
			return
		}
		respondError(c, http.StatusInternalServerError, "render_failed", "could not generate report", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
