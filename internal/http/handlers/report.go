package handlers

import (
	"net/http"

	"motortransport/internal/http/middleware"
	"motortransport/internal/repositories"
	"motortransport/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/trips/report — the filtered roster as a PDF (inline).
func GetTripsReportPDF(c *gin.Context) {
	f, ok := tripFilterFromQuery(c)
	if !ok {
		return
	}

	svc := services.ReportService{
		Trips:     repositories.TripRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateRoster(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
