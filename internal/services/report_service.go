package services

import (
	"bytes"
	"fmt"
	"time"

	"motortransport/internal/domain/models"
	"motortransport/internal/repositories"
	"motortransport/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReportService renders the filtered roster as a printable PDF.
type ReportService struct {
	Trips     repositories.TripRepository
	RequestID string
}

func (s ReportService) GenerateRoster(f models.TripFilter) ([]byte, string, error) {
	rows, err := s.Trips.List(f)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "report", "generate_roster", fmt.Sprintf("rows=%d", len(rows)))

	pdfBytes, err := buildRosterPDF(rows)
	if err != nil {
		return nil, "", err
	}
	filename := "trips-" + time.Now().Format("20060102") + ".pdf"
	return pdfBytes, filename, nil
}

func buildRosterPDF(rows []models.Trip) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Trip roster", false)
	// statuses are Cyrillic; core fonts need the cp1251 translator
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1251")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Trip roster")
	pdf.Ln(12)

	widths := []float64{25, 70, 55, 40, 40, 35}
	headers := []string{"Route", "Vehicle", "Driver", "Departure", "Arrival", "Status"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, t := range rows {
		cells := []string{
			t.RouteNumber,
			t.Vehicle,
			t.Driver,
			utils.FormatDateTime(t.DepartureTime),
			utils.FormatDateTime(t.ArrivalTime),
			t.Status,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
