package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkordes/tourdesk/internal/domain"
)

// csvHeaders defines the column names written as the first row of the export.
var csvHeaders = []string{
	"tour_id", "title", "category", "location", "price", "duration",
	"is_active", "created_at", "inclusions", "exclusions", "gallery",
}

// ExportTours handles GET /api/tours/export.
// It returns every tour as CSV, one line per tour.
func (s *Server) ExportTours(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	body := buildCSV(rows)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="tours.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = body.WriteTo(w)
}

// buildCSV encodes rows as CSV. List fields are joined with "|" to keep
// each tour on a single line.
func buildCSV(rows []domain.ExportRow) *bytes.Buffer {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		w.Write(rowToCSVRecord(r))
	}
	w.Flush()
	return &buf
}

// rowToCSVRecord encodes a domain.ExportRow as a flat string slice.
func rowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.TourID,
		r.Title,
		r.Category,
		r.Location,
		r.Price,
		r.Duration,
		strconv.FormatBool(r.IsActive),
		r.CreatedAt,
		strings.Join(r.Inclusions, "|"),
		strings.Join(r.Exclusions, "|"),
		strings.Join(r.Gallery, "|"),
	}
}
