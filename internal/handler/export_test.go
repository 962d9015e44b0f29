package handler_test

import (
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tourdesk/internal/domain"
	"github.com/pkordes/tourdesk/internal/handler"
)

// mockExporter is a test double for handler.Exporter.
type mockExporter struct {
	rows []domain.ExportRow
	err  error
}

func (m *mockExporter) Export(_ context.Context) ([]domain.ExportRow, error) {
	return m.rows, m.err
}

var _ handler.Exporter = (*mockExporter)(nil)

func exportRowFixture() domain.ExportRow {
	return domain.ExportRow{
		TourID:     "5b0c1a9e-3a55-4f0c-9d0b-0a6f3a3f2c11",
		Title:      "Cox's Bazar, beach days",
		Category:   "tour",
		Location:   "Cox's Bazar",
		Price:      "180.00",
		Duration:   "2 days",
		IsActive:   true,
		CreatedAt:  "2025-06-01T09:30:00Z",
		Inclusions: []string{"hotel", "breakfast"},
		Exclusions: nil,
		Gallery:    []string{"beach.jpg"},
	}
}

func newExportHandler(exp handler.Exporter) http.Handler {
	return handler.NewServer(&mockTourServicer{}, exp, nil, nil).Routes(stubGate{user: "admin-1"})
}

func TestExportTours_CSV(t *testing.T) {
	h := newExportHandler(&mockExporter{rows: []domain.ExportRow{exportRowFixture()}})

	req := httptest.NewRequest(http.MethodGet, "/api/tours/export", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "tours.csv")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{
		"tour_id", "title", "category", "location", "price", "duration",
		"is_active", "created_at", "inclusions", "exclusions", "gallery",
	}, records[0])
	assert.Equal(t, []string{
		"5b0c1a9e-3a55-4f0c-9d0b-0a6f3a3f2c11", "Cox's Bazar, beach days", "tour",
		"Cox's Bazar", "180.00", "2 days", "true", "2025-06-01T09:30:00Z",
		"hotel|breakfast", "", "beach.jpg",
	}, records[1])
}

func TestExportTours_EmptyCatalogueHasHeaderOnly(t *testing.T) {
	h := newExportHandler(&mockExporter{rows: []domain.ExportRow{}})

	req := httptest.NewRequest(http.MethodGet, "/api/tours/export", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestExportTours_500(t *testing.T) {
	h := newExportHandler(&mockExporter{err: errors.New("boom")})

	req := httptest.NewRequest(http.MethodGet, "/api/tours/export", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
