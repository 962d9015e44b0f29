package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkordes/tourdesk/internal/domain"
	"github.com/pkordes/tourdesk/internal/repo"
)

// ExportService flattens the tour catalogue for spreadsheet export.
type ExportService struct {
	tours repo.TourRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(tours repo.TourRepo) *ExportService {
	return &ExportService{tours: tours}
}

// Export returns one ExportRow per tour, newest first.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	tours, err := s.tours.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(tours))
	for _, t := range tours {
		rows = append(rows, domain.ExportRow{
			TourID:     t.ID.String(),
			Title:      t.Title,
			Category:   t.Category,
			Location:   t.Location,
			Price:      strconv.FormatFloat(t.Price, 'f', 2, 64),
			Duration:   t.Duration,
			IsActive:   t.IsActive,
			CreatedAt:  t.CreatedAt.UTC().Format(time.RFC3339),
			Inclusions: t.Inclusions,
			Exclusions: t.Exclusions,
			Gallery:    t.Gallery,
		})
	}
	return rows, nil
}
