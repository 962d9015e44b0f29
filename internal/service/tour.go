// Package service contains the business logic for the Tourdesk backend.
// Services orchestrate repo calls and hold whatever rules apply above the
// storage layer. No SQL lives here — services depend on repo interfaces.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/tourdesk/internal/domain"
	"github.com/pkordes/tourdesk/internal/repo"
)

// TourService implements the operations behind the tour endpoints.
type TourService struct {
	repo repo.TourRepo
}

// NewTourService constructs a TourService backed by the provided TourRepo.
func NewTourService(r repo.TourRepo) *TourService {
	return &TourService{repo: r}
}

// Create hands the tour to the store in a single insert. The record is not
// validated here; the store decides what it accepts, and its rejection comes
// back as *domain.StoreError.
func (s *TourService) Create(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	created, err := s.repo.Create(ctx, tour)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single tour by ID.
func (s *TourService) GetByID(ctx context.Context, id uuid.UUID) (domain.Tour, error) {
	tour, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("service.TourService.GetByID: %w", err)
	}
	return tour, nil
}

// ListPaged returns one page of tours and the total count.
// The slice is never nil so callers can encode it as a JSON array.
func (s *TourService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Tour, int64, error) {
	tours, total, err := s.repo.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TourService.ListPaged: %w", err)
	}
	if tours == nil {
		tours = []domain.Tour{}
	}
	return tours, total, nil
}
