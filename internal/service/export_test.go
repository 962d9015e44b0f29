package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tourdesk/internal/domain"
	"github.com/pkordes/tourdesk/internal/service"
)

func TestExportService_Export(t *testing.T) {
	tour := tourFixture()
	svc := service.NewExportService(&mockTourRepo{
		list: func(_ context.Context) ([]domain.Tour, error) {
			return []domain.Tour{tour}, nil
		},
	})

	rows, err := svc.Export(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, tour.ID.String(), row.TourID)
	assert.Equal(t, "Island Hopping", row.Title)
	assert.Equal(t, "899.90", row.Price)
	assert.Equal(t, "2026-03-01T09:30:00Z", row.CreatedAt)
	assert.True(t, row.IsActive)
	assert.Equal(t, []string{"Ferry tickets", "Breakfast"}, row.Inclusions)
	assert.Equal(t, []string{"Flights"}, row.Exclusions)
	assert.Equal(t, []string{"/img/a.jpg"}, row.Gallery)
}

func TestExportService_Export_Empty(t *testing.T) {
	svc := service.NewExportService(&mockTourRepo{
		list: func(_ context.Context) ([]domain.Tour, error) { return nil, nil },
	})

	rows, err := svc.Export(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExportService_Export_RepoError(t *testing.T) {
	repoErr := errors.New("db unavailable")
	svc := service.NewExportService(&mockTourRepo{
		list: func(_ context.Context) ([]domain.Tour, error) { return nil, repoErr },
	})

	_, err := svc.Export(context.Background())

	assert.ErrorIs(t, err, repoErr)
}
