// Package repo contains all database access logic for the Tourdesk backend.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/tourdesk/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TourRepo defines the persistence operations for Tours.
type TourRepo interface {
	// Create inserts a tour exactly as given and returns the persisted record
	// with the DB-generated id, created_at, and updated_at populated.
	// Failures reported by Postgres are returned as *domain.StoreError.
	Create(ctx context.Context, tour domain.Tour) (domain.Tour, error)

	// GetByID retrieves a single tour by its UUID primary key.
	// Returns domain.ErrNotFound if no tour with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Tour, error)

	// List returns every tour, newest first.
	List(ctx context.Context) ([]domain.Tour, error)

	// ListPaged returns one page of tours, newest first, and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Tour, int64, error)
}

// pgTourRepo is the Postgres implementation of TourRepo.
type pgTourRepo struct {
	db db
}

// NewTourRepo constructs a TourRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTourRepo(db db) TourRepo {
	return &pgTourRepo{db: db}
}

const tourColumns = `id, title, location, category, price, duration, short_description,
		description, image_url, gallery, itinerary, inclusions, exclusions,
		is_active, created_at, updated_at`

// Create inserts a new tour row. Nil list fields fall back to the column
// defaults; everything else is written as supplied.
func (r *pgTourRepo) Create(ctx context.Context, tour domain.Tour) (domain.Tour, error) {
	const q = `
		INSERT INTO tours (title, location, category, price, duration, short_description,
			description, image_url, gallery, itinerary, inclusions, exclusions, is_active)
		VALUES (@title, @location, COALESCE(NULLIF(@category, ''), 'tour'), @price, @duration,
			@short_description, @description, @image_url,
			COALESCE(@gallery::text[], '{}'), @itinerary::jsonb,
			COALESCE(@inclusions::text[], '{}'), COALESCE(@exclusions::text[], '{}'),
			@is_active)
		RETURNING ` + tourColumns

	itinerary, err := encodeItinerary(tour.Itinerary)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.Create: %w", err)
	}

	args := pgx.NamedArgs{
		"title":             tour.Title,
		"location":          tour.Location,
		"category":          tour.Category,
		"price":             tour.Price,
		"duration":          tour.Duration,
		"short_description": tour.ShortDescription,
		"description":       tour.Description,
		"image_url":         tour.ImageURL,
		"gallery":           tour.Gallery, // nil becomes NULL
		"itinerary":         itinerary,
		"inclusions":        tour.Inclusions,
		"exclusions":        tour.Exclusions,
		"is_active":         tour.IsActive,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTour(row)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.Create: %w", storeError(err))
	}
	return result, nil
}

// GetByID retrieves a tour by primary key.
func (r *pgTourRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Tour, error) {
	q := `SELECT ` + tourColumns + ` FROM tours WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTour(row)
	if err != nil {
		return domain.Tour{}, fmt.Errorf("repo.TourRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all tours ordered by created_at descending.
func (r *pgTourRepo) List(ctx context.Context) ([]domain.Tour, error) {
	q := `SELECT ` + tourColumns + ` FROM tours ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TourRepo.List: %w", err)
	}
	tours, err := collectTours(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TourRepo.List: %w", err)
	}
	return tours, nil
}

// ListPaged returns one page of tours plus the total row count.
// Both queries run against the same db so a transaction sees a consistent view.
func (r *pgTourRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Tour, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM tours`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TourRepo.ListPaged: count: %w", err)
	}

	q := `SELECT ` + tourColumns + `
		FROM tours
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TourRepo.ListPaged: %w", err)
	}
	tours, err := collectTours(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TourRepo.ListPaged: %w", err)
	}
	return tours, total, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTour maps a single database row into a domain.Tour.
func scanTour(s scanner) (domain.Tour, error) {
	var (
		t         domain.Tour
		id        pgtype.UUID
		itinerary []byte
	)

	err := s.Scan(&id, &t.Title, &t.Location, &t.Category, &t.Price, &t.Duration,
		&t.ShortDescription, &t.Description, &t.ImageURL, &t.Gallery, &itinerary,
		&t.Inclusions, &t.Exclusions, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Tour{}, domain.ErrNotFound
		}
		return domain.Tour{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	if err := json.Unmarshal(itinerary, &t.Itinerary); err != nil {
		return domain.Tour{}, fmt.Errorf("decode itinerary: %w", err)
	}
	return t, nil
}

// collectTours drains rows into a non-nil slice and closes them.
func collectTours(rows pgx.Rows) ([]domain.Tour, error) {
	defer rows.Close()

	tours := []domain.Tour{}
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		tours = append(tours, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return tours, nil
}

// encodeItinerary marshals the itinerary for a JSONB column. A nil plan is
// stored as an empty array.
func encodeItinerary(days []domain.ItineraryDay) ([]byte, error) {
	if days == nil {
		return []byte("[]"), nil
	}
	b, err := json.Marshal(days)
	if err != nil {
		return nil, fmt.Errorf("encode itinerary: %w", err)
	}
	return b, nil
}

// storeError wraps a Postgres-reported failure in *domain.StoreError so the
// message can travel to the caller untouched. Other errors pass through.
func storeError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &domain.StoreError{Message: pgErr.Message, Err: err}
	}
	return err
}
