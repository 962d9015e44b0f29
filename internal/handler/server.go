// Package handler implements the HTTP handlers for the Tourdesk API.
// All handlers are methods on Server. They are split into resource files
// (health.go, tour.go, etc.) and registered on a chi router by Routes.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/tourdesk/internal/domain"
	"github.com/pkordes/tourdesk/internal/tagline"
)

// TourServicer defines the tour operations the handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching the database or service layer.
type TourServicer interface {
	Create(ctx context.Context, tour domain.Tour) (domain.Tour, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Tour, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Tour, int64, error)
}

// Exporter produces the flat catalogue export.
type Exporter interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Gate guards routes that need a signed-in administrator.
// Require redirects browsers; RequireAPI answers 401.
type Gate interface {
	Require(next http.Handler) http.Handler
	RequireAPI(next http.Handler) http.Handler
}

// Server holds the dependencies shared by every handler.
type Server struct {
	tours      TourServicer
	export     Exporter
	emphasizer *tagline.Emphasizer
	log        *slog.Logger
}

// NewServer constructs the Server with all its dependencies. A nil
// emphasizer uses the default marker; a nil log discards output.
func NewServer(tours TourServicer, export Exporter, emphasizer *tagline.Emphasizer, log *slog.Logger) *Server {
	if emphasizer == nil {
		emphasizer = tagline.New()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{tours: tours, export: export, emphasizer: emphasizer, log: log}
}

// Routes registers every endpoint on a new chi router. Public routes are
// open; everything under /api/tours and /admin passes through gate first.
func (s *Server) Routes(gate Gate) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/api/tagline", s.GetTagline)

	r.Route("/api/tours", func(r chi.Router) {
		r.Use(gate.RequireAPI)
		r.Post("/", s.CreateTour)
		r.Get("/", s.ListTours)
		r.Get("/export", s.ExportTours)
		r.Get("/{id}", s.GetTour)
	})

	r.With(gate.Require).Get("/admin", s.GetAdmin)

	return r
}
