package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/pkordes/tourdesk/internal/domain"
)

// createTourRequest is the body of POST /api/tours. IsActive is a pointer
// so an omitted flag can be told apart from false.
type createTourRequest struct {
	Title            string                `json:"title"`
	Location         string                `json:"location"`
	Category         string                `json:"category"`
	Price            float64               `json:"price"`
	Duration         string                `json:"duration"`
	ShortDescription string                `json:"short_description"`
	Description      string                `json:"description"`
	ImageURL         string                `json:"image_url"`
	Gallery          []string              `json:"gallery"`
	Itinerary        []domain.ItineraryDay `json:"itinerary"`
	Inclusions       []string              `json:"inclusions"`
	Exclusions       []string              `json:"exclusions"`
	IsActive         *bool                 `json:"is_active"`
}

// createTourResponse is the success body of POST /api/tours.
type createTourResponse struct {
	Success bool        `json:"success"`
	Data    domain.Tour `json:"data"`
}

// pagination describes the page returned by GET /api/tours.
type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// listToursResponse is the body of GET /api/tours.
type listToursResponse struct {
	Data       []domain.Tour `json:"data"`
	Pagination pagination    `json:"pagination"`
}

// CreateTour handles POST /api/tours.
// The record goes to the store in one insert. A body that cannot be decoded
// and a store rejection both answer 400 with {"error": ...}.
func (s *Server) CreateTour(w http.ResponseWriter, r *http.Request) {
	body, err := decodeCreateTour(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.tours.Create(r.Context(), requestToTour(body))
	if err != nil {
		s.log.WarnContext(r.Context(), "tour insert rejected", "error", err)
		writeError(w, http.StatusBadRequest, errorMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, createTourResponse{Success: true, Data: created})
}

// ListTours handles GET /api/tours.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100).
func (s *Server) ListTours(w http.ResponseWriter, r *http.Request) {
	params, err := bindPagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tours, total, err := s.tours.ListPaged(r.Context(), params)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listToursResponse{
		Data:       tours,
		Pagination: pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetTour handles GET /api/tours/{id}.
func (s *Server) GetTour(w http.ResponseWriter, r *http.Request) {
	id, err := bindTourID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tour, err := s.tours.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tour not found")
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tour)
}

// internalError logs err and answers 500 without exposing details.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// --- mapping helpers --------------------------------------------------------

// decodeCreateTour reads a single JSON object from body. Fields the table
// does not have are rejected, as the store would reject them.
func decodeCreateTour(body io.Reader) (createTourRequest, error) {
	var req createTourRequest
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return createTourRequest{}, errors.New("request body is required")
		}
		return createTourRequest{}, err
	}
	return req, nil
}

// requestToTour converts the request body into a domain.Tour, defaulting
// is_active to true when the caller left it out.
func requestToTour(body createTourRequest) domain.Tour {
	return domain.Tour{
		Title:            body.Title,
		Location:         body.Location,
		Category:         body.Category,
		Price:            body.Price,
		Duration:         body.Duration,
		ShortDescription: body.ShortDescription,
		Description:      body.Description,
		ImageURL:         body.ImageURL,
		Gallery:          body.Gallery,
		Itinerary:        body.Itinerary,
		Inclusions:       body.Inclusions,
		Exclusions:       body.Exclusions,
		IsActive:         body.IsActive == nil || *body.IsActive,
	}
}
