package handler

import (
	"net/http"

	"github.com/pkordes/tourdesk/internal/tagline"
)

// taglineResponse is the body of GET /api/tagline.
type taglineResponse struct {
	tagline.Emphasis
	HTML string `json:"html"`
}

// GetTagline handles GET /api/tagline?text=.
// A missing text parameter is treated as an empty tagline.
func (s *Server) GetTagline(w http.ResponseWriter, r *http.Request) {
	em := s.emphasizer.Emphasize(r.URL.Query().Get("text"))
	writeJSON(w, http.StatusOK, taglineResponse{Emphasis: em, HTML: em.HTML()})
}
