package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/pkordes/tourdesk/internal/domain"
	"github.com/pkordes/tourdesk/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var adminTemplate = template.Must(template.ParseFS(templateFS, "templates/admin.html"))

// adminTour is one row of the dashboard table.
type adminTour struct {
	domain.Tour
	Tagline template.HTML
}

// adminPage is the data the dashboard template renders.
type adminPage struct {
	UserID string
	Tours  []adminTour
	Total  int64
}

// GetAdmin handles GET /admin: the signed-in user and the newest page of
// tours, with each short description passed through the emphasizer.
func (s *Server) GetAdmin(w http.ResponseWriter, r *http.Request) {
	tours, total, err := s.tours.ListPaged(r.Context(), domain.NewPaginationParams(nil, nil))
	if err != nil {
		s.log.ErrorContext(r.Context(), "admin dashboard failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	page := adminPage{UserID: session.UserID(r.Context()), Total: total}
	for _, t := range tours {
		page.Tours = append(page.Tours, adminTour{
			Tour: t,
			// HTML() escapes every text segment.
			Tagline: template.HTML(s.emphasizer.Emphasize(t.ShortDescription).HTML()), //nolint:gosec
		})
	}

	var buf bytes.Buffer
	if err := adminTemplate.Execute(&buf, page); err != nil {
		s.log.ErrorContext(r.Context(), "admin template failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
