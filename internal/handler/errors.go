package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pkordes/tourdesk/internal/domain"
)

// errorResponse is the single error shape every JSON endpoint uses.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already out; an encode failure means the client left.
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes {"error": message} with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorMessage returns the text to show a caller for err. A store rejection
// is forwarded as the store worded it. Anything else is reduced to its
// innermost cause, dropping the "pkg.Type.Method: " prefixes each layer adds.
// e.g. "service.TourService.Create: repo.TourRepo.Create: dial tcp: refused"
// → "dial tcp: refused"
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	var storeErr *domain.StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Message
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
