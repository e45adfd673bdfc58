// Package handlers exposes the HTTP surface: JSON decoding, the response
// envelope, the token middleware, and thin wrappers around the services.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rwidjaja/contactbook/internal/apperr"
	"github.com/rwidjaja/contactbook/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, resp models.WebResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError maps a service error onto the envelope. Unknown errors are
// logged and surfaced as a generic 500.
func writeError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("internal error", "error", err)
		msg = "internal server error"
	}
	writeJSON(w, status, models.WebResponse{Errors: msg})
}

// decodeJSON rejects unreadable bodies with a 400 envelope.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, models.WebResponse{Errors: "invalid request body"})
		return false
	}
	return true
}
