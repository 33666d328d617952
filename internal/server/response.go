package server

import (
	"encoding/json"
	"net/http"

	"github.com/dreamware/strand/internal/errors"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// statusForError maps a domain error to its HTTP status code
func statusForError(err error) int {
	switch {
	case errors.IsInvalidRequest(err) || errors.IsParse(err):
		return http.StatusBadRequest
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.IsConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError classifies err and writes the matching error envelope
func respondError(w http.ResponseWriter, err error) {
	writeError(w, statusForError(err), err.Error())
}
