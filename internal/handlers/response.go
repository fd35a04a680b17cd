package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vistro/backend/internal/validation"
)

// errorResponse is the body shape shared by every failing endpoint. Fields
// is populated only for validation failures.
type errorResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// WriteJSON writes data as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any, log *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes a JSON error body with a human-readable message.
func WriteError(w http.ResponseWriter, status int, message string, log *slog.Logger) {
	WriteJSON(w, status, errorResponse{Error: message}, log)
}

// writeDecodeError distinguishes undecodable bodies (400) from bodies that
// decoded but violated validation constraints (422).
func writeDecodeError(w http.ResponseWriter, err error, log *slog.Logger) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		log.Warn("request body failed validation", "error", verr)
		WriteJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "Validation failed",
			Fields: verr.Fields,
		}, log)
		return
	}

	log.Warn("failed to decode request body", "error", err)
	WriteError(w, http.StatusBadRequest, "Invalid request body", log)
}
