package handlers

import (
	"log/slog"
	"net/http"
)

// MetaHandler serves the root and hello endpoints.
type MetaHandler struct {
	log *slog.Logger
}

// NewMetaHandler creates a new meta handler
func NewMetaHandler(log *slog.Logger) *MetaHandler {
	return &MetaHandler{
		log: log,
	}
}

// Root handles GET /
func (h *MetaHandler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"brand":   "Vistro",
		"message": "Vistro backend is running",
	}, h.log)
}

// Hello handles GET /api/hello
func (h *MetaHandler) Hello(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Hello from the Vistro backend API!",
	}, h.log)
}
