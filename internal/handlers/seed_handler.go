package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vistro/backend/internal/service"
	"github.com/vistro/backend/internal/store"
)

// SeedHandler handles the sample-data seeding endpoint
type SeedHandler struct {
	service *service.ProductService
	log     *slog.Logger
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(svc *service.ProductService, log *slog.Logger) *SeedHandler {
	return &SeedHandler{
		service: svc,
		log:     log,
	}
}

// Seed handles POST /api/seed
// Idempotent: a non-empty product collection is left untouched.
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Seed(r.Context())
	if err != nil {
		h.log.Error("failed to seed products", "error", err)
		if errors.Is(err, store.ErrUnavailable) {
			WriteError(w, http.StatusInternalServerError, "Database not configured", h.log)
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("seed completed", "message", result.Message, "inserted", len(result.Inserted))
	WriteJSON(w, http.StatusOK, result, h.log)
}
