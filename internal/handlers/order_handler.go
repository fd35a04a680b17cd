package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vistro/backend/internal/models"
	"github.com/vistro/backend/internal/service"
	"github.com/vistro/backend/internal/store"
	"github.com/vistro/backend/internal/validation"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	service *service.OrderService
	log     *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(svc *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: svc,
		log:     log,
	}
}

// CreateOrder handles POST /api/orders
// Every item's product reference is resolved before the order is written;
// a bad reference rejects the whole order with a 400 naming the id.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	order, err := validation.Decode[models.Order](r.Body)
	if err != nil {
		writeDecodeError(w, err, h.log)
		return
	}

	created, err := h.service.Create(r.Context(), *order)
	if err != nil {
		var refErr *service.ProductRefError
		switch {
		case errors.As(err, &refErr):
			h.log.Warn("order references unknown product", "productId", refErr.ProductID, "malformed", refErr.Malformed)
			if refErr.Malformed {
				WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid product id: %s", refErr.ProductID), h.log)
			} else {
				WriteError(w, http.StatusBadRequest, fmt.Sprintf("Product not found: %s", refErr.ProductID), h.log)
			}
		case errors.Is(err, store.ErrUnavailable):
			h.log.Error("failed to create order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Database not configured", h.log)
		default:
			h.log.Error("failed to create order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("order created", "orderId", created["id"], "items", len(order.Items))
	WriteJSON(w, http.StatusCreated, created, h.log)
}
