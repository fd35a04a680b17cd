package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vistro/backend/internal/models"
	"github.com/vistro/backend/internal/service"
	"github.com/vistro/backend/internal/store"
	"github.com/vistro/backend/internal/validation"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	log     *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(svc *service.ProductService, log *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		log:     log,
	}
}

// ListProducts handles GET /api/products
// Supports optional category and featured query filters.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	var category *string
	if v := query.Get("category"); v != "" {
		category = &v
	}

	var featured *bool
	if v := query.Get("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			h.log.Warn("invalid featured filter", "value", v)
			WriteError(w, http.StatusBadRequest, "Invalid featured value", h.log)
			return
		}
		featured = &b
	}

	products, err := h.service.List(ctx, category, featured)
	if err != nil {
		h.writeStoreError(w, err, "failed to list products")
		return
	}

	WriteJSON(w, http.StatusOK, products, h.log)
}

// GetProduct handles GET /api/products/{productId}
// - 200: successful operation
// - 400: malformed id
// - 404: product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productId")

	product, err := h.service.Get(ctx, store.ID(productID))
	switch {
	case errors.Is(err, store.ErrMalformedID):
		h.log.Warn("invalid product id", "productId", productID)
		WriteError(w, http.StatusBadRequest, "Invalid product id", h.log)
		return
	case errors.Is(err, store.ErrNotFound):
		h.log.Info("product not found", "productId", productID)
		WriteError(w, http.StatusNotFound, "Product not found", h.log)
		return
	case err != nil:
		h.writeStoreError(w, err, "failed to get product")
		return
	}

	WriteJSON(w, http.StatusOK, product, h.log)
}

// CreateProduct handles POST /api/products
// Returns the created product as stored, with its generated id.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	product, err := validation.Decode[models.Product](r.Body)
	if err != nil {
		writeDecodeError(w, err, h.log)
		return
	}

	created, err := h.service.Create(r.Context(), *product)
	if err != nil {
		h.writeStoreError(w, err, "failed to create product")
		return
	}

	h.log.Info("product created", "productId", created["id"], "title", product.Title)
	WriteJSON(w, http.StatusCreated, created, h.log)
}

// writeStoreError maps non-specific store failures to a 500 response.
func (h *ProductHandler) writeStoreError(w http.ResponseWriter, err error, msg string) {
	h.log.Error(msg, "error", err)
	if errors.Is(err, store.ErrUnavailable) {
		WriteError(w, http.StatusInternalServerError, "Database not configured", h.log)
		return
	}
	WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
}
