package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vistro/backend/internal/models"
	"github.com/vistro/backend/internal/store"
)

// ProductRefError reports an order item whose product reference cannot be
// resolved, either because the id is malformed or because no such product
// exists.
type ProductRefError struct {
	ProductID string
	Malformed bool
}

func (e *ProductRefError) Error() string {
	if e.Malformed {
		return fmt.Sprintf("invalid product id: %s", e.ProductID)
	}
	return fmt.Sprintf("product not found: %s", e.ProductID)
}

// OrderService handles order business logic
type OrderService struct {
	store store.Store
}

// NewOrderService creates a new order service
func NewOrderService(st store.Store) *OrderService {
	return &OrderService{
		store: st,
	}
}

// Create stores a validated order after resolving every item's product
// reference. The first unresolvable reference rejects the whole order;
// nothing is written in that case.
func (s *OrderService) Create(ctx context.Context, order models.Order) (store.Document, error) {
	for _, item := range order.Items {
		_, err := s.store.FindByID(ctx, models.ProductCollection, store.ID(item.ProductID))
		switch {
		case errors.Is(err, store.ErrMalformedID):
			return nil, &ProductRefError{ProductID: item.ProductID, Malformed: true}
		case errors.Is(err, store.ErrNotFound):
			return nil, &ProductRefError{ProductID: item.ProductID}
		case err != nil:
			return nil, err
		}
	}

	id, err := s.store.Insert(ctx, models.OrderCollection, order)
	if err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, models.OrderCollection, id)
}
