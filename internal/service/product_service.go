package service

import (
	"context"

	"github.com/vistro/backend/internal/models"
	"github.com/vistro/backend/internal/store"
)

// ProductService handles business logic for products
type ProductService struct {
	store store.Store
}

// NewProductService creates a new product service
func NewProductService(st store.Store) *ProductService {
	return &ProductService{
		store: st,
	}
}

// List returns products matching the optional category and featured
// filters. Nil means the filter is not applied.
func (s *ProductService) List(ctx context.Context, category *string, featured *bool) ([]store.Document, error) {
	filter := store.Filter{}
	if category != nil {
		filter["category"] = *category
	}
	if featured != nil {
		filter["featured"] = *featured
	}
	return s.store.Find(ctx, models.ProductCollection, filter)
}

// Get returns a single product by id.
func (s *ProductService) Get(ctx context.Context, id store.ID) (store.Document, error) {
	return s.store.FindByID(ctx, models.ProductCollection, id)
}

// Create stores a validated product and returns the created document as
// read back from the store.
func (s *ProductService) Create(ctx context.Context, product models.Product) (store.Document, error) {
	id, err := s.store.Insert(ctx, models.ProductCollection, product)
	if err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, models.ProductCollection, id)
}

// SeedResult reports the outcome of a seeding run.
type SeedResult struct {
	Message  string   `json:"message"`
	Count    int64    `json:"count,omitempty"`
	Inserted []string `json:"inserted,omitempty"`
}

// Seed inserts the sample catalog once. If the product collection already
// holds documents it inserts nothing and reports the existing count.
func (s *ProductService) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.store.Count(ctx, models.ProductCollection, store.Filter{})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &SeedResult{Message: "Products already seeded", Count: count}, nil
	}

	inserted := make([]string, 0)
	for _, product := range models.SampleProducts() {
		id, err := s.store.Insert(ctx, models.ProductCollection, product)
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, id.String())
	}
	return &SeedResult{Message: "Seeded sample products", Inserted: inserted}, nil
}
