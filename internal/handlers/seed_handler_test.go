package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/vistro/backend/internal/service"
	"github.com/vistro/backend/internal/store"
	"github.com/vistro/backend/pkg/logger"
)

func newSeedRouter(st store.Store) *chi.Mux {
	log := logger.New("error")
	handler := NewSeedHandler(service.NewProductService(st), log)

	r := chi.NewRouter()
	r.Post("/api/seed", handler.Seed)
	return r
}

type seedResponse struct {
	Message  string   `json:"message"`
	Count    int64    `json:"count"`
	Inserted []string `json:"inserted"`
}

func TestSeed_Twice(t *testing.T) {
	r := newSeedRouter(store.NewMemory())

	req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var first seedResponse
	if err := json.NewDecoder(w.Body).Decode(&first); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if first.Message != "Seeded sample products" {
		t.Errorf("unexpected message: %s", first.Message)
	}
	if len(first.Inserted) != 3 {
		t.Errorf("expected 3 inserted ids, got %d", len(first.Inserted))
	}
	for _, id := range first.Inserted {
		if id == "" {
			t.Error("expected non-empty inserted ids")
		}
	}

	req = httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var second seedResponse
	if err := json.NewDecoder(w.Body).Decode(&second); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if second.Message != "Products already seeded" {
		t.Errorf("unexpected message: %s", second.Message)
	}
	if second.Count != 3 {
		t.Errorf("expected count 3, got %d", second.Count)
	}
	if len(second.Inserted) != 0 {
		t.Errorf("expected no inserted ids on second run, got %v", second.Inserted)
	}
}

func TestSeed_StoreUnavailable(t *testing.T) {
	r := newSeedRouter(store.Unavailable{})

	req := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if response["error"] != "Database not configured" {
		t.Errorf("expected error message 'Database not configured', got %s", response["error"])
	}
}
