package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/vistro/backend/internal/models"
	"github.com/vistro/backend/internal/service"
	"github.com/vistro/backend/internal/store"
	"github.com/vistro/backend/pkg/logger"
)

func newProductRouter(st store.Store) *chi.Mux {
	log := logger.New("error")
	handler := NewProductHandler(service.NewProductService(st), log)

	r := chi.NewRouter()
	r.Get("/api/products", handler.ListProducts)
	r.Get("/api/products/{productId}", handler.GetProduct)
	r.Post("/api/products", handler.CreateProduct)
	return r
}

func TestCreateProduct_ThenGet(t *testing.T) {
	r := newProductRouter(store.NewMemory())

	body := `{"title": "Vistro Classic Tee", "description": "Soft cotton tee.", "price": 28.0, "category": "T-Shirts", "tags": ["tee"], "featured": true}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var created map[string]any
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	id, ok := created["id"].(string)
	if !ok || id == "" {
		t.Fatalf("expected created product to carry a string id, got %v", created["id"])
	}
	if created["title"] != "Vistro Classic Tee" {
		t.Errorf("expected title to be stored, got %v", created["title"])
	}
	if created["price"] != 28.0 {
		t.Errorf("expected price 28.0, got %v", created["price"])
	}
	if created["brand"] != "Vistro" {
		t.Errorf("expected default brand 'Vistro', got %v", created["brand"])
	}
	if created["featured"] != true {
		t.Errorf("expected featured true, got %v", created["featured"])
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products/"+id, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var fetched map[string]any
	if err := json.NewDecoder(w.Body).Decode(&fetched); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for field, want := range created {
		if got, ok := fetched[field]; !ok || !jsonEqual(got, want) {
			t.Errorf("field %s differs after re-fetch: created %v, fetched %v", field, want, fetched[field])
		}
	}
}

func TestCreateProduct_ValidationFailure(t *testing.T) {
	r := newProductRouter(store.NewMemory())

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"title": "Tee", "price": -1, "category": "Tops"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", w.Code)
	}

	var response struct {
		Error  string `json:"error"`
		Fields []struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		} `json:"fields"`
	}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if len(response.Fields) == 0 || response.Fields[0].Field != "price" {
		t.Errorf("expected violation on 'price', got %v", response.Fields)
	}
}

func TestCreateProduct_InvalidBody(t *testing.T) {
	r := newProductRouter(store.NewMemory())

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"title": `))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestGetProduct_InvalidID(t *testing.T) {
	r := newProductRouter(store.NewMemory())

	req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-valid-id", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if response["error"] != "Invalid product id" {
		t.Errorf("expected error message 'Invalid product id', got %s", response["error"])
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	r := newProductRouter(store.NewMemory())

	req := httptest.NewRequest(http.MethodGet, "/api/products/64b5f0a1e4b0c2d3a4f5b6c7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if response["error"] != "Product not found" {
		t.Errorf("expected error message 'Product not found', got %s", response["error"])
	}
}

func TestListProducts_Filters(t *testing.T) {
	st := store.NewMemory()
	for _, product := range models.SampleProducts() {
		if _, err := st.Insert(context.Background(), models.ProductCollection, product); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}
	r := newProductRouter(st)

	testCases := []struct {
		name string
		url  string
		want int
	}{
		{"no filters", "/api/products", 3},
		{"featured only", "/api/products?featured=true", 2},
		{"not featured", "/api/products?featured=false", 1},
		{"by category", "/api/products?category=Hoodies", 1},
		{"category and featured", "/api/products?category=Bottoms&featured=true", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var products []map[string]any
			if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(products) != tc.want {
				t.Errorf("expected %d products, got %d", tc.want, len(products))
			}
			for _, p := range products {
				if _, ok := p["id"].(string); !ok {
					t.Errorf("expected every listed product to carry a string id, got %v", p["id"])
				}
			}
		})
	}
}

func TestListProducts_InvalidFeaturedValue(t *testing.T) {
	r := newProductRouter(store.NewMemory())

	req := httptest.NewRequest(http.MethodGet, "/api/products?featured=maybe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestProductEndpoints_StoreUnavailable(t *testing.T) {
	r := newProductRouter(store.Unavailable{})

	testCases := []struct {
		name   string
		method string
		url    string
		body   string
	}{
		{"list", http.MethodGet, "/api/products", ""},
		{"get", http.MethodGet, "/api/products/64b5f0a1e4b0c2d3a4f5b6c7", ""},
		{"create", http.MethodPost, "/api/products", `{"title": "Tee", "price": 10, "category": "Tops"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req *http.Request
			if tc.body != "" {
				req = httptest.NewRequest(tc.method, tc.url, strings.NewReader(tc.body))
			} else {
				req = httptest.NewRequest(tc.method, tc.url, nil)
			}
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
		})
	}
}

// jsonEqual compares values decoded from JSON, tolerating nested maps and
// slices.
func jsonEqual(a, b any) bool {
	aj, errA := json.Marshal(a)
	bj, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return string(aj) == string(bj)
}
