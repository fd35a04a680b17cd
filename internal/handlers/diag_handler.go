package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vistro/backend/internal/store"
)

// DiagHandler serves the /test diagnostic endpoint. Unlike the data
// endpoints it never fails the request: store problems are reported inside
// the payload instead.
type DiagHandler struct {
	store  store.Store
	urlSet bool
	log    *slog.Logger
}

// NewDiagHandler creates a new diagnostic handler. urlSet reports whether
// a database URL was configured in the environment.
func NewDiagHandler(st store.Store, urlSet bool, log *slog.Logger) *DiagHandler {
	return &DiagHandler{
		store:  st,
		urlSet: urlSet,
		log:    log,
	}
}

// Status handles GET /test
func (h *DiagHandler) Status(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if _, off := h.store.(store.Unavailable); !off {
		response["database"] = "✅ Available"
		if h.urlSet {
			response["database_url"] = "✅ Set"
		} else {
			response["database_url"] = "❌ Not Set"
		}
		response["database_name"] = h.store.Name()
		response["connection_status"] = "Connected"

		collections, err := h.store.Collections(r.Context())
		if err != nil {
			response["database"] = fmt.Sprintf("⚠️  Connected but Error: %s", truncate(err.Error(), 50))
		} else {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			response["collections"] = collections
			response["database"] = "✅ Connected & Working"
		}
	}

	WriteJSON(w, http.StatusOK, response, h.log)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
