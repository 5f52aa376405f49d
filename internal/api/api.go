// Package api exposes the store over HTTP. It is a thin translation layer:
// parse and validate wire input, delegate to the store, map error kinds to
// status codes, serialize results.
package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tejavath/vaanibill/internal/storage"
)

// Server holds handler dependencies.
type Server struct {
	store storage.Store
}

// NewRouter builds the full HTTP handler: API routes under apiBase,
// /healthz and /metrics at the root, and optional static file serving for
// the built client when staticPath is non-empty.
func NewRouter(store storage.Store, apiBase, staticPath string) http.Handler {
	s := &Server{store: store}

	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(cors)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route(apiBase, func(r chi.Router) {
		r.Get("/items", s.listItems)
		r.Post("/items", s.createItem)
		r.Patch("/items/{id}", s.updateItem)
		r.Delete("/items/{id}", s.deleteItem)

		r.Get("/bills", s.listBills)
		r.Post("/bills", s.createBill)
		r.Get("/bills/{id}/items", s.getBillLines)

		r.Get("/daily-total/{date}", s.dailyTotal)
	})

	if staticPath != "" {
		r.NotFound(staticHandler(staticPath))
	}

	return r
}

// staticHandler serves the built client, falling back to index.html for
// client-side routes.
func staticHandler(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}
		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	}
}
