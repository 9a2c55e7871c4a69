/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/expenses      Report evaluation and entry submission
  /api/categories    Filter picker options
  /api/ranges        Range picker options
  /api/groupings     Grouping picker options
  /api/demo          Demo dataset loading (dev only)
  /                  Landing page listing the endpoints

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", h.GetReport)
			r.Post("/", h.SubmitExpense)
		})

		r.Get("/categories", h.ListCategories)
		r.Get("/ranges", h.ListRanges)
		r.Get("/groupings", h.ListGroupings)

		r.Post("/demo", h.LoadDemo)
	})

	// Landing page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Expense Report Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Expense Report Engine API</h1>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/expenses?range=week&group=category">/api/expenses</a> - Evaluate the report</li>
<li><a href="/api/categories">/api/categories</a> - Filter picker options</li>
<li><a href="/api/ranges">/api/ranges</a> - Range picker options</li>
<li><a href="/api/groupings">/api/groupings</a> - Grouping picker options</li>
</ul>
</body>
</html>`))
	})

	return r
}
