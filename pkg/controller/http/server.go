package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/interfaces"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router  chi.Router
	handler *DashboardHandler
}

// Config holds HTTP server options
type Config struct {
	Addr string
	// AllowedOrigin enables CORS for a browser dashboard served elsewhere.
	// Empty disables CORS headers.
	AllowedOrigin string
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, cfg Config, dashboard interfaces.Dashboard) *Server {
	router := chi.NewRouter()
	handler := NewDashboardHandler(dashboard)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	if cfg.AllowedOrigin != "" {
		router.Use(CORS(cfg.AllowedOrigin))
	}

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", handler.HandleDashboard)
		r.Get("/dashboard/developers", handler.HandleDeveloperMatrix)
		r.Get("/issues", handler.HandleIssues)
		r.Get("/dates", handler.HandleDates)
		r.Post("/refresh", handler.HandleRefresh)
	})

	return &Server{
		Server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:  router,
		handler: handler,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "issuedash",
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}
