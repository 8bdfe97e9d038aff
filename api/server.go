/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, the middleware stack and the route table. This
  is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. RealIP:     Client address from X-Forwarded-For / X-Real-IP, only when
                 TrustProxy is set; otherwise the peer address is used
  3. Logger:     Request logging
  4. Recoverer:  Panic recovery (500 instead of crash)
  5. CORS:       Browser frontends on other origins
  6. Rate limit: Per-client token bucket on /api (when enabled)

ROUTES:
  GET  /               Status
  GET  /health         Liveness
  GET  /metrics        Prometheus (when enabled)
  /api/*               Calculator endpoints
  /static/*            Frontend assets (when the directory exists)

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/rescisao/serve.go: Server startup
*/
package api

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/warp/rescisao/config"
)

// RouterOptions carries the optional pieces of the router.
type RouterOptions struct {
	CORS      config.CORSConfig
	StaticDir string

	// TrustProxy takes the client address from proxy headers. Leave it off
	// unless a proxy in front overwrites them, since the rate limiter keys
	// on that address.
	TrustProxy bool

	// RateLimiter may be nil to disable limiting.
	RateLimiter *RateLimiter
}

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	if opts.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", h.Home)
	r.Get("/health", h.Health)
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics.Handler())
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		if opts.RateLimiter != nil {
			r.Use(opts.RateLimiter.Middleware)
		}
		r.Post("/calcular", h.Calculate)
		r.Post("/validar", h.Validate)
		r.Get("/motivos", h.ListReasons)
	})

	// Serve static files (frontend)
	if opts.StaticDir != "" {
		if info, err := os.Stat(opts.StaticDir); err == nil && info.IsDir() {
			fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(opts.StaticDir)))
			r.Get("/static/*", fileServer.ServeHTTP)
		}
	}

	return r
}
