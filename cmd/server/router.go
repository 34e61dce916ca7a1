package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/middleware"
)

// newRouter mounts products as a catch-all so that its own path parser,
// not chi, decides what is a product route. The method gate runs after CORS
// so preflight still succeeds, and ahead of routing and the key guard.
func newRouter(cfg *config.Config, products, health http.Handler, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)

	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "DELETE"},
			AllowedHeaders:   []string{"Accept", "Content-Type", middleware.APIKeyHeader},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Use(middleware.MethodGate)

	if cfg.Server.HealthPath != "" {
		r.Handle(cfg.Server.HealthPath, health)
	}

	r.Group(func(r chi.Router) {
		if len(cfg.Auth.APIKeys) > 0 {
			r.Use(middleware.APIKeyAuth(cfg.Auth, log))
		}
		r.Handle("/*", products)
	})

	return r
}
