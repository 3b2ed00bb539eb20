package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/kdawgwilk/ex-ulid/internal/application/identifier"
	"github.com/kdawgwilk/ex-ulid/internal/config"
	"github.com/kdawgwilk/ex-ulid/internal/transport/http/handler"
	appmiddleware "github.com/kdawgwilk/ex-ulid/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, svc identifier.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Generation reads the secure random source; keep it behind a per-IP
	// token bucket.
	genRL := appmiddleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	healthH := handler.NewHealthHandler()
	ulidH := handler.NewULIDHandler(svc)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)
		r.With(genRL.Limit).Post("/ulids", ulidH.Create)
		r.Get("/ulids/{id}", ulidH.Get)
	})

	return r
}
