package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"company-lookup/internal/config"
	lkpHnd "company-lookup/internal/lookup/handler"
	"company-lookup/internal/lookup/service"
	"company-lookup/internal/middleware"
	"company-lookup/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, svc *service.Lookup) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxBodyKB) * 1024))

	r.Get("/health", handlers.Health)

	r.Post("/lookup", lkpHnd.Find(svc, logger))

	return r
}
