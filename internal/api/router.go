package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ndewijer/TradeLog-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/TradeLog-Backend/internal/api/middleware"
	"github.com/ndewijer/TradeLog-Backend/internal/config"
	"github.com/ndewijer/TradeLog-Backend/internal/monitoring"
	"github.com/ndewijer/TradeLog-Backend/internal/service"
)

// Services bundles the services the router exposes.
type Services struct {
	System *service.SystemService
	Trade  *service.TradeService
	Group  *service.GroupService
}

// NewRouter creates and configures the HTTP router
func NewRouter(
	services Services,
	metrics *monitoring.Metrics,
	logger zerolog.Logger,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(logger))
	r.Use(custommiddleware.Metrics(metrics))
	r.Use(middleware.Recoverer)

	// CORS middleware
	r.Use(custommiddleware.NewCORS(cfg.CORS.AllowedOrigins))

	systemHandler := handlers.NewSystemHandler(services.System)
	r.Get("/health", systemHandler.Health)
	r.Get("/version", systemHandler.Version)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/trades", func(r chi.Router) {
			tradeHandler := handlers.NewTradeHandler(services.Trade)
			r.Get("/", tradeHandler.Trades)
			r.Post("/", tradeHandler.CreateTrade)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", tradeHandler.Trade)
				r.Put("/", tradeHandler.UpdateTrade)
				r.Delete("/", tradeHandler.DeleteTrade)
			})
		})

		groupHandler := handlers.NewGroupHandler(services.Group)

		r.Route("/groups", func(r chi.Router) {
			r.Get("/", groupHandler.Groups)
			r.Post("/", groupHandler.CreateGroup)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", groupHandler.Group)
				r.Patch("/", groupHandler.UpdateGroup)
				r.Delete("/", groupHandler.DeleteGroup)
			})
		})

		r.Post("/strategies", groupHandler.CreateStrategy)
	})

	return r
}
