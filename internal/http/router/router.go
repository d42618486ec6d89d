package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dronefleet-service/internal/http/handlers"
	mw "dronefleet-service/internal/http/middleware"
	"dronefleet-service/internal/http/middleware/ratelimit"
	"dronefleet-service/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	logger logx.Logger,
	rl *ratelimit.Middleware,
	base *handlers.Handlers,
	drones *handlers.DroneHandler,
	operators *handlers.OperatorHandler,
	packages *handlers.PackageHandler,
	deliveries *handlers.DeliveryHandler,
	addresses *handlers.AddressHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.Observability(logger))
	if rl != nil {
		r.Use(rl.Handler())
	}

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/drones", func(r chi.Router) {
		r.Get("/", drones.List)
		r.Post("/", drones.Create)
		r.Put("/{id}", drones.Update)
		r.Delete("/{id}", drones.Delete)
	})

	r.Route("/operators", func(r chi.Router) {
		r.Get("/", operators.List)
		r.Post("/", operators.Create)
		r.Put("/{id}", operators.Update)
		r.Delete("/{id}", operators.Delete)
	})

	r.Route("/packages", func(r chi.Router) {
		r.Get("/", packages.List)
		r.Post("/", packages.Create)
		r.Put("/{id}", packages.Update)
		r.Delete("/{id}", packages.Delete)
	})

	r.Route("/deliveries", func(r chi.Router) {
		r.Get("/", deliveries.List)
		r.Post("/", deliveries.Create)
		r.Put("/{id}", deliveries.Update)
		r.Delete("/{id}", deliveries.Delete)
	})

	r.Get("/addresses", addresses.List)

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
