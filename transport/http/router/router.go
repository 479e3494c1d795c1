package router

import (
	"net/http"

	"timevault/config"
	"timevault/internal/handlers/conversion"
	"timevault/internal/handlers/health"
	"timevault/internal/handlers/zone"
	"timevault/shared/constant"
	"timevault/transport/http/middleware"

	// Registers the OpenAPI document served under /swagger.
	_ "timevault/docs"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Health     health.Handler
	Conversion conversion.Handler
	Zone       zone.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		r.Middleware.RequestID,
		r.Middleware.Recoverer,
		r.Middleware.Tracing,
		r.Middleware.AccessLog,
		r.Middleware.CORS(),
	)

	r.DomainHandlers.Health.Router(router)

	if r.Config.Server.Env != constant.ServerEnvProduction {
		router.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(
			r.Middleware.ShutdownGate,
			r.Middleware.RateLimit(),
		)

		r.DomainHandlers.Conversion.Router(routerGroup)
		r.DomainHandlers.Zone.Router(routerGroup)
	})
}

// Handler builds the full route tree.
func (r *Router) Handler() http.Handler {
	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
		Config:         cfg,
	}
}
