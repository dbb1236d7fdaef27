package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/utafrali/CampgroundsGo/pkg/errors"
	"github.com/utafrali/CampgroundsGo/pkg/health"
	"github.com/utafrali/CampgroundsGo/pkg/middleware"

	"github.com/utafrali/CampgroundsGo/internal/view"
)

// RouterConfig carries everything the router needs.
type RouterConfig struct {
	ServiceName string
	Logger      *slog.Logger
	Views       *view.Renderer
	Campgrounds CampgroundService
	Reviews     ReviewService
	Health      *health.Handler
}

// NewRouter builds the HTTP route table with the standard middleware chain.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.Tracing(cfg.ServiceName))
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.PrometheusMetrics(cfg.ServiceName))
	r.Use(middleware.MethodOverride)

	campgrounds := NewCampgroundHandler(cfg.Campgrounds, cfg.Views)
	reviews := NewReviewHandler(cfg.Reviews, cfg.Views)

	r.Get("/", campgrounds.Home)

	r.Route("/campgrounds", func(r chi.Router) {
		r.Get("/", campgrounds.Index)
		r.Post("/", campgrounds.Create)
		r.Get("/new", campgrounds.New)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", campgrounds.Show)
			r.Get("/edit", campgrounds.Edit)
			r.Put("/", campgrounds.Update)
			r.Delete("/", campgrounds.Delete)

			r.Post("/reviews", reviews.Create)
			r.Delete("/reviews/{reviewID}", reviews.Delete)
		})
	})

	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	// Anything unmatched renders the 404 page.
	notFound := func(w http.ResponseWriter, req *http.Request) {
		renderError(w, req, cfg.Views, apperrors.RouteNotFound())
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}
