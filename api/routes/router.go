package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mibarrunto/barrunto-backend/api/controllers"
	"github.com/mibarrunto/barrunto-backend/api/middleware"
	authsvc "github.com/mibarrunto/barrunto-backend/internal/auth"
	catalogsvc "github.com/mibarrunto/barrunto-backend/internal/catalog"
	"github.com/mibarrunto/barrunto-backend/internal/checkout"
	promosvc "github.com/mibarrunto/barrunto-backend/internal/promotions"
	"github.com/mibarrunto/barrunto-backend/internal/reservations"
	"github.com/mibarrunto/barrunto-backend/internal/reviews"
	"github.com/mibarrunto/barrunto-backend/pkg/config"
	"github.com/mibarrunto/barrunto-backend/pkg/db"
	"github.com/mibarrunto/barrunto-backend/pkg/logger"
	"github.com/mibarrunto/barrunto-backend/pkg/metrics"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           db.Pinger
	Metrics      *metrics.OrderMetrics
	Registry     prometheus.Gatherer
	Session      *checkout.Session
	Auth         authsvc.Service
	Catalog      catalogsvc.Service
	Promotions   promosvc.Service
	Reservations *reservations.Store
	Reviews      *reviews.Store
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(d.Logger),
		middleware.RequestID(d.Logger),
		middleware.Logging(d.Logger),
		middleware.Metrics(d.Metrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(d.Config))
		r.Get("/ready", controllers.HealthReady(d.Config, d.Logger, d.DB))
	})

	if d.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", controllers.CatalogList(d.Catalog, d.Logger))
		r.Get("/promotions", controllers.PromotionsList(d.Promotions, d.Logger))

		r.Get("/reviews", controllers.ReviewsList(d.Reviews, d.Logger))
		r.Post("/reviews", controllers.ReviewCreate(d.Reviews, d.Logger))
		r.Post("/reservations", controllers.ReservationCreate(d.Reservations, d.Logger))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(d.Session, d.Logger))
			r.Post("/", controllers.CartAdd(d.Session, d.Logger))
			r.Patch("/{index}", controllers.CartAdjustQty(d.Session, d.Logger))
			r.Delete("/{index}", controllers.CartRemove(d.Session, d.Logger))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/open", controllers.CheckoutOpen(d.Session, d.Logger))
			r.Post("/", controllers.CheckoutFinalize(d.Session, d.Metrics, d.Logger))
		})

		r.Post("/auth/login", controllers.AuthLogin(d.Auth, d.Logger))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(d.Config.JWT, d.Logger))

		r.Route("/comandas", func(r chi.Router) {
			r.Get("/", controllers.ComandasList(d.Session, d.Logger))
			r.Get("/{id}", controllers.ComandaDetail(d.Session, d.Logger))
			r.Post("/{id}/ready", controllers.ComandaReady(d.Session, d.Metrics, d.Logger))
			r.Post("/{id}/cancel", controllers.ComandaCancel(d.Session, d.Metrics, d.Logger))
		})

		r.Get("/caja", controllers.CajaReport(d.Session, d.Logger))

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateProduct(d.Catalog, d.Logger))
			r.Put("/{code}", controllers.AdminUpdateProduct(d.Catalog, d.Logger))
			r.Delete("/{code}", controllers.AdminDeleteProduct(d.Catalog, d.Logger))
		})

		r.Route("/promotions", func(r chi.Router) {
			r.Post("/", controllers.AdminCreatePromotion(d.Promotions, d.Logger))
			r.Delete("/{id}", controllers.AdminDeletePromotion(d.Promotions, d.Logger))
		})

		r.Get("/reservations", controllers.AdminReservationsList(d.Reservations, d.Logger))
	})

	return r
}
