package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopyard/shopyard-backend/api/controllers"
	"github.com/shopyard/shopyard-backend/api/middleware"
	"github.com/shopyard/shopyard-backend/pkg/config"
	"github.com/shopyard/shopyard-backend/pkg/db"
	"github.com/shopyard/shopyard-backend/pkg/logger"
	"github.com/shopyard/shopyard-backend/pkg/metrics"
	"github.com/shopyard/shopyard-backend/pkg/redis"
)

// NewRouter wires the HTTP surface: health probes, metrics, the profit grid
// endpoints and the catalog CRUD endpoints.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisStore redis.IdempotencyStore,
	redisPinger redis.Pinger,
	reqMetrics *metrics.RequestMetrics,
	tierService controllers.TierService,
	couponService controllers.CouponService,
	extraService controllers.ExtraService,
	categoryService controllers.CategoryService,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(reqMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisPinger))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Idempotency.Enabled && redisStore != nil {
			r.Use(middleware.Idempotency(redisStore, logg))
		}

		r.Get("/ping", controllers.Ping())

		r.Route("/profitGrids", func(r chi.Router) {
			r.Post("/", controllers.TierCreate(tierService, logg))
			r.Get("/", controllers.TierList(tierService, logg))
			r.Get("/showing", controllers.TierListActive(tierService, logg))
			r.Post("/calculate", controllers.TierCalculate(tierService, logg))
			r.Delete("/{ids}/many", controllers.TierDeleteMany(tierService, logg))
		})
		r.Route("/profitGrid/{id}", func(r chi.Router) {
			r.Get("/", controllers.TierDetail(tierService, logg))
			r.Put("/", controllers.TierUpdate(tierService, logg))
			r.Patch("/status", controllers.TierUpdateStatus(tierService, logg))
			r.Delete("/", controllers.TierDelete(tierService, logg))
		})

		r.Route("/coupons", func(r chi.Router) {
			r.Post("/", controllers.CouponCreate(couponService, logg))
			r.Get("/", controllers.CouponList(couponService, logg))
			r.Get("/showing", controllers.CouponListShowing(couponService, logg))
		})
		r.Route("/coupon/{id}", func(r chi.Router) {
			r.Get("/", controllers.CouponDetail(couponService, logg))
			r.Put("/", controllers.CouponUpdate(couponService, logg))
			r.Patch("/", controllers.CouponPatch(couponService, logg))
			r.Delete("/", controllers.CouponDelete(couponService, logg))
		})

		r.Route("/extras", func(r chi.Router) {
			r.Post("/", controllers.ExtraCreate(extraService, logg))
			r.Get("/", controllers.ExtraList(extraService, logg))
			r.Get("/showing", controllers.ExtraListShowing(extraService, logg))
		})
		r.Route("/extra/{id}", func(r chi.Router) {
			r.Get("/", controllers.ExtraDetail(extraService, logg))
			r.Put("/", controllers.ExtraUpdate(extraService, logg))
			r.Patch("/status", controllers.ExtraUpdateStatus(extraService, logg))
			r.Delete("/", controllers.ExtraDelete(extraService, logg))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", controllers.CategoryCreate(categoryService, logg))
			r.Get("/", controllers.CategoryList(categoryService, logg))
			r.Get("/showing", controllers.CategoryListShowing(categoryService, logg))
		})
		r.Route("/category/{id}", func(r chi.Router) {
			r.Get("/", controllers.CategoryDetail(categoryService, logg))
			r.Put("/", controllers.CategoryUpdate(categoryService, logg))
			r.Patch("/status", controllers.CategoryUpdateStatus(categoryService, logg))
			r.Delete("/", controllers.CategoryDelete(categoryService, logg))
		})
	})

	return r
}
