package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/marromlanches/storefront-backend/api/controllers"
	"github.com/marromlanches/storefront-backend/api/middleware"
	"github.com/marromlanches/storefront-backend/internal/auth"
	"github.com/marromlanches/storefront-backend/internal/cart"
	"github.com/marromlanches/storefront-backend/internal/catalog"
	checkoutsvc "github.com/marromlanches/storefront-backend/internal/checkout"
	"github.com/marromlanches/storefront-backend/internal/delivery"
	"github.com/marromlanches/storefront-backend/internal/extras"
	"github.com/marromlanches/storefront-backend/internal/notifications"
	"github.com/marromlanches/storefront-backend/internal/orders"
	"github.com/marromlanches/storefront-backend/internal/paymentmethods"
	"github.com/marromlanches/storefront-backend/internal/settings"
	"github.com/marromlanches/storefront-backend/pkg/config"
	"github.com/marromlanches/storefront-backend/pkg/db"
	"github.com/marromlanches/storefront-backend/pkg/logger"
	"github.com/marromlanches/storefront-backend/pkg/metrics"
	pkgredis "github.com/marromlanches/storefront-backend/pkg/redis"
)

// Deps carries everything the HTTP surface needs. Optional entries may be
// nil; the affected routes then answer with a dependency error.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          db.Pinger
	Redis       *pkgredis.Client
	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer

	Auth           auth.Service
	Catalog        catalog.Service
	Extras         extras.Service
	Delivery       delivery.Service
	PaymentMethods paymentmethods.Service
	Settings       settings.Service
	Cart           cart.Service
	Checkout       checkoutsvc.Service
	Orders         orders.Service
	Notifications  notifications.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(deps.HTTPMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	var idempotencyStore pkgredis.IdempotencyStore
	if deps.Redis != nil {
		idempotencyStore = deps.Redis
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(idempotencyStore, logg))

		r.Post("/auth/login", controllers.AuthLogin(deps.Auth, logg))

		r.Get("/categories", controllers.StorefrontCategories(deps.Catalog, logg))
		r.Get("/products", controllers.StorefrontProducts(deps.Catalog, logg))
		r.Get("/extras", controllers.StorefrontExtras(deps.Extras, logg))
		r.Get("/delivery-areas", controllers.StorefrontDeliveryAreas(deps.Delivery, logg))
		r.Get("/payment-methods", controllers.StorefrontPaymentMethods(deps.PaymentMethods, logg))
		r.Get("/settings", controllers.StorefrontSettings(deps.Settings, logg))

		r.Post("/cart/quote", controllers.CartQuote(deps.Cart, logg))
		r.Post("/checkout", controllers.Checkout(deps.Checkout, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(idempotencyStore, logg))

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.AdminListCategories(deps.Catalog, logg))
			r.Post("/", controllers.AdminCreateCategory(deps.Catalog, logg))
			r.Get("/{id}", controllers.AdminGetCategory(deps.Catalog, logg))
			r.Patch("/{id}", controllers.AdminUpdateCategory(deps.Catalog, logg))
			r.Delete("/{id}", controllers.AdminDeleteCategory(deps.Catalog, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.AdminListProducts(deps.Catalog, logg))
			r.Post("/", controllers.AdminCreateProduct(deps.Catalog, logg))
			r.Get("/{id}", controllers.AdminGetProduct(deps.Catalog, logg))
			r.Patch("/{id}", controllers.AdminUpdateProduct(deps.Catalog, logg))
			r.Delete("/{id}", controllers.AdminDeleteProduct(deps.Catalog, logg))
		})

		r.Route("/extras", func(r chi.Router) {
			r.Get("/", controllers.AdminListExtras(deps.Extras, logg))
			r.Post("/", controllers.AdminCreateExtra(deps.Extras, logg))
			r.Get("/{id}", controllers.AdminGetExtra(deps.Extras, logg))
			r.Patch("/{id}", controllers.AdminUpdateExtra(deps.Extras, logg))
			r.Delete("/{id}", controllers.AdminDeleteExtra(deps.Extras, logg))
		})

		r.Route("/delivery-areas", func(r chi.Router) {
			r.Get("/", controllers.AdminListDeliveryAreas(deps.Delivery, logg))
			r.Post("/", controllers.AdminCreateDeliveryArea(deps.Delivery, logg))
			r.Get("/{id}", controllers.AdminGetDeliveryArea(deps.Delivery, logg))
			r.Patch("/{id}", controllers.AdminUpdateDeliveryArea(deps.Delivery, logg))
			r.Delete("/{id}", controllers.AdminDeleteDeliveryArea(deps.Delivery, logg))
		})

		r.Route("/payment-methods", func(r chi.Router) {
			r.Get("/", controllers.AdminListPaymentMethods(deps.PaymentMethods, logg))
			r.Post("/", controllers.AdminCreatePaymentMethod(deps.PaymentMethods, logg))
			r.Get("/{id}", controllers.AdminGetPaymentMethod(deps.PaymentMethods, logg))
			r.Patch("/{id}", controllers.AdminUpdatePaymentMethod(deps.PaymentMethods, logg))
			r.Delete("/{id}", controllers.AdminDeletePaymentMethod(deps.PaymentMethods, logg))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", controllers.AdminGetSettings(deps.Settings, logg))
			r.Patch("/", controllers.AdminUpdateSettings(deps.Settings, logg))
			r.Put("/open", controllers.AdminSetStoreOpen(deps.Settings, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminListOrders(deps.Orders, logg))
			r.Get("/today", controllers.AdminTodayOrders(deps.Orders, logg))
			r.Get("/summary", controllers.AdminOrdersSummary(deps.Orders, logg))
			r.Post("/counter", controllers.CounterOrder(deps.Checkout, logg))
			r.Get("/{id}", controllers.AdminGetOrder(deps.Orders, logg))
			r.Post("/{id}/advance", controllers.AdminAdvanceOrder(deps.Orders, logg))
			r.Post("/{id}/revert", controllers.AdminRevertOrder(deps.Orders, logg))
			r.Post("/{id}/cancel", controllers.AdminCancelOrder(deps.Orders, logg))
			r.Put("/{id}/status", controllers.AdminSetOrderStatus(deps.Orders, logg))
			r.Delete("/{id}", controllers.AdminDeleteOrder(deps.Orders, logg))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", controllers.AdminListNotifications(deps.Notifications, logg))
			r.Get("/unread-count", controllers.AdminNotificationsUnreadCount(deps.Notifications, logg))
			r.Post("/{id}/read", controllers.AdminMarkNotificationRead(deps.Notifications, logg))
			r.Post("/read-all", controllers.AdminMarkAllNotificationsRead(deps.Notifications, logg))
		})
	})

	return r
}
