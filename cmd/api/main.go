package main

import (
	"context"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/marromlanches/storefront-backend/api/routes"
	"github.com/marromlanches/storefront-backend/internal/admins"
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
	"github.com/marromlanches/storefront-backend/pkg/db/models"
	"github.com/marromlanches/storefront-backend/pkg/logger"
	"github.com/marromlanches/storefront-backend/pkg/metrics"
	"github.com/marromlanches/storefront-backend/pkg/migrate"
	"github.com/marromlanches/storefront-backend/pkg/outbox"
	"github.com/marromlanches/storefront-backend/pkg/redis"
)

// productGetter narrows the catalog repository to what cart pricing needs.
type productGetter struct {
	repo catalog.Repository
}

func (p productGetter) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return p.repo.GetProductByID(ctx, id)
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	gormDB := dbClient.DB()

	catalogRepo := catalog.NewRepository(gormDB)
	extrasRepo := extras.NewRepository(gormDB)
	deliveryRepo := delivery.NewRepository(gormDB)
	paymentMethodsRepo := paymentmethods.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	ordersRepo := orders.NewRepository(gormDB)
	notificationsRepo := notifications.NewRepository(gormDB)

	outboxService := outbox.NewService(outbox.NewRepository(gormDB), logg)

	authService, err := auth.NewService(auth.ServiceParams{
		AdminRepo:   admins.NewRepository(gormDB),
		RateLimiter: redisClient,
		JWTConfig:   cfg.JWT,
		RateLimit:   cfg.AuthRateLimit,
		Logger:      logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}
	extrasService, err := extras.NewService(extrasRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create extras service", err)
		os.Exit(1)
	}
	deliveryService, err := delivery.NewService(deliveryRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create delivery service", err)
		os.Exit(1)
	}
	paymentMethodsService, err := paymentmethods.NewService(paymentMethodsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create payment methods service", err)
		os.Exit(1)
	}
	settingsService, err := settings.NewService(settingsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}
	cartService, err := cart.NewService(productGetter{repo: catalogRepo}, extrasRepo, deliveryRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}
	checkoutService, err := checkoutsvc.NewService(cartService, ordersRepo, dbClient, outboxService, paymentMethodsService, settingsRepo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}
	ordersService, err := orders.NewService(ordersRepo, dbClient, outboxService, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}
	notificationsService, err := notifications.NewService(notificationsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create notifications service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:         cfg,
			Logger:         logg,
			DB:             dbClient,
			Redis:          redisClient,
			HTTPMetrics:    httpMetrics,
			Gatherer:       registry,
			Auth:           authService,
			Catalog:        catalogService,
			Extras:         extrasService,
			Delivery:       deliveryService,
			PaymentMethods: paymentMethodsService,
			Settings:       settingsService,
			Cart:           cartService,
			Checkout:       checkoutService,
			Orders:         ordersService,
			Notifications:  notificationsService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
