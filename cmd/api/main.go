package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shopyard/shopyard-backend/api/routes"
	"github.com/shopyard/shopyard-backend/internal/categories"
	"github.com/shopyard/shopyard-backend/internal/coupons"
	"github.com/shopyard/shopyard-backend/internal/extras"
	"github.com/shopyard/shopyard-backend/internal/profitgrid"
	"github.com/shopyard/shopyard-backend/pkg/config"
	"github.com/shopyard/shopyard-backend/pkg/db"
	"github.com/shopyard/shopyard-backend/pkg/logger"
	"github.com/shopyard/shopyard-backend/pkg/metrics"
	"github.com/shopyard/shopyard-backend/pkg/migrate"
	"github.com/shopyard/shopyard-backend/pkg/redis"
)

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

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	calcMetrics := metrics.NewCalculationMetrics(prometheus.DefaultRegisterer)
	reqMetrics := metrics.NewRequestMetrics(prometheus.DefaultRegisterer)

	tierService, err := profitgrid.NewService(profitgrid.ServiceParams{
		Repo:    profitgrid.NewRepository(dbClient.DB()),
		Tx:      dbClient,
		Logger:  logg,
		Metrics: calcMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create profit grid service", err)
		os.Exit(1)
	}

	couponService, err := coupons.NewService(coupons.ServiceParams{
		Repo: coupons.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create coupon service", err)
		os.Exit(1)
	}

	extraService, err := extras.NewService(extras.ServiceParams{
		Repo: extras.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create extras service", err)
		os.Exit(1)
	}

	categoryService, err := categories.NewService(categories.ServiceParams{
		Repo: categories.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create category service", err)
		os.Exit(1)
	}

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
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			redisClient,
			reqMetrics,
			tierService,
			couponService,
			extraService,
			categoryService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
