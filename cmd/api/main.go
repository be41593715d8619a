package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/mibarrunto/barrunto-backend/api/routes"
	authsvc "github.com/mibarrunto/barrunto-backend/internal/auth"
	catalogsvc "github.com/mibarrunto/barrunto-backend/internal/catalog"
	"github.com/mibarrunto/barrunto-backend/internal/checkout"
	promosvc "github.com/mibarrunto/barrunto-backend/internal/promotions"
	"github.com/mibarrunto/barrunto-backend/internal/reservations"
	"github.com/mibarrunto/barrunto-backend/internal/reviews"
	"github.com/mibarrunto/barrunto-backend/pkg/config"
	"github.com/mibarrunto/barrunto-backend/pkg/db"
	"github.com/mibarrunto/barrunto-backend/pkg/ids"
	"github.com/mibarrunto/barrunto-backend/pkg/logger"
	"github.com/mibarrunto/barrunto-backend/pkg/metrics"
	"github.com/mibarrunto/barrunto-backend/pkg/migrate"
)

func main() {
	// the storefront parses prices as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

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

	if err := migrate.Run(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to migrate schema", err)
		os.Exit(1)
	}

	idGen := ids.NewGenerator()

	catalogRepo := catalogsvc.NewRepository(dbClient.DB())
	catalogService, err := catalogsvc.NewService(catalogRepo, idGen)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}
	if err := catalogsvc.Seed(context.Background(), catalogRepo, logg, cfg.Catalog.MenuPath); err != nil {
		logg.Error(context.Background(), "failed to seed catalog", err)
		os.Exit(1)
	}

	promoService, err := promosvc.NewService(promosvc.NewRepository(dbClient.DB()), idGen)
	if err != nil {
		logg.Error(context.Background(), "failed to create promotions service", err)
		os.Exit(1)
	}
	if err := promoService.Seed(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to seed promotions", err)
		os.Exit(1)
	}

	authService, err := authsvc.NewService(cfg.Admin, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	orderMetrics := metrics.NewOrderMetrics(registry)

	session := checkout.NewSession(checkout.Options{IDs: idGen})

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
			Config:       cfg,
			Logger:       logg,
			DB:           dbClient,
			Metrics:      orderMetrics,
			Registry:     registry,
			Session:      session,
			Auth:         authService,
			Catalog:      catalogService,
			Promotions:   promoService,
			Reservations: reservations.NewStore(),
			Reviews:      reviews.NewStore(),
		}),
	}

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stopCtx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	var closeErr error
	closeErr = multierr.Append(closeErr, server.Shutdown(shutdownCtx))
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if closeErr != nil {
		logg.Error(ctx, "shutdown finished with errors", closeErr)
		os.Exit(1)
	}

	logg.Info(ctx, "api server stopped")
}
