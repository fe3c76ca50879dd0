package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"nft-stats/internal/common/keyset"
	"nft-stats/internal/config"
	pgRepo "nft-stats/internal/infra/adapter/persistence/postgres"
	"nft-stats/internal/infra/collectionset"
	"nft-stats/internal/infra/db"
	"nft-stats/internal/observability/logging"
	"nft-stats/internal/observability/tracing"

	collUC "nft-stats/internal/usecase/collection"

	hhttp "nft-stats/internal/handler/http"
	hcollection "nft-stats/internal/handler/http/collection"
	"nft-stats/internal/handler/http/requestid"
)

func main() {
	configPath := flag.String("config", os.Getenv("API_CONFIG"), "path to YAML config file")
	flag.Parse()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.LoadAPIConfig(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()

	resolver, breakerSource := buildResolver(logger, cfg)

	svc := &collUC.Service{
		Repo: pgRepo.NewCollectionRepo(database),
		Sets: resolver,
		Pages: keyset.Config{
			DefaultLimit: cfg.Listing.DefaultLimit,
			MaxLimit:     cfg.Listing.MaxLimit,
		},
	}

	apiHandler := buildAPIHandler(logger, cfg, svc)
	healthHandler := &hhttp.HealthHandler{DB: database, Version: version}
	if breakerSource != nil {
		healthHandler.ResolverBreaker = breakerSource.Breaker()
	}

	mux := http.NewServeMux()
	mux.Handle("/collections", apiHandler)
	mux.Handle("/collections/", apiHandler)
	mux.Handle("/healthz", healthHandler)
	mux.Handle("/readyz", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/livez", &hhttp.LiveHandler{})

	runServers(logger, cfg, mux, version)
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// buildResolver constructs the collection-set resolver. Without a configured
// service URL, set filters resolve to empty membership, which contributes no
// predicate; this keeps local development functional without the external
// dependency.
func buildResolver(logger *slog.Logger, cfg *config.APIConfig) (collectionset.Resolver, *collectionset.HTTPResolver) {
	if cfg.Resolver.BaseURL == "" {
		logger.Warn("collection-set service URL not configured, set filters resolve to empty")
		return collectionset.Static{}, nil
	}

	httpResolver := collectionset.NewHTTPResolver(collectionset.HTTPConfig{
		BaseURL: cfg.Resolver.BaseURL,
		Timeout: cfg.GetResolverTimeout(),
	})
	logger.Info("collection-set resolver configured",
		slog.String("base_url", cfg.Resolver.BaseURL),
		slog.Duration("timeout", cfg.GetResolverTimeout()))
	return httpResolver, httpResolver
}

// buildAPIHandler assembles the listing routes and the middleware chain.
// Order (outermost first): request ID, tracing, rate limit, recovery,
// logging, body limit, timeout, metrics, routes.
func buildAPIHandler(logger *slog.Logger, cfg *config.APIConfig, svc *collUC.Service) http.Handler {
	mux := http.NewServeMux()
	hcollection.Register(mux, svc, logger)

	rateLimiter := hhttp.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)

	chain := http.Handler(mux)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Timeout(cfg.GetRequestTimeout())(chain)
	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = rateLimiter.Limit(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServers starts the API and metrics servers and handles graceful shutdown.
func runServers(logger *slog.Logger, cfg *config.APIConfig, handler http.Handler, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	apiSrv := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", hhttp.MetricsHandler())
	metricsSrv := &http.Server{
		Addr:              cfg.Server.MetricsAddr,
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.ListenAddr),
			slog.String("version", version))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("metrics server starting", slog.String("addr", cfg.Server.MetricsAddr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down servers...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := apiSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("api server shutdown failed", slog.Any("error", err))
		}
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
