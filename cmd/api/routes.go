package main

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/config"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/loader"
	"bookcatalog/internal/platform/postgres"
)

const readyTimeout = 500 * time.Millisecond

type database interface {
	postgres.DB
	Ping(ctx context.Context) error
}

// newHandler wires repositories, services and middleware. A nil db serves
// the in-memory catalog and leaves the seed job unmounted. The returned
// cleanup stops background goroutines owned by the middleware.
func newHandler(cfg *config.Config, log *zap.Logger, db database, registry *prometheus.Registry) (http.Handler, func()) {
	var catalogRepo catalog.Repository = catalog.NewMemoryRepo()
	if db != nil {
		catalogRepo = catalog.NewPostgresRepo(db, log.Named("catalog"), cfg.DB.QueryTimeout)
	}
	catalogHandler := catalog.NewHTTPHandler(catalog.NewService(catalogRepo, log), log)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				log.Warn("readiness check failed", zap.Error(err))
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	catalogHandler.RegisterRoutes(router)

	if db != nil {
		seedSvc := loader.NewService(
			loader.NewPostgresStore(db),
			postgres.NewTransactor(log, db),
			log.Named("loader"),
			registry,
		)
		loader.NewHTTPHandler(seedSvc, cfg.Security.InternalSecret, log).RegisterRoutes(router)
	}

	metrics := httpx.NewMetrics(registry)
	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)

	handler := httpx.Chain(metrics.Middleware(router),
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		httpx.CORSMiddleware(cfg.Security.AllowedOrigins),
		httpx.SecurityHeadersMiddleware(cfg.Security.EnableHSTS),
		rateLimiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.HTTP.MaxBodyBytes),
	)
	return handler, rateLimiter.Stop
}
