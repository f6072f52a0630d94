package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/arkline/orgsearch/internal/config"
	dbRedis "github.com/arkline/orgsearch/internal/db/redis"
	"github.com/arkline/orgsearch/internal/domain"
	logpkg "github.com/arkline/orgsearch/internal/logger"
	"github.com/arkline/orgsearch/internal/metrics"
	companyrepo "github.com/arkline/orgsearch/internal/repository/company"
	personrepo "github.com/arkline/orgsearch/internal/repository/person"
	reportrepo "github.com/arkline/orgsearch/internal/repository/report"
	"github.com/arkline/orgsearch/internal/repository/schema"
	"github.com/arkline/orgsearch/internal/transport/httpapi"
	federationuc "github.com/arkline/orgsearch/internal/usecase/federation"
	healthuc "github.com/arkline/orgsearch/internal/usecase/health"
	nesteduc "github.com/arkline/orgsearch/internal/usecase/nested"
	seeduc "github.com/arkline/orgsearch/internal/usecase/seed"
	"github.com/arkline/orgsearch/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting orgsearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("mode", string(cfg.Mode())),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create search backend store", zap.Error(err))
	}
	defer store.Close()

	// Cluster-health check: traffic is never accepted against a dead backend.
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Search backend not ready", zap.Error(err))
	}
	logger.Info("Connected to search backend")

	// A missing schema aborts startup; it must not degrade silently.
	registrar := schema.New(store, logger)
	if err := registrar.Ensure(ctx, cfg.Mode()); err != nil {
		logger.Fatal("Schema registration failed", zap.Error(err))
	}

	stageTimeout := time.Duration(cfg.Search.StageTimeoutSec) * time.Second

	var (
		federationSvc *federationuc.Service
		nestedSvc     *nesteduc.Service
		seedSvc       *seeduc.Service
	)
	switch cfg.Mode() {
	case domain.ModeFederation:
		companies := companyrepo.New(store)
		reports := reportrepo.New(store).WithScanPageSize(cfg.Search.ScanPageSize)
		federationSvc = federationuc.New(companies, reports).WithStageTimeout(stageTimeout)
		seedSvc = seeduc.New(companies, reports, nil, logger)
	case domain.ModeNested:
		people := personrepo.New(store).WithResultCap(cfg.Search.NestedResultCap)
		nestedSvc = nesteduc.New(people).WithStageTimeout(stageTimeout)
		seedSvc = seeduc.New(nil, nil, people, logger)
	}

	healthSvc := healthuc.New(store)

	server := httpapi.NewServer(cfg.Mode(), federationSvc, nestedSvc, seedSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(metrics.Middleware())
	r.Handle("/metrics", promhttp.Handler())
	server.Mount(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]any{
						"success": false,
						"error":   "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
