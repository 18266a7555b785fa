package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/restodash/restodash/config"
	cachemem "github.com/restodash/restodash/internal/cache/memory"
	cacheredis "github.com/restodash/restodash/internal/cache/redis"
	"github.com/restodash/restodash/internal/kafka"
	"github.com/restodash/restodash/internal/ports"
	"github.com/restodash/restodash/internal/repo/postgres"
	rest "github.com/restodash/restodash/internal/transport/http"
	"github.com/restodash/restodash/internal/usecase"
	"github.com/restodash/restodash/pkg/logger"
	"github.com/restodash/restodash/pkg/metrics"
	"github.com/restodash/restodash/pkg/telemetry"
	"github.com/restodash/restodash/pkg/validate"
)

// App is the assembled application and its external surfaces.
type App struct {
	Logger          ports.Logger
	HTTPServer      *http.Server
	MetricsServer   *http.Server
	KafkaConsumer   ports.MessageConsumer
	gracefulTimeout time.Duration
}

// Cleanup releases resources in reverse construction order.
type Cleanup func()

// applyGinMode sets the Gin mode from a config string; unknown values fall
// back to debug with a warning.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// buildSnapshotCache picks the cache backend. A Redis that cannot be reached
// at startup degrades to the in-process cache instead of failing the boot:
// dashboards stay correct, only cross-instance sharing is lost.
func buildSnapshotCache(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.DashboardCache, func()) {
	if strings.EqualFold(cfg.Cache.Backend, "memory") {
		log.Infof(ctx, "snapshot cache backend=memory capacity=%d", cfg.Cache.MemoryCapacity)
		return cachemem.NewSnapshotCache(cfg.Cache.MemoryCapacity), func() {}
	}

	client, err := cacheredis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Warnf(ctx, "redis unavailable (%v), falling back to in-memory snapshot cache", err)
		return cachemem.NewSnapshotCache(cfg.Cache.MemoryCapacity), func() {}
	}
	log.Infof(ctx, "snapshot cache backend=redis addr=%s db=%d", cfg.Redis.Addr, cfg.Redis.DB)
	return cacheredis.NewSnapshotCache(client), func() { _ = client.Close() }
}

// Bootstrap assembles all dependencies and returns the application, a cleanup
// function and an error.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	metrics.MustRegister()

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// OTEL tracing when enabled; no-op shutdown otherwise.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	snapshotCache, closeCache := buildSnapshotCache(ctx, cfg, logg)

	restaurantRepo := postgres.NewRestaurantRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	orderValidator := validate.NewOrderEventValidator()

	dashboardService := usecase.NewDashboardService(
		restaurantRepo, orderRepo, snapshotCache, logg,
		cfg.Cache.TTL, cfg.Cache.InvalidateWindows,
	)
	orderService := usecase.NewOrderService(
		restaurantRepo, customerRepo, orderRepo,
		dashboardService, orderValidator, logg,
	)

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	httpHandler := rest.NewHandler(orderService, dashboardService, logg)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// A second listener for Prometheus only, so scrapes bypass the public
	// middleware chain.
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           metricsMux,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	kafkaCfg := kafka.ConsumerConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.GroupID,
		Topic:          cfg.Kafka.Topic,
		StartOffset:    cfg.Kafka.StartOffset,
		ProcessTimeout: cfg.Kafka.ProcessTimeout,
		RetryInitial:   cfg.Kafka.RetryInitial,
		RetryMax:       cfg.Kafka.RetryMax,
	}
	consumer := kafka.NewConsumer(&kafkaCfg, orderService, logg)

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   metricsSrv,
		KafkaConsumer:   consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := consumer.Close(); err != nil {
			logg.Warnf(ctx, "kafka consumer close error: %v", err)
		}
		closeCache()
		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run starts the HTTP servers and the consumer, waits for cancellation or a
// background error and stops everything gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	go func() {
		a.Logger.Infof(ctx, "kafka consumer starting")
		if err := a.KafkaConsumer.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if a.MetricsServer != nil {
		go func() {
			a.Logger.Infof(ctx, "metrics server starting (addr=%s)", a.MetricsServer.Addr)
			if err := a.MetricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}
	if a.MetricsServer != nil {
		if err := a.MetricsServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "metrics server shutdown failed: %v", err)
		}
	}

	if err := a.KafkaConsumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
