package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MaiadaMuhammed/AYN/pkg/health"
	"github.com/MaiadaMuhammed/AYN/pkg/httpclient"
	pkgkafka "github.com/MaiadaMuhammed/AYN/pkg/kafka"
	"github.com/MaiadaMuhammed/AYN/pkg/tracing"

	"github.com/MaiadaMuhammed/AYN/internal/catalog"
	"github.com/MaiadaMuhammed/AYN/internal/checkout"
	"github.com/MaiadaMuhammed/AYN/internal/config"
	"github.com/MaiadaMuhammed/AYN/internal/event"
	handler "github.com/MaiadaMuhammed/AYN/internal/handler/http"
	"github.com/MaiadaMuhammed/AYN/internal/session"
	"github.com/MaiadaMuhammed/AYN/internal/state"
	"github.com/MaiadaMuhammed/AYN/internal/store"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	redisClient    *redis.Client
	producer       *pkgkafka.Producer
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize OpenTelemetry tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "storefront",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SampleRate:     1.0,
		Enabled:        cfg.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	// Connect to Redis, the persistent key-value store behind the state
	// manager.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis", slog.String("addr", cfg.RedisAddr))
	kv := store.NewRedis(redisClient)

	// Kafka producer is optional: without brokers the state manager runs
	// with no publisher and every mutation stays local.
	var producer *pkgkafka.Producer
	var publisher state.Publisher
	if cfg.KafkaEnabled() {
		producer = pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
		publisher = event.NewProducer(producer, logger)
		logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))
	} else {
		logger.Info("kafka disabled, state events will not be published")
	}

	// Catalog accessor over the product feed, behind a retrying client and
	// a circuit breaker.
	feedClient := httpclient.NewCircuitBreakerClient(
		httpclient.New(httpclient.DefaultConfig()),
		httpclient.DefaultCircuitBreakerConfig("catalog-feed"),
		logger,
	)
	cat := catalog.New(feedClient, cfg.CatalogFeedURL, logger)
	if err := cat.Load(ctx); err != nil {
		// The feed may come up after us. Readiness reports the gap until a
		// refresh succeeds.
		logger.Warn("initial catalog load failed", slog.String("error", err.Error()))
	}

	// Build the dependency graph.
	stateManager := state.New(kv, publisher, logger)
	sessions := session.NewRegistry(stateManager, cfg.Environment, logger)
	checkoutService := checkout.NewService(stateManager, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("redis", kv.Ping)
	healthHandler.Register("catalog", cat.Ready)
	if producer != nil {
		healthHandler.Register("kafka", producer.Ping)
	}

	// HTTP router.
	router := handler.NewRouter(handler.RouterDeps{
		State:          stateManager,
		Catalog:        cat,
		Checkout:       checkoutService,
		Sessions:       sessions,
		KV:             kv,
		Health:         healthHandler,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		PprofCIDRs:     cfg.PprofAllowedCIDRs,
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		redisClient:    redisClient,
		producer:       producer,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components in the correct order:
// 1. HTTP server (drain in-flight requests)
// 2. Tracer (flush pending spans from drained requests)
// 3. Kafka producer
// 4. Redis client
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if a.tracerShutdown != nil {
		tracerCtx, tracerCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer tracerCancel()
		if err := a.tracerShutdown(tracerCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if err := a.redisClient.Close(); err != nil {
		a.logger.Error("redis client close error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
