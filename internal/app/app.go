package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/utafrali/CampgroundsGo/pkg/database"
	"github.com/utafrali/CampgroundsGo/pkg/health"
	pkgkafka "github.com/utafrali/CampgroundsGo/pkg/kafka"
	"github.com/utafrali/CampgroundsGo/pkg/tracing"

	"github.com/utafrali/CampgroundsGo/internal/config"
	"github.com/utafrali/CampgroundsGo/internal/event"
	"github.com/utafrali/CampgroundsGo/internal/handler/web"
	mongorepo "github.com/utafrali/CampgroundsGo/internal/repository/mongo"
	"github.com/utafrali/CampgroundsGo/internal/service"
	"github.com/utafrali/CampgroundsGo/internal/view"
)

// ServiceName identifies this service in logs, traces, and metrics.
const ServiceName = "campgrounds"

// App wires together all dependencies and runs the campgrounds service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	mongoClient     *mongo.Client
	producer        *pkgkafka.Producer
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
	defer cancel()

	// Tracing first so database and request spans have a provider.
	tracingShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    ServiceName,
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SampleRate:     cfg.TracingSample,
		Enabled:        cfg.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// MongoDB connection.
	mongoClient, err := database.Connect(ctx, database.MongoConfig{
		URI:                cfg.MongoURI,
		Database:           cfg.MongoDatabase,
		ConnectTimeout:     cfg.MongoTimeout,
		SlowQueryThreshold: cfg.SlowQueryThreshold,
		AppName:            ServiceName,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	logger.Info("connected to MongoDB",
		slog.String("database", cfg.MongoDatabase),
	)

	db := mongoClient.Database(cfg.MongoDatabase)

	// Kafka producer.
	producer := pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Build the dependency graph.
	campgroundRepo := mongorepo.NewCampgroundRepository(db)
	reviewRepo := mongorepo.NewReviewRepository(db)
	eventProducer := event.NewProducer(producer, logger)
	campgroundService := service.NewCampgroundService(campgroundRepo, reviewRepo, eventProducer, logger)
	reviewService := service.NewReviewService(campgroundRepo, reviewRepo, eventProducer, logger)

	views, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("init views: %w", err)
	}

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("mongo", func(ctx context.Context) error {
		return mongoClient.Ping(ctx, readpref.Primary())
	})
	healthHandler.Register("kafka", func(ctx context.Context) error {
		return producer.Ping(ctx)
	})

	router := web.NewRouter(web.RouterConfig{
		ServiceName: ServiceName,
		Logger:      logger,
		Views:       views,
		Campgrounds: campgroundService,
		Reviews:     reviewService,
		Health:      healthHandler,
	})

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		mongoClient:     mongoClient,
		producer:        producer,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
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

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	if err := a.mongoClient.Disconnect(shutdownCtx); err != nil {
		a.logger.Error("mongo disconnect error", slog.String("error", err.Error()))
	}

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
