package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"listing_backend/internal/adapters/storage"
	"listing_backend/internal/auth"
	"listing_backend/internal/email"
	"listing_backend/internal/events"
	"listing_backend/internal/exports"
	apphttp "listing_backend/internal/http"
	"listing_backend/internal/http/router"
	"listing_backend/internal/leads"
	"listing_backend/internal/leads/service"
	"listing_backend/internal/notification"
	"listing_backend/internal/property"
	"listing_backend/internal/scheduler"
	"listing_backend/platform/config"
	"listing_backend/platform/db"
	"listing_backend/platform/logger"
	"listing_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if cfg.MigrationsEnabled {
		if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
			return db.RunMigrations(ctx, cfg)
		}); err != nil {
			log.Error("failed to run database migrations", "error", err)
			panic("failed to run database migrations: " + err.Error())
		}
		log.Info("database migrations complete")
	}

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	redisClient := initRedis(ctx, cfg, log)
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	sender, err := email.NewSender(cfg)
	if err != nil {
		log.Error("failed to initialize email sender", "error", err)
		panic("failed to initialize email sender: " + err.Error())
	}
	if email.IsNoop(sender) {
		log.Warn("email delivery not configured - emails not sent")
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	listing, err := property.Load(cfg.GetPropertyFile())
	if err != nil {
		log.Error("failed to load property listing", "error", err)
		panic("failed to load property listing: " + err.Error())
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	propertyModule := property.NewModule(listing, photoResolver(ctx, cfg, log), log)

	// Notification module subscribes to domain events (not HTTP-facing)
	notificationModule := notification.New(sender, cfg, listing, log)
	taskClient, closeTasks := initTaskClient(cfg, log)
	if taskClient != nil {
		defer closeTasks()
		notificationModule.SetEnqueuer(taskClient)
	}
	notificationModule.RegisterHandlers(eventBus)
	// Registered after the closers so in-flight handlers finish first.
	defer eventBus.Wait()

	var guard service.DuplicateGuard
	if redisClient != nil {
		guard = service.NewRedisGuard(redisClient, cfg.GetDuplicateWindow())
	}

	leadsModule := leads.NewModule(pool, guard, eventBus, propertyModule.Service(), val, log)
	authModule := auth.NewModule(cfg, val, log)
	exportsModule := exports.NewModule(leadsModule.Repository(), log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: db.NewPoolAdapter(pool),
		Modules: []apphttp.Module{
			authModule,
			propertyModule,
			leadsModule,
			exportsModule,
		},
	}

	engine := router.New(app)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initRedis connects when REDIS_URL is set; nil disables duplicate detection.
func initRedis(ctx context.Context, cfg *config.Config, log *logger.Logger) *redis.Client {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; duplicate detection and queued notifications disabled")
		return nil
	}

	client, err := scheduler.NewRedisClient(ctx, cfg.GetRedisURL(), cfg.GetRedisTLSInsecure())
	if err != nil {
		log.Error("failed to connect to redis; duplicate detection disabled", "error", err)
		return nil
	}
	return client
}

func initTaskClient(cfg config.SchedulerConfig, log *logger.Logger) (*scheduler.Client, func()) {
	if cfg.GetRedisURL() == "" {
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize task client; notifications sent inline", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

// photoResolver presigns photos from MinIO when configured, else serves them
// from the public base path.
func photoResolver(ctx context.Context, cfg *config.Config, log *logger.Logger) property.PhotoURLResolver {
	if !cfg.IsMinIOEnabled() {
		return property.StaticResolver{BaseURL: cfg.GetPhotoBaseURL()}
	}

	storageSvc, err := storage.NewMinIOService(cfg)
	if err != nil {
		log.Error("failed to initialize storage service", "error", err)
		panic("failed to initialize storage service: " + err.Error())
	}

	bucket := cfg.GetMinioBucketPropertyPhotos()
	if err := withRetry(ctx, log, "ensure property photo bucket", 5, 2*time.Second, func() error {
		return storageSvc.EnsureBucketExists(ctx, bucket)
	}); err != nil {
		log.Error("failed to ensure storage bucket exists", "error", err, "bucket", bucket)
		panic("failed to ensure storage bucket exists: " + err.Error())
	}
	log.Info("storage service initialized", "propertyPhotosBucket", bucket)

	return property.StorageResolver{Storage: storageSvc, Bucket: bucket}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
