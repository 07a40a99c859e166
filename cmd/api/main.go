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

	"leadintake/internal/email"
	"leadintake/internal/http/router"
	"leadintake/internal/leads"
	"leadintake/internal/notify"
	"leadintake/internal/storage"
	"leadintake/migrations"
	"leadintake/platform/config"
	"leadintake/platform/db"
	"leadintake/platform/events"
	"leadintake/platform/logger"
	"leadintake/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "app", cfg.AppName, "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, migrations.FS)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

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

	store := initStorage(ctx, cfg, log)
	sender := email.NewSender(cfg, log)
	eventBus := events.NewInMemoryBus(log)
	val := validator.New()

	queue, closeQueue := initQueue(cfg, log)
	if closeQueue != nil {
		defer closeQueue()
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	notifyModule := notify.New(sender, queue, cfg.ReviewerEmail, log)
	notifyModule.RegisterHandlers(eventBus)

	leadsModule := leads.NewModule(pool, store, eventBus, val, cfg.MaxUploadSize)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	engine := router.New(cfg, log, db.NewPoolAdapter(pool), leadsModule)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		panic("server error: " + err.Error())
	}
}

// initStorage picks MinIO when configured, local disk otherwise.
func initStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) storage.Storage {
	if !cfg.IsMinIOEnabled() {
		log.Info("using local disk storage", "root", cfg.UploadRoot)
		return storage.NewLocalDisk(cfg.UploadRoot)
	}

	store, err := storage.NewMinIOStore(cfg)
	if err != nil {
		log.Error("failed to initialize storage service", "error", err)
		panic("failed to initialize storage service: " + err.Error())
	}
	if err := withRetry(ctx, log, "ensure resumes bucket", 5, 2*time.Second, func() error {
		return store.EnsureBucketExists(ctx)
	}); err != nil {
		log.Error("failed to ensure storage bucket exists", "error", err, "bucket", cfg.MinIOBucketResumes)
		panic("failed to ensure storage bucket exists: " + err.Error())
	}
	log.Info("storage service initialized", "resumesBucket", cfg.MinIOBucketResumes)
	return store
}

// initQueue returns a nil Enqueuer when Redis is not configured; the notify
// module then sends directly from the event handler.
func initQueue(cfg *config.Config, log *logger.Logger) (notify.Enqueuer, func()) {
	if cfg.RedisURL == "" {
		log.Warn("REDIS_URL not configured; notifications will be sent in-process")
		return nil, nil
	}

	queueClient, err := notify.NewQueueClient(cfg)
	if err != nil {
		log.Error("failed to initialize notification queue client", "error", err)
		return nil, nil
	}

	log.Info("notification queue initialized", "queue", cfg.QueueName)
	return queueClient, func() {
		_ = queueClient.Close()
	}
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
