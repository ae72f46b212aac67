package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"channel_syncer/internal/config"
	"channel_syncer/internal/publisher"
	"channel_syncer/internal/scheduler"
	"channel_syncer/internal/service"
	"channel_syncer/internal/source/youtube"
	"channel_syncer/internal/storage/bolt"
	"channel_syncer/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	once := flag.Bool("once", false, "run a single pass and exit")
	targets := flag.String("targets", "", "comma-separated targets for -once (channel:<id>, playlist:<id> or a bare channel id)")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if err := run(ctx, cfg, logger, *once, splitTargets(*targets)); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("syncer stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, once bool, targets []string) error {
	repo, txManager, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	var events service.EventPublisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	catalog, err := youtube.New(ctx, cfg.YouTube, logger)
	if err != nil {
		return fmt.Errorf("create catalog client: %w", err)
	}

	if cfg.Metrics.Addr != "" {
		srv := startMetricsServer(cfg.Metrics.Addr, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	syncService := service.NewSyncService(catalog, repo, txManager, events, logger, cfg.Sync)

	if once {
		if len(targets) == 0 {
			targets = cfg.Sync.Targets
		}
		passCtx, cancel := context.WithTimeout(ctx, cfg.Sync.Timeout)
		defer cancel()

		stats, err := syncService.SyncMany(passCtx, targets)
		if stats != nil {
			logger.Info("pass finished",
				"targets", stats.Targets,
				"succeeded", stats.Succeeded,
				"new", stats.NewVideos,
			)
		}
		return err
	}

	logger.Info("starting channel syncer",
		"storage", cfg.Storage.Driver,
		"targets", len(cfg.Sync.Targets),
		"level", cfg.Sync.DepthLevel(),
		"interval", cfg.Sync.Interval,
	)

	sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, cfg.Sync.Timeout, logger)
	return sched.Start(ctx)
}

func openStore(cfg *config.Config, logger *slog.Logger) (service.SyncRepository, service.TransactionManager, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverBolt:
		store, err := bolt.Open(cfg.Storage.BoltPath)
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Info("opened bolt store", "path", cfg.Storage.BoltPath)
		return store, bolt.NewTransactionManager(store), func() { _ = store.Close() }, nil
	default:
		db, err := sqlx.Connect("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		logger.Info("connected to database", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)
		return postgres.NewRepository(db), postgres.NewTransactionManager(db), func() { _ = db.Close() }, nil
	}
}

func startMetricsServer(addr string, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", addr)

	return srv
}

func splitTargets(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
