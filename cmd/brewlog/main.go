package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/brewlog/brewlog/internal/aggregation"
	"github.com/brewlog/brewlog/internal/core/cache"
	corecfg "github.com/brewlog/brewlog/internal/core/config"
	"github.com/brewlog/brewlog/internal/core/storage"
	"github.com/brewlog/brewlog/internal/core/storage/badger"
	"github.com/brewlog/brewlog/internal/core/storage/postgres"
	"github.com/brewlog/brewlog/internal/ingestion"
	"github.com/brewlog/brewlog/internal/metrics"
	"github.com/brewlog/brewlog/internal/migrations"
	"github.com/brewlog/brewlog/internal/projection"
	"github.com/brewlog/brewlog/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", corecfg.DefaultPath, "Path to configuration file")
	flag.Parse()

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Logging.SlogLevel()}))
	slog.SetDefault(logger)
	slog.Info("Loaded config",
		"database", cfg.Database.Type,
		"bucket_width", cfg.Aggregation.BucketWidth,
		"interval", cfg.Aggregation.Interval,
		"auto_register", cfg.Ingest.AutoRegister,
	)

	if err := run(cfg); err != nil {
		slog.Error("Brewlog stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}

func run(cfg *corecfg.Config) error {
	width, err := cfg.Aggregation.Window()
	if err != nil {
		return err
	}
	interval, err := cfg.Aggregation.IntervalDuration()
	if err != nil {
		return err
	}

	// 3. Initialize Storage
	store, err := openStore(cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	// 4. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// 5. Seen cache for auto-registration
	seen, closeSeen, err := openSeenCache(cfg)
	if err != nil {
		return err
	}
	defer closeSeen()

	// 6. Aggregation
	engine := aggregation.NewEngine(store, aggregation.EngineOptions{
		BucketWidth: width,
		WorkerCount: cfg.Aggregation.WorkerCount,
	}, m)
	scheduler := aggregation.NewScheduler(engine, interval,
		aggregation.WithRunOnStart(cfg.Aggregation.RunOnStart))

	// 7. Ingestion and projection
	ingestionSvc := ingestion.NewService(store, store, seen, m, ingestion.Options{
		AutoRegister: cfg.Ingest.AutoRegister,
	})
	projectionSvc := projection.NewService(store, store, store, projection.Options{
		BucketWidth:  width,
		DefaultLimit: cfg.History.DefaultLimit,
		MaxLimit:     cfg.History.MaxLimit,
	})

	// 8. Server
	srv := server.New(store, server.Options{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Mode:           cfg.Server.Mode,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Gatherer:       registry,
	})
	ingestRoutes := srv.Engine.Group("")
	if cfg.Server.RateLimitRPS > 0 {
		ingestRoutes.Use(server.RateLimit(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))
	}
	ingestionSvc.RegisterRoutes(ingestRoutes)
	projectionSvc.RegisterRoutes(srv.Engine)

	// 9. Start Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Aggregation.Enabled {
		g.Go(func() error {
			return scheduler.Start(gctx)
		})
	} else {
		slog.Info("Aggregation scheduler disabled by config")
	}
	g.Go(func() error {
		return srv.Run(gctx)
	})

	go func() {
		<-ctx.Done()
		slog.Info("Signal received, shutting down...")
	}()

	return g.Wait()
}

func openStore(cfg corecfg.DatabaseConfig) (storage.Store, error) {
	switch cfg.Type {
	case "badger":
		s, err := badger.New(badger.Config{Path: cfg.BadgerPath, InMemory: cfg.BadgerInMemory})
		if err != nil {
			return nil, fmt.Errorf("failed to open badger store: %w", err)
		}
		return s, nil
	case "postgres":
		db, err := postgres.Open(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
		if err != nil {
			return nil, err
		}
		if err := migrations.RunMigrations(db, cfg.AutoMigrate); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		a, err := postgres.NewAdapter(db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return a, nil
	}
	return nil, fmt.Errorf("unsupported database type %q", cfg.Type)
}

func openSeenCache(cfg *corecfg.Config) (cache.SeenCache, func(), error) {
	if cfg.Cache.RedisAddr == "" {
		return cache.NewLRU(cfg.Ingest.SeenCacheSize), func() {}, nil
	}

	ttl, err := cfg.Cache.SeenTTLDuration()
	if err != nil {
		return nil, nil, err
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})
	seen := cache.NewRedis(client, ttl)
	if err := seen.Ping(context.Background()); err != nil {
		// Misses fall back to the store, so an unreachable Redis only costs lookups.
		slog.Warn("[Cache] Redis unreachable at startup", "addr", cfg.Cache.RedisAddr, "error", err)
	}
	slog.Info("[Cache] Using Redis seen cache", "addr", cfg.Cache.RedisAddr, "ttl", ttl)
	return seen, func() { _ = client.Close() }, nil
}
