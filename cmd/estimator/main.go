package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/balkonpro/estimator/internal/config"
	"github.com/balkonpro/estimator/internal/domain/catalog"
	"github.com/balkonpro/estimator/internal/domain/estimate"
	"github.com/balkonpro/estimator/internal/domain/materials"
	"github.com/balkonpro/estimator/internal/infra/db"
	httpx "github.com/balkonpro/estimator/internal/infra/http"
	"github.com/balkonpro/estimator/internal/infra/logger"
	"github.com/balkonpro/estimator/internal/infra/metrics"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
)

func runMigrations(dsn string, log *slog.Logger) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN, log); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	repo := materials.NewRepo(pool)
	cache := catalog.NewCache(cfg.Catalog.CacheTTL)
	svc := catalog.NewService(repo, cache, log)
	engine := estimate.New(svc, log)
	mx := metrics.New(prometheus.DefaultRegisterer)

	calcHandler := httpx.NewCalcHandler(engine, log, mx)
	matHandler := httpx.NewMaterialsHandler(svc, log)

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, calcHandler, matHandler)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
