package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"sitesense/db"
	"sitesense/db/migrations"
	"sitesense/internal/bidding"
	"sitesense/internal/config"
	"sitesense/internal/handlers"
	"sitesense/internal/logger"
	"sitesense/internal/metrics"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	zl, err := logger.New(cfg.Env, cfg.LogLevel, cfg.ServiceName)
	if err != nil {
		log.Fatalf("Cannot build logger: %v", err)
	}
	defer zl.Sync()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	dbConn, err := db.Connect(connectCtx, cfg.DBDriver, cfg.DSN(), db.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer dbConn.Close()
	zl.Info("database connected", zap.String("driver", cfg.DBDriver))

	if cfg.RunMigrations {
		if err := migrations.Run(ctx, dbConn.DB, cfg.DBDriver, zl); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg, cfg.ServiceName)

	svc := bidding.NewService(db.NewStorage(dbConn), zl, m)
	h := handlers.NewHandler(svc, zl)

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           handlers.NewRouter(h, m, reg, cfg.RequestTimeout),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("starting server", zap.String("addr", cfg.ServerAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}
