package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/auth"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/catalog"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/config"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/db"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/kafka"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/logger"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/mockstore"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/repository/postgresql"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/server"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/uploader"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	// A failed connection is tolerated: the facade serves the mock store
	// until the process is restarted with a reachable database.
	var database db.DB
	pool, err := db.New(ctx, cfg.DSN())
	if err != nil {
		log.Warn("database unreachable, starting in fallback-only mode", zap.Error(err))
		database = db.Unavailable{Err: err}
	} else {
		database = pool
		defer pool.Close()
	}

	mock := mockstore.New()
	mock.Seed()

	products := catalog.NewProductService(postgresql.NewProductRepo(database), mock, log)
	orders := catalog.NewOrderService(postgresql.NewOrderRepo(database), mock, log)

	sessions := auth.NewSessionManager(cfg.SessionTTL)
	authSvc := auth.NewService(postgresql.NewUserRepo(database), sessions, cfg.AdminEmail, cfg.AdminPassword, log)

	var producer kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewWriterProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	} else {
		producer = kafka.NewConsoleProducer(log)
	}
	audit := server.NewAuditManager(producer, 2, 5, 500*time.Millisecond, log)

	up := uploader.NewHTTPUploader(cfg.UploadEndpoint, cfg.UploadAPIKey, cfg.UploadFolder, log)

	srv := server.New(products, orders, authSvc, up, audit, log)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gctx, cfg.HTTPPort)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}

	log.Info("server gracefully stopped")
}
