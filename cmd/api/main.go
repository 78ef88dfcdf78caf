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

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vrgreentek/greentek-site/config"
	httpapi "github.com/vrgreentek/greentek-site/internal/api/http"
	"github.com/vrgreentek/greentek-site/internal/bootstrap"
	"github.com/vrgreentek/greentek-site/internal/content"
	cronjob "github.com/vrgreentek/greentek-site/internal/inquiries/cron"
	inqservice "github.com/vrgreentek/greentek-site/internal/inquiries/service"
	"github.com/vrgreentek/greentek-site/internal/logging"
	projservice "github.com/vrgreentek/greentek-site/internal/projects/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.App.LogLevel, cfg.App.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrap.SetGinMode(cfg.App.Environment)

	repo, db, err := bootstrap.OpenInquiryStore(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	var dbPinger httpapi.Pinger
	if db != nil {
		defer db.Close()
		dbPinger = db
	}

	limiter, rdb, err := bootstrap.OpenLimiter(ctx, &cfg.Redis, &cfg.Inquiry, logger)
	if err != nil {
		return err
	}
	var redisPinger httpapi.Pinger
	if rdb != nil {
		defer rdb.Close()
		redisPinger = httpapi.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}

	projects := projservice.NewProjectService(nil)
	inquiries := inqservice.NewInquiryService(repo, limiter, logger)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.ServiceName,
		Version:     cfg.App.Version,
		BaseURL:     cfg.Site.BaseURL,
		CORSOrigins: cfg.Site.CORSOrigins,
		AdminAPIKey: cfg.Inquiry.AdminAPIKey,
		Projects:    projects,
		Inquiries:   inquiries,
		Site:        content.Default(),
		DB:          dbPinger,
		Redis:       redisPinger,
		Log:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	scheduler := cronjob.NewScheduler(inquiries, cfg.Inquiry.Retention, logger)
	if err := scheduler.Start(cfg.Inquiry.PurgeSchedule); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		scheduler.Stop(shutdownCtx)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
