package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vrgreentek/greentek-site/config"
	"github.com/vrgreentek/greentek-site/internal/bootstrap"
	"github.com/vrgreentek/greentek-site/internal/logging"
	"github.com/vrgreentek/greentek-site/internal/projects/catalog"
)

// purger is the slice of the inquiry service the worker needs.
type purger interface {
	Purge(ctx context.Context, retention time.Duration) (int64, error)
}

// env holds what commands reach for outside their flags, so tests can swap it.
type env struct {
	catalog *catalog.Catalog
	// openPurger returns the inquiry store, its default retention and a closer.
	openPurger func(ctx context.Context) (purger, time.Duration, func(), error)
}

func defaultEnv() *env {
	return &env{
		catalog:    catalog.Default(),
		openPurger: openPurger,
	}
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "worker",
		Short:         "Maintenance tasks for the VR Greentek site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCatalogCmd(e), newInquiriesCmd(e))
	return root
}

func openPurger(ctx context.Context) (purger, time.Duration, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, 0, nil, err
	}
	if !cfg.Database.Enabled {
		return nil, 0, nil, fmt.Errorf("DB_ENABLED is not set; nothing to purge")
	}

	logger, err := logging.New(cfg.App.LogLevel, cfg.App.Environment)
	if err != nil {
		return nil, 0, nil, err
	}

	repo, db, err := bootstrap.OpenInquiryStore(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, 0, nil, err
	}

	svc := newInquiryService(repo, logger)
	closer := func() {
		_ = db.Close()
		_ = logger.Sync()
	}
	logger.Debug("inquiry store ready", zap.Duration("retention", cfg.Inquiry.Retention))
	return svc, cfg.Inquiry.Retention, closer, nil
}
