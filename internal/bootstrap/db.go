package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/vrgreentek/greentek-site/config"
	"github.com/vrgreentek/greentek-site/internal/inquiries/repository"
	"github.com/vrgreentek/greentek-site/internal/storage/postgres"
)

// OpenInquiryStore returns the Postgres repository when the database is
// enabled, otherwise an in-memory one. The returned *sql.DB is nil in the
// latter case and must be closed by the caller otherwise.
func OpenInquiryStore(ctx context.Context, cfg *config.DatabaseConfig, log *zap.Logger) (repository.Repository, *sql.DB, error) {
	if !cfg.Enabled {
		log.Warn("database disabled, inquiries are kept in memory")
		return repository.NewMemoryRepository(), nil, nil
	}

	db, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("db connect: %w", err)
	}

	repo := repository.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db schema: %w", err)
	}

	log.Info("connected to postgres", zap.String("host", cfg.Host), zap.String("db", cfg.Name))
	return repo, db, nil
}
