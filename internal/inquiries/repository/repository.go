package repository

import (
	"context"
	"time"

	"github.com/vrgreentek/greentek-site/internal/inquiries/domain"
)

// Repository persists contact inquiries.
type Repository interface {
	Create(ctx context.Context, inq *domain.Inquiry) error
	Get(ctx context.Context, id string) (*domain.Inquiry, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Inquiry, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

const defaultListLimit = 50

func clampLimit(limit int) int {
	if limit <= 0 || limit > 500 {
		return defaultListLimit
	}
	return limit
}
