package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vrgreentek/greentek-site/internal/inquiries/domain"
)

// MemoryRepository keeps inquiries in process memory. It backs local
// development when no database is configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Inquiry
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make(map[string]domain.Inquiry),
		now:   time.Now,
	}
}

func (r *MemoryRepository) Create(_ context.Context, inq *domain.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[inq.ID]; exists {
		return domain.ErrDuplicate
	}
	if inq.CreatedAt.IsZero() {
		inq.CreatedAt = r.now().UTC()
	}
	r.items[inq.ID] = *inq
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*domain.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inq, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &inq, nil
}

func (r *MemoryRepository) ListRecent(_ context.Context, limit int) ([]domain.Inquiry, error) {
	r.mu.RLock()
	out := make([]domain.Inquiry, 0, len(r.items))
	for _, inq := range r.items {
		out = append(out, inq)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit = clampLimit(limit); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepository) PurgeOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, inq := range r.items {
		if inq.CreatedAt.Before(cutoff) {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}
