package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/vrgreentek/greentek-site/internal/inquiries/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS contact_inquiries (
  id          UUID PRIMARY KEY,
  name        TEXT NOT NULL,
  email       TEXT NOT NULL,
  phone       TEXT NOT NULL DEFAULT '',
  company     TEXT NOT NULL DEFAULT '',
  service     TEXT NOT NULL DEFAULT '',
  message     TEXT NOT NULL,
  source      TEXT NOT NULL,
  remote_ip   TEXT NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS contact_inquiries_created_at_idx ON contact_inquiries (created_at);
`

// PostgresRepository stores inquiries in the contact_inquiries table.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new inquiry repository
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the table and index when missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure inquiry schema: %w", err)
	}
	return nil
}

// Create inserts the inquiry and fills CreatedAt from the database clock.
func (r *PostgresRepository) Create(ctx context.Context, inq *domain.Inquiry) error {
	const q = `
INSERT INTO contact_inquiries (id, name, email, phone, company, service, message, source, remote_ip)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING created_at;
`
	err := r.db.QueryRowContext(ctx, q,
		inq.ID, inq.Name, inq.Email, inq.Phone, inq.Company,
		inq.Service, inq.Message, string(inq.Source), inq.RemoteIP,
	).Scan(&inq.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

// Get returns one inquiry by id.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*domain.Inquiry, error) {
	const q = `
SELECT id, name, email, phone, company, service, message, source, remote_ip, created_at
FROM contact_inquiries
WHERE id = $1;
`
	var (
		inq    domain.Inquiry
		source string
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&inq.ID, &inq.Name, &inq.Email, &inq.Phone, &inq.Company,
		&inq.Service, &inq.Message, &source, &inq.RemoteIP, &inq.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}
	inq.Source = domain.Source(source)
	return &inq, nil
}

// ListRecent returns the newest inquiries first.
func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]domain.Inquiry, error) {
	const q = `
SELECT id, name, email, phone, company, service, message, source, remote_ip, created_at
FROM contact_inquiries
ORDER BY created_at DESC
LIMIT $1;
`
	rows, err := r.db.QueryContext(ctx, q, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Inquiry, 0, 16)
	for rows.Next() {
		var (
			inq    domain.Inquiry
			source string
		)
		if err := rows.Scan(
			&inq.ID, &inq.Name, &inq.Email, &inq.Phone, &inq.Company,
			&inq.Service, &inq.Message, &source, &inq.RemoteIP, &inq.CreatedAt,
		); err != nil {
			return nil, err
		}
		inq.Source = domain.Source(source)
		out = append(out, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// PurgeOlderThan deletes inquiries created before cutoff.
func (r *PostgresRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `DELETE FROM contact_inquiries WHERE created_at < $1;`
	result, err := r.db.ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge inquiries: %w", err)
	}
	return result.RowsAffected()
}
