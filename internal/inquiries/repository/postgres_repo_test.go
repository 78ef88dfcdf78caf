package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrgreentek/greentek-site/internal/inquiries/domain"
)

var inquiryColumns = []string{
	"id", "name", "email", "phone", "company", "service", "message", "source", "remote_ip", "created_at",
}

func setupPostgresRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewPostgresRepository(db), mock, db
}

func sampleInquiry() *domain.Inquiry {
	return &domain.Inquiry{
		ID:       "5b0c8f8e-4a43-4d0b-9d55-1d1b7b0b2a11",
		Name:     "Ayesha Rahman",
		Email:    "ayesha@example.com",
		Service:  domain.Services[1],
		Message:  "Please quote for an LT panel upgrade.",
		Source:   domain.SourceWebForm,
		RemoteIP: "203.0.113.7",
	}
}

func TestPostgresRepository_EnsureSchema(t *testing.T) {
	repo, mock, db := setupPostgresRepo(t)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS contact_inquiries`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Create(t *testing.T) {
	repo, mock, db := setupPostgresRepo(t)
	defer db.Close()

	t.Run("inserts and reads back created_at", func(t *testing.T) {
		inq := sampleInquiry()
		created := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)

		mock.ExpectQuery(`INSERT INTO contact_inquiries`).
			WithArgs(inq.ID, inq.Name, inq.Email, "", "", inq.Service, inq.Message, "web_form", inq.RemoteIP).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

		require.NoError(t, repo.Create(context.Background(), inq))
		assert.Equal(t, created, inq.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to ErrDuplicate", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO contact_inquiries`).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(context.Background(), sampleInquiry())
		assert.ErrorIs(t, err, domain.ErrDuplicate)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		boom := errors.New("connection reset")
		mock.ExpectQuery(`INSERT INTO contact_inquiries`).WillReturnError(boom)

		err := repo.Create(context.Background(), sampleInquiry())
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failed to create inquiry")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_Get(t *testing.T) {
	repo, mock, db := setupPostgresRepo(t)
	defer db.Close()

	t.Run("found", func(t *testing.T) {
		created := time.Now().UTC().Truncate(time.Second)
		mock.ExpectQuery(`SELECT id, name, email`).
			WithArgs("abc").
			WillReturnRows(sqlmock.NewRows(inquiryColumns).AddRow(
				"abc", "Meera Nair", "meera@example.com", "", "Nair Estates", "", "Fit-out for a retail floor.", "api", "198.51.100.2", created,
			))

		inq, err := repo.Get(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, "Meera Nair", inq.Name)
		assert.Equal(t, domain.SourceAPI, inq.Source)
		assert.Equal(t, created, inq.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, email`).
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_ListRecent(t *testing.T) {
	repo, mock, db := setupPostgresRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, name, email`).
		WithArgs(defaultListLimit).
		WillReturnRows(sqlmock.NewRows(inquiryColumns).
			AddRow("b", "B", "b@example.com", "", "", "", "second message", "web_form", "", now).
			AddRow("a", "A", "a@example.com", "", "", "", "first message!", "web_form", "", now.Add(-time.Hour)))

	items, err := repo.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, domain.SourceWebForm, items[1].Source)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_PurgeOlderThan(t *testing.T) {
	repo, mock, db := setupPostgresRepo(t)
	defer db.Close()

	cutoff := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`DELETE FROM contact_inquiries`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.PurgeOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	require.NoError(t, mock.ExpectationsWereMet())
}
