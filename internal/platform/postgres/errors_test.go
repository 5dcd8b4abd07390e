package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvasquezan/tareas-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "nil error",
			err:     nil,
			wantErr: nil,
		},
		{
			name:    "no rows",
			err:     sql.ErrNoRows,
			wantErr: store.ErrNotFound,
		},
		{
			name:    "wrapped no rows",
			err:     fmt.Errorf("scanning row: %w", sql.ErrNoRows),
			wantErr: store.ErrNotFound,
		},
		{
			name:    "unique violation",
			err:     &pgconn.PgError{Code: "23505", ConstraintName: "usuarios_email_key"},
			wantErr: store.ErrDuplicate,
		},
		{
			name:    "foreign key violation",
			err:     &pgconn.PgError{Code: "23503", ConstraintName: "tareas_usuario_id_fkey"},
			wantErr: store.ErrInvalidEntity,
		},
		{
			name:    "not null violation",
			err:     &pgconn.PgError{Code: "23502", ColumnName: "email"},
			wantErr: store.ErrInvalidEntity,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mapped := MapError(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, mapped)
			} else {
				assert.ErrorIs(t, mapped, tt.wantErr)
			}
		})
	}

	t.Run("unrelated errors pass through unchanged", func(t *testing.T) {
		t.Parallel()
		err := errors.New("connection refused")
		assert.Equal(t, err, MapError(err))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(
		fmt.Errorf("inserting user: %w", &pgconn.PgError{Code: "23505"}),
	))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}

// fakeResult implements sql.Result for CheckRowsAffected tests.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	t.Run("rows affected", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, store.ErrTaskNotFound))
	})

	t.Run("zero rows means not found", func(t *testing.T) {
		t.Parallel()
		err := CheckRowsAffected(fakeResult{rows: 0}, store.ErrTaskNotFound)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("rows affected failure", func(t *testing.T) {
		t.Parallel()
		err := CheckRowsAffected(fakeResult{err: errors.New("driver error")}, store.ErrTaskNotFound)
		require.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("nil result", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, CheckRowsAffected(nil, store.ErrTaskNotFound))
	})
}
