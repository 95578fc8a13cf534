package sqlite

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*KVRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewKVRepository(&Connection{DB: db})
	repo.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	return repo, mock
}

func TestKVRepository_Get(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT value FROM session_kv WHERE key = ?`)

	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantValue string
		wantFound bool
		wantErr   bool
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("token").
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("abc"))
			},
			wantValue: "abc",
			wantFound: true,
		},
		{
			name: "missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("token").
					WillReturnRows(sqlmock.NewRows([]string{"value"}))
			},
		},
		{
			name: "database error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("token").WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setup(mock)

			value, found, err := repo.Get(context.Background(), "token")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to get session key")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantFound, found)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestKVRepository_Set(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO session_kv (key, value, updated_at)`)).
		WithArgs("user", `{"id":1}`, driver.Value(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Set(context.Background(), "user", `{"id":1}`))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Set_Error(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO session_kv`)).
		WillReturnError(errors.New("readonly database"))

	err := repo.Set(context.Background(), "token", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set session key")
}

func TestKVRepository_Remove(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM session_kv WHERE key = ?`)).
		WithArgs("token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Remove(context.Background(), "token"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
