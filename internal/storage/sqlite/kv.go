package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/repairctl/internal/model"
)

var _ model.KVStore = (*KVRepository)(nil)

// KVRepository stores session keys in the session_kv table.
type KVRepository struct {
	db  *Connection
	now func() time.Time
}

func NewKVRepository(db *Connection) *KVRepository {
	return &KVRepository{db: db, now: time.Now}
}

func (r *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM session_kv WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get session key %q: %w", key, err)
	}

	return value, true, nil
}

func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	const query = `
        INSERT INTO session_kv (key, value, updated_at)
        VALUES (?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
    `

	if _, err := r.db.ExecContext(ctx, query, key, value, r.now().UTC()); err != nil {
		return fmt.Errorf("failed to set session key %q: %w", key, err)
	}
	return nil
}

func (r *KVRepository) Remove(ctx context.Context, key string) error {
	const query = `DELETE FROM session_kv WHERE key = ?`

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to remove session key %q: %w", key, err)
	}
	return nil
}
