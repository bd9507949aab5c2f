package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type sqliteBackend struct {
	db *sql.DB
}

// NewSQLite wraps a migrated database handle. The caller keeps ownership of
// db; Close on the returned store is a no-op.
func NewSQLite(db *sql.DB) *KVStore {
	return &KVStore{kv: &sqliteBackend{db: db}}
}

func (b *sqliteBackend) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := b.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select %q: %w", key, err)
	}
	return value, true, nil
}

func (b *sqliteBackend) set(ctx context.Context, key, value string) error {
	_, err := b.db.ExecContext(ctx, `
INSERT INTO kv_store(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("upsert %q: %w", key, err)
	}
	return nil
}

func (b *sqliteBackend) del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, 0, len(keys))
	for _, k := range keys {
		args = append(args, k)
	}
	if _, err := b.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key IN (`+placeholders+`)`, args...); err != nil {
		return fmt.Errorf("delete keys: %w", err)
	}
	return nil
}

func (b *sqliteBackend) close() error {
	return nil
}
