// Package postgres persists blobs in a single key-value table:
//
//	CREATE TABLE IF NOT EXISTS blobs (
//	    key        TEXT PRIMARY KEY,
//	    data       JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT data FROM blobs WHERE key = $1`

	var data []byte

	err := s.db.QueryRowContext(ctx, query, key).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("loading blob %q: %w", key, err)
	}

	return data, nil
}

func (s *Store) Save(ctx context.Context, key string, data []byte) error {
	query := `
		INSERT INTO blobs (key, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query, key, data)
	if err != nil {
		return fmt.Errorf("saving blob %q: %w", key, err)
	}

	return nil
}
