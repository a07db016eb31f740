// Package cache stores provider responses in sqlite so repeated lookups can
// be served without another provider round trip. Session state itself is
// never persisted; only the upstream payloads are.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS provider_cache (
	key        TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	created_at INTEGER NOT NULL
);
`

// Store is a TTL cache over a sqlite file. Entries past their TTL are
// treated as misses and overwritten on the next put.
type Store struct {
	logger *zap.Logger
	db     *sql.DB
	ttl    time.Duration
}

// Open opens (or creates) the cache database at path. Use ":memory:" for an
// ephemeral cache.
func Open(logger *zap.Logger, path string, ttl time.Duration) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}
	// sqlite allows a single writer; serialize access at the pool level
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	logger.Info("provider cache opened", zap.String("path", path), zap.Duration("ttl", ttl))
	return &Store{logger: logger, db: db, ttl: ttl}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Get unmarshals the cached payload for key into out. The second return
// reports a usable hit; an expired or missing entry is a miss, not an error.
func (s *Store) Get(ctx context.Context, key string, out any) (bool, error) {
	var payload []byte
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, created_at FROM provider_cache WHERE key = ?`, key).
		Scan(&payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache lookup failed: %w", err)
	}

	if time.Since(time.Unix(createdAt, 0)) > s.ttl {
		s.logger.Debug("cache entry expired", zap.String("key", key))
		return false, nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		// A payload written by an older build; drop it and miss
		s.logger.Warn("discarding unreadable cache entry", zap.String("key", key), zap.Error(err))
		_, _ = s.db.ExecContext(ctx, `DELETE FROM provider_cache WHERE key = ?`, key)
		return false, nil
	}
	return true, nil
}

// Put stores value under key, replacing any previous entry.
func (s *Store) Put(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO provider_cache (key, payload, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at`,
		key, payload, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	return nil
}

// Sweep deletes entries older than the TTL and reports how many went.
func (s *Store) Sweep(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.ttl).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM provider_cache WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cache sweep failed: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		s.logger.Info("cache swept", zap.Int64("deleted", n))
	}
	return n, nil
}
