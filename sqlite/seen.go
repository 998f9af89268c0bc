package sqlite

import (
	"context"
	"time"

	"github.com/fwojciec/mylist"
)

// Compile-time interface verification.
var _ mylist.SeenStore = (*SeenStore)(nil)

// maxBatch bounds the bind parameters of a single statement.
const maxBatch = 500

// SeenStore implements mylist.SeenStore using SQLite.
type SeenStore struct {
	db *DB
}

// NewSeenStore creates a new SeenStore.
func NewSeenStore(db *DB) *SeenStore {
	return &SeenStore{db: db}
}

// MarkSeen records keys as seen. Keys already recorded keep their
// original timestamp.
func (s *SeenStore) MarkSeen(ctx context.Context, keys []string) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO seen (key, marked_at) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, key := range keys {
		if key == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, key, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindSeen returns the subset of keys that have been recorded.
func (s *SeenStore) FindSeen(ctx context.Context, keys []string) (map[string]bool, error) {
	found := make(map[string]bool)

	for start := 0; start < len(keys); start += maxBatch {
		batch := keys[start:min(start+maxBatch, len(keys))]

		args := make([]any, len(batch))
		for i, key := range batch {
			args[i] = key
		}

		rows, err := s.db.QueryContext(ctx,
			"SELECT key FROM seen WHERE key IN ("+placeholders(len(batch))+")", args...)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var key string
			if err := rows.Scan(&key); err != nil {
				rows.Close()
				return nil, err
			}
			found[key] = true
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, err
		}
	}

	return found, nil
}
