package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/mylist"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ mylist.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements mylist.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// CreateSnapshot creates a new snapshot.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *mylist.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	snapshot.ID = uuid.New().String()
	snapshot.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, source, locale, content_hash, item_count, seen_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, snapshot.ID, snapshot.Source, string(snapshot.Locale), snapshot.ContentHash,
		snapshot.ItemCount, snapshot.SeenCount, snapshot.CreatedAt.Format(time.RFC3339))

	return err
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter mylist.SnapshotFilter) ([]*mylist.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, locale, content_hash, item_count, seen_count, created_at FROM snapshots WHERE 1=1")

	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*mylist.Snapshot
	for rows.Next() {
		var snapshot mylist.Snapshot
		var locale, createdAt string

		if err := rows.Scan(&snapshot.ID, &snapshot.Source, &locale, &snapshot.ContentHash,
			&snapshot.ItemCount, &snapshot.SeenCount, &createdAt); err != nil {
			return nil, err
		}
		snapshot.Locale = mylist.Locale(locale)

		snapshot.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		snapshots = append(snapshots, &snapshot)
	}

	return snapshots, rows.Err()
}
