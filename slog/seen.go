package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mylist"
)

// Ensure LoggingSeenStore implements mylist.SeenStore.
var _ mylist.SeenStore = (*LoggingSeenStore)(nil)

// LoggingSeenStore wraps a SeenStore with debug logging.
type LoggingSeenStore struct {
	next   mylist.SeenStore
	logger *slog.Logger
}

// NewLoggingSeenStore creates a new LoggingSeenStore.
func NewLoggingSeenStore(next mylist.SeenStore, logger *slog.Logger) *LoggingSeenStore {
	return &LoggingSeenStore{next: next, logger: logger}
}

// MarkSeen delegates to the wrapped store and logs the operation.
func (s *LoggingSeenStore) MarkSeen(ctx context.Context, keys []string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("mark seen",
			"count", len(keys),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.MarkSeen(ctx, keys)
}

// FindSeen delegates to the wrapped store and logs the operation.
func (s *LoggingSeenStore) FindSeen(ctx context.Context, keys []string) (found map[string]bool, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find seen",
			"count", len(keys),
			"found", len(found),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSeen(ctx, keys)
}

// Ensure LoggingSnapshotService implements mylist.SnapshotService.
var _ mylist.SnapshotService = (*LoggingSnapshotService)(nil)

// LoggingSnapshotService wraps a SnapshotService with debug logging.
type LoggingSnapshotService struct {
	next   mylist.SnapshotService
	logger *slog.Logger
}

// NewLoggingSnapshotService creates a new LoggingSnapshotService.
func NewLoggingSnapshotService(next mylist.SnapshotService, logger *slog.Logger) *LoggingSnapshotService {
	return &LoggingSnapshotService{next: next, logger: logger}
}

// CreateSnapshot delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) CreateSnapshot(ctx context.Context, snapshot *mylist.Snapshot) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create snapshot",
			"source", snapshot.Source,
			"id", snapshot.ID,
			"items", snapshot.ItemCount,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateSnapshot(ctx, snapshot)
}

// FindSnapshots delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) FindSnapshots(ctx context.Context, filter mylist.SnapshotFilter) (snapshots []*mylist.Snapshot, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find snapshots",
			"count", len(snapshots),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSnapshots(ctx, filter)
}
