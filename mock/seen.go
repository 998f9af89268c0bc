package mock

import (
	"context"

	"github.com/fwojciec/mylist"
)

// Compile-time interface verification.
var (
	_ mylist.SeenStore       = (*SeenStore)(nil)
	_ mylist.SnapshotService = (*SnapshotService)(nil)
)

// SeenStore is a mock implementation of mylist.SeenStore.
type SeenStore struct {
	MarkSeenFn func(ctx context.Context, keys []string) error
	FindSeenFn func(ctx context.Context, keys []string) (map[string]bool, error)
}

func (s *SeenStore) MarkSeen(ctx context.Context, keys []string) error {
	return s.MarkSeenFn(ctx, keys)
}

func (s *SeenStore) FindSeen(ctx context.Context, keys []string) (map[string]bool, error) {
	return s.FindSeenFn(ctx, keys)
}

// SnapshotService is a mock implementation of mylist.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn func(ctx context.Context, snapshot *mylist.Snapshot) error
	FindSnapshotsFn  func(ctx context.Context, filter mylist.SnapshotFilter) ([]*mylist.Snapshot, error)
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *mylist.Snapshot) error {
	return s.CreateSnapshotFn(ctx, snapshot)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter mylist.SnapshotFilter) ([]*mylist.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}
