package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/mylist"
	"github.com/fwojciec/mylist/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotService_CreateSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("creates snapshot with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(setupTestDB(t))
		snapshot := &mylist.Snapshot{
			Source:      "/tmp/mylist.html",
			Locale:      mylist.LocaleSpanish,
			ContentHash: sqlite.HashContent("<html></html>"),
			ItemCount:   3,
			SeenCount:   1,
		}

		err := svc.CreateSnapshot(context.Background(), snapshot)

		require.NoError(t, err)
		assert.NotEmpty(t, snapshot.ID, "ID should be generated")
		assert.False(t, snapshot.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("returns error for invalid snapshot", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSnapshotService(setupTestDB(t))

		err := svc.CreateSnapshot(context.Background(), &mylist.Snapshot{})

		require.Error(t, err)
		assert.Equal(t, mylist.EINVALID, mylist.ErrorCode(err))
	})
}

func TestSnapshotService_FindSnapshots(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) *sqlite.SnapshotService {
		t.Helper()
		svc := sqlite.NewSnapshotService(setupTestDB(t))
		ctx := context.Background()
		for _, src := range []string{"a.html", "b.html", "a.html"} {
			require.NoError(t, svc.CreateSnapshot(ctx, &mylist.Snapshot{Source: src, Locale: mylist.LocaleEnglish, ItemCount: 2}))
		}
		return svc
	}

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		svc := setup(t)

		got, err := svc.FindSnapshots(context.Background(), mylist.SnapshotFilter{})

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "a.html", got[0].Source)
		assert.Equal(t, "b.html", got[1].Source)
		assert.Equal(t, "a.html", got[2].Source)
		assert.Equal(t, mylist.LocaleEnglish, got[0].Locale)
		assert.Equal(t, 2, got[0].ItemCount)
	})

	t.Run("filters by source", func(t *testing.T) {
		t.Parallel()

		svc := setup(t)
		src := "b.html"

		got, err := svc.FindSnapshots(context.Background(), mylist.SnapshotFilter{Source: &src})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "b.html", got[0].Source)
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		svc := setup(t)
		ctx := context.Background()

		page, err := svc.FindSnapshots(ctx, mylist.SnapshotFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page, 2)

		rest, err := svc.FindSnapshots(ctx, mylist.SnapshotFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Equal(t, "a.html", rest[0].Source)
	})
}
