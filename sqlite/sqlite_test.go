package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mylist/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		var seenCount int
		err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM seen").Scan(&seenCount)
		require.NoError(t, err)

		var snapshotCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM snapshots").Scan(&snapshotCount)
		require.NoError(t, err)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, db.Open())
		defer db.Close()

		var journalMode string
		err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})

	t.Run("reopening keeps existing data", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "test.db")
		ctx := context.Background()

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		require.NoError(t, sqlite.NewSeenStore(db).MarkSeen(ctx, []string{"80192098"}))
		require.NoError(t, db.Close())

		db = sqlite.NewDB(path)
		require.NoError(t, db.Open())
		defer db.Close()

		found, err := sqlite.NewSeenStore(db).FindSeen(ctx, []string{"80192098"})
		require.NoError(t, err)
		assert.True(t, found["80192098"])
	})
}

func TestHashContent(t *testing.T) {
	t.Parallel()

	a := sqlite.HashContent("<html></html>")

	assert.Len(t, a, 16)
	assert.Equal(t, a, sqlite.HashContent("<html></html>"))
	assert.NotEqual(t, a, sqlite.HashContent("<html> </html>"))
}
