package prefs

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astroai/astroai-cli/internal/client/storage"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestGet_MissingKeyReturnsEmpty(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	v, err := repo.Get(context.Background(), KeyToken)
	require.NoError(t, err)
	require.Equal(t, "", v)
}

func TestSet_InsertsAndUpserts(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, KeyTone, "humorous"))
	v, err := repo.Get(ctx, KeyTone)
	require.NoError(t, err)
	require.Equal(t, "humorous", v)

	require.NoError(t, repo.Set(ctx, KeyTone, "soul"))
	v, err = repo.Get(ctx, KeyTone)
	require.NoError(t, err)
	require.Equal(t, "soul", v)
}

func TestDelete_RemovesOnlyGivenKey(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, KeyToken, "tok-1"))
	require.NoError(t, repo.Set(ctx, KeyTone, "soul"))

	require.NoError(t, repo.Delete(ctx, KeyToken))

	v, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, "", v)

	v, err = repo.Get(ctx, KeyTone)
	require.NoError(t, err)
	require.Equal(t, "soul", v)
}

func TestClear_RemovesEverything(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	require.NoError(t, repo.Set(ctx, KeyToken, "tok-1"))
	require.NoError(t, repo.Set(ctx, KeyTone, "soul"))
	require.NoError(t, repo.Clear(ctx))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM preferences`).Scan(&n))
	require.Equal(t, 0, n)
}

func TestValuesSurviveReopen(t *testing.T) {
	// A shared-cache in-memory DB lives as long as one connection is open;
	// a second handle on the same DSN sees the same data, which is how the
	// tests simulate a process restart.
	ctx := context.Background()
	dsn := "file:prefs_reopen?mode=memory&cache=shared"

	db1, err := storage.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db1.Close() })

	require.NoError(t, NewSQLiteRepository(db1).Set(ctx, KeyTone, "humorous"))

	db2, err := storage.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	v, err := NewSQLiteRepository(db2).Get(ctx, KeyTone)
	require.NoError(t, err)
	require.Equal(t, "humorous", v)
}
