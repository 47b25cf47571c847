package repository_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbpkg "github.com/BruksfildServices01/barberpro/internal/db"
	"github.com/BruksfildServices01/barberpro/internal/infra/repository"
)

func TestKVGormRepository(t *testing.T) {
	gdb, err := dbpkg.NewDB(filepath.Join(t.TempDir(), "kv.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbpkg.Close(gdb) })

	repo := repository.NewKVGormRepository(gdb)
	ctx := t.Context()

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := repo.Get(ctx, "barberpro_clients")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then overwrite", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "barberpro_clients", []byte(`[]`)))
		require.NoError(t, repo.Set(ctx, "barberpro_clients", []byte(`[{"id":"c1"}]`)))

		got, ok, err := repo.Get(ctx, "barberpro_clients")
		require.NoError(t, err)
		require.True(t, ok)
		assert.JSONEq(t, `[{"id":"c1"}]`, string(got))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "barberpro_clients"))
		_, ok, err := repo.Get(ctx, "barberpro_clients")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, dbpkg.IsPostgresDSN("postgres://u:p@localhost:5432/db"))
	assert.True(t, dbpkg.IsPostgresDSN("host=localhost user=u dbname=db"))
	assert.False(t, dbpkg.IsPostgresDSN("barberpro.db"))
}
