package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinoosan/players/internal/errs"
	"github.com/tinoosan/players/internal/roster"
)

func TestStore_MissingFileIsEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nested", "players.json"))
	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	require.NoError(t, s.Ready(context.Background()))
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "players.json")
	s := New(path)
	_, err := s.Put(ctx, roster.Player{ID: "a1", Name: roster.String("Ann"), Country: roster.String("US"), Rank: json.RawMessage("5")})
	require.NoError(t, err)
	_, err = s.Put(ctx, roster.Player{ID: "b2", Name: roster.String("Bo")})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a1","name":"Ann","country":"US","rank":5},{"id":"b2","name":"Bo"}]`, string(raw))

	reopened := New(path)
	got, err := reopened.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, `"Ann"`, string(got.Name))
	assert.Equal(t, "5", string(got.Rank))
}

func TestStore_PutReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	s := New(filepath.Join(t.TempDir(), "players.json"))
	for _, id := range []string{"a", "b", "c"} {
		_, err := s.Put(ctx, roster.Player{ID: id})
		require.NoError(t, err)
	}
	_, err := s.Put(ctx, roster.Player{ID: "b", Country: roster.String("FR")})
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "b", list[1].ID)
	assert.Equal(t, `"FR"`, string(list[1].Country))
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := New(filepath.Join(t.TempDir(), "players.json"))
	_, err := s.Put(ctx, roster.Player{ID: "a"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "a"))
	assert.ErrorIs(t, s.Delete(ctx, "a"), errs.ErrNotFound)
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_CorruptFileSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	s := New(path)
	_, err := s.List(context.Background())
	require.Error(t, err)
	assert.Error(t, s.Ready(context.Background()))
}

func TestStore_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "players.json"))
	_, err := s.Put(context.Background(), roster.Player{ID: "a"})
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "players.json", entries[0].Name())
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New(filepath.Join(t.TempDir(), "players.json"))
	_, err := s.Put(ctx, roster.Player{ID: "a"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_DataFileIsWorldReadable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}
	path := filepath.Join(t.TempDir(), "players.json")
	s := New(path)
	_, err := s.Put(context.Background(), roster.Player{ID: "a"})
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}
