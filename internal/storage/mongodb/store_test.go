package mongodb

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinoosan/players/internal/errs"
	"github.com/tinoosan/players/internal/roster"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set; skipping Mongo store tests")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// a throwaway database per run keeps tests isolated
	db := "players_test_" + uuid.NewString()[:8]
	s, err := Open(ctx, uri, db)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.client.Database(db).Drop(context.Background())
		s.Close()
	})
	return s
}

func TestStore_PlayersCRUD(t *testing.T) {
	s := openTestStore(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, s.Ready(ctx))

	_, err := s.Put(ctx, roster.Player{ID: "a1", Name: roster.String("Ann"), Country: roster.String("US"), Rank: json.RawMessage("5")})
	require.NoError(t, err)
	_, err = s.Put(ctx, roster.Player{ID: "b2", Name: roster.String("Bo")})
	require.NoError(t, err)

	// full replace drops country and keeps position
	_, err = s.Put(ctx, roster.Player{ID: "a1", Name: roster.String("Ann"), Rank: json.RawMessage(`"gold"`)})
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a1", list[0].ID)
	assert.Nil(t, list[0].Country)
	assert.Equal(t, `"gold"`, string(list[0].Rank))

	_, err = s.Put(ctx, roster.Player{ID: "c3", Name: json.RawMessage("7"), Country: json.RawMessage("true")})
	require.NoError(t, err)
	got, err := s.Get(ctx, "c3")
	require.NoError(t, err)
	assert.Equal(t, "7", string(got.Name))
	assert.Equal(t, "true", string(got.Country))

	require.NoError(t, s.Delete(ctx, "a1"))
	assert.ErrorIs(t, s.Delete(ctx, "a1"), errs.ErrNotFound)
	_, err = s.Get(ctx, "a1")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
