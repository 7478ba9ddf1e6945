package memory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinoosan/players/internal/errs"
	"github.com/tinoosan/players/internal/roster"
)

func TestStore_PutKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.Seed(
		roster.Player{ID: "a", Name: roster.String("Ann")},
		roster.Player{ID: "b", Name: roster.String("Bo")},
	)
	_, err := s.Put(ctx, roster.Player{ID: "a", Name: roster.String("Ann 2")})
	require.NoError(t, err)
	_, err = s.Put(ctx, roster.Player{ID: "c"})
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, `"Ann 2"`, string(list[0].Name))
}

func TestStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.Seed(roster.Player{ID: "a", Name: roster.String("Ann"), Rank: json.RawMessage("1")})

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	got.Name[1] = 'X'

	again, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, `"Ann"`, string(again.Name))
}

func TestStore_DeleteAndNotFound(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.Seed(roster.Player{ID: "a"}, roster.Player{ID: "b"})

	require.NoError(t, s.Delete(ctx, "a"))
	assert.ErrorIs(t, s.Delete(ctx, "a"), errs.ErrNotFound)
	_, err := s.Get(ctx, "a")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ID)

	s.Reset()
	list, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
