package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MarkMiraclee/vvclient/internal/models"
	"github.com/MarkMiraclee/vvclient/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStorage(t *testing.T) (*storage.FileStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	st, err := storage.NewFileStorage(path)
	require.NoError(t, err)
	return st, path
}

func TestStore_LoadsPersistedToken(t *testing.T) {
	ctx := context.Background()
	st, _ := newFileStorage(t)
	require.NoError(t, st.Set(ctx, storage.TokenKey, "persisted"))

	s, err := New(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, "persisted", s.Token())
	assert.False(t, s.LoggedIn())
}

func TestStore_TokenAndProfileLifecycle(t *testing.T) {
	ctx := context.Background()
	st, path := newFileStorage(t)

	s, err := New(ctx, st)
	require.NoError(t, err)
	assert.Empty(t, s.Token())

	require.NoError(t, s.SetToken(ctx, "tok"))
	reopened, err := storage.NewFileStorage(path)
	require.NoError(t, err)
	v, err := reopened.Get(ctx, storage.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok", v)

	assert.True(t, s.SetCurrentUser("tok", models.Profile{ID: "u1", UnreadMessages: 2}))
	p, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "u1", p.ID)
	assert.True(t, s.LoggedIn())

	require.NoError(t, s.Clear(ctx))
	assert.Empty(t, s.Token())
	assert.False(t, s.LoggedIn())
	_, err = st.Get(ctx, storage.TokenKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_StaleProfileIsDiscarded(t *testing.T) {
	ctx := context.Background()
	st, _ := newFileStorage(t)
	s, err := New(ctx, st)
	require.NoError(t, err)

	assert.False(t, s.SetCurrentUser("", models.Profile{ID: "u1"}))

	require.NoError(t, s.SetToken(ctx, "new"))
	assert.False(t, s.SetCurrentUser("old", models.Profile{ID: "u1"}))
	assert.False(t, s.LoggedIn())
}

func TestStore_SetTokenDropsProfile(t *testing.T) {
	ctx := context.Background()
	st, _ := newFileStorage(t)
	s, err := New(ctx, st)
	require.NoError(t, err)

	require.NoError(t, s.SetToken(ctx, "a"))
	require.True(t, s.SetCurrentUser("a", models.Profile{ID: "u1"}))
	require.NoError(t, s.SetToken(ctx, "b"))
	assert.False(t, s.LoggedIn())
}

func TestStore_Invalidate(t *testing.T) {
	ctx := context.Background()
	st, _ := newFileStorage(t)
	s, err := New(ctx, st)
	require.NoError(t, err)
	require.NoError(t, s.SetToken(ctx, "current"))

	cleared, err := s.Invalidate(ctx, "older")
	require.NoError(t, err)
	assert.False(t, cleared)
	assert.Equal(t, "current", s.Token())

	cleared, err = s.Invalidate(ctx, "current")
	require.NoError(t, err)
	assert.True(t, cleared)
	assert.Empty(t, s.Token())
	_, err = st.Get(ctx, storage.TokenKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
