package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := NewFileStorage(path)
	require.NoError(t, err)

	_, err = s.Get(ctx, TokenKey)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, TokenKey, "tok-1"))

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)
	v, err := reopened.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", v)

	require.NoError(t, reopened.Delete(ctx, TokenKey))
	require.NoError(t, reopened.Delete(ctx, TokenKey))

	again, err := NewFileStorage(path)
	require.NoError(t, err)
	_, err = again.Get(ctx, TokenKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStorage_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	s, err := NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "k", "v"))
}

func TestFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStorage(path)
	assert.Error(t, err)
}
