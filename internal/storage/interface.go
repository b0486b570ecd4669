package storage

import (
	"context"
	"errors"
)

// TokenKey is the fixed slot holding the session token.
const TokenKey = "vv_token"

var ErrNotFound = errors.New("key not found")

// Storage is the persisted client state: a flat key/value space that survives restarts.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error

	Close()
}
