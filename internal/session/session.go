// Package session holds the client's belief about the authenticated identity: the bearer
// token, persisted across restarts, and the last fetched profile.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MarkMiraclee/vvclient/internal/models"
	"github.com/MarkMiraclee/vvclient/internal/storage"
)

// Store keeps the in-memory token equal to the persisted one. The profile is only present
// while a token is held.
type Store struct {
	mu      sync.RWMutex
	storage storage.Storage
	token   string
	user    *models.Profile
}

// New loads the persisted token, if any. The profile starts empty until a fetch succeeds.
func New(ctx context.Context, st storage.Storage) (*Store, error) {
	token, err := st.Get(ctx, storage.TokenKey)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("load token: %w", err)
	}

	return &Store{storage: st, token: token}, nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken persists token and then adopts it in memory. The previous profile is dropped.
func (s *Store) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(ctx, storage.TokenKey, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	s.token = token
	s.user = nil
	return nil
}

// Clear forgets the token and profile in memory unconditionally; the returned error only
// reports a failure to remove the persisted copy.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
	if err := s.storage.Delete(ctx, storage.TokenKey); err != nil {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// Invalidate clears the session like Clear, but only while token is still the current one.
func (s *Store) Invalidate(ctx context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.token {
		return false, nil
	}
	s.token = ""
	s.user = nil
	if err := s.storage.Delete(ctx, storage.TokenKey); err != nil {
		return true, fmt.Errorf("remove token: %w", err)
	}
	return true, nil
}

// SetCurrentUser stores p only if forToken is still the current token, so a profile fetched
// for a session that has since ended or changed is discarded.
func (s *Store) SetCurrentUser(forToken string, p models.Profile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if forToken == "" || forToken != s.token {
		return false
	}
	s.user = &p
	return true
}

func (s *Store) CurrentUser() (models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.Profile{}, false
	}
	return *s.user, true
}

func (s *Store) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}
