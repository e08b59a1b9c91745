package profile

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	// ErrMissingName rejects a save with an empty profile name.
	ErrMissingName = errors.New("profile name is required")
	// ErrMissingUserID rejects an operation with an empty user id.
	ErrMissingUserID = errors.New("user id is required")
)

// Store is the persistence contract for confirmed profiles. Save has upsert
// semantics. Get reports (zero, false, nil) when the id is unknown.
type Store interface {
	Get(ctx context.Context, userID string) (Profile, bool, error)
	Save(ctx context.Context, userID string, p Profile) error
}

// MemoryStore keeps profiles in a process-local map. Default driver for
// development and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]Profile)}
}

func (s *MemoryStore) Get(_ context.Context, userID string) (Profile, bool, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, false, ErrMissingUserID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	return p, ok, nil
}

func (s *MemoryStore) Save(_ context.Context, userID string, p Profile) error {
	if strings.TrimSpace(userID) == "" {
		return ErrMissingUserID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrMissingName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = p
	return nil
}
