// Package registration implements the conversational registration engine:
// an in-process session store with inactivity expiry, input validators, an
// identifier generator, and the stage state machine driving a registration
// from first prompt to persisted profile.
package registration

import (
	"sync"
	"time"
)

// Stage is a point in the registration conversation's state machine. Stages
// only move forward, except that a rejection at confirm resets to
// awaiting_name.
type Stage string

const (
	StageStarted       Stage = "started"
	StageAwaitingName  Stage = "awaiting_name"
	StageAwaitingPhone Stage = "awaiting_phone"
	StageConfirm       Stage = "confirm"
	StageDone          Stage = "done"
)

// Collected holds the fields gathered so far. Phone stays nil when skipped
// or unparseable.
type Collected struct {
	Name  string
	Phone *string
}

// Session is an in-progress registration. Owned exclusively by the Store;
// callers only see it inside Store.Step.
type Session struct {
	ConversationID string
	Stage          Stage
	Collected      Collected
	CreatedAt      time.Time
	LastActivity   time.Time
}

// DefaultTimeout is the inactivity window after which a session is swept.
const DefaultTimeout = 1800 * time.Second

// Store keys in-progress sessions by conversation id. The map-level mutex
// covers only lookup, insert, delete, and sweep iteration; each session has
// its own mutex so a conversation's read-modify-write never interleaves
// while independent conversations proceed concurrently.
type Store struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	timeout time.Duration
	clock   func() time.Time
}

type sessionEntry struct {
	mu      sync.Mutex
	removed bool
	session Session
}

type StoreOption func(*Store)

func WithTimeout(timeout time.Duration) StoreOption {
	return func(st *Store) {
		if timeout > 0 {
			st.timeout = timeout
		}
	}
}

func WithClock(clock func() time.Time) StoreOption {
	return func(st *Store) {
		if clock != nil {
			st.clock = clock
		}
	}
}

func NewStore(opts ...StoreOption) *Store {
	st := &Store{
		entries: make(map[string]*sessionEntry),
		timeout: DefaultTimeout,
		clock:   time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(st)
		}
	}
	return st
}

// Create registers a fresh session at StageStarted.
func (st *Store) Create(conversationID string) Session {
	now := st.clock()
	session := Session{
		ConversationID: conversationID,
		Stage:          StageStarted,
		CreatedAt:      now,
		LastActivity:   now,
	}

	st.mu.Lock()
	st.entries[conversationID] = &sessionEntry{session: session}
	st.mu.Unlock()

	return session
}

// Get returns a copy of the session, if present.
func (st *Store) Get(conversationID string) (Session, bool) {
	entry, ok := st.lookup(conversationID)
	if !ok {
		return Session{}, false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.removed {
		return Session{}, false
	}
	return entry.session, true
}

// Touch refreshes the session's last activity timestamp.
func (st *Store) Touch(conversationID string) bool {
	entry, ok := st.lookup(conversationID)
	if !ok {
		return false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.removed {
		return false
	}
	entry.session.LastActivity = st.clock()
	return true
}

// Step touches the session and runs fn against it under the session's own
// lock, so concurrent turns for one conversation serialize. When fn returns
// true the session is removed. Step reports false for unknown or expired
// conversations without calling fn.
func (st *Store) Step(conversationID string, fn func(*Session) (remove bool)) bool {
	entry, ok := st.lookup(conversationID)
	if !ok {
		return false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.removed {
		return false
	}

	entry.session.LastActivity = st.clock()
	if fn(&entry.session) {
		entry.removed = true
		st.remove(conversationID)
	}
	return true
}

// Delete drops the session, if present.
func (st *Store) Delete(conversationID string) {
	entry, ok := st.lookup(conversationID)
	if !ok {
		return
	}

	entry.mu.Lock()
	entry.removed = true
	entry.mu.Unlock()
	st.remove(conversationID)
}

// Sweep removes every session idle past the timeout and reports how many
// were dropped. Invoked opportunistically, not on a timer.
func (st *Store) Sweep() int {
	now := st.clock()

	st.mu.Lock()
	snapshot := make(map[string]*sessionEntry, len(st.entries))
	for id, entry := range st.entries {
		snapshot[id] = entry
	}
	st.mu.Unlock()

	var stale []string
	for id, entry := range snapshot {
		entry.mu.Lock()
		if !entry.removed && now.Sub(entry.session.LastActivity) > st.timeout {
			entry.removed = true
			stale = append(stale, id)
		}
		entry.mu.Unlock()
	}

	if len(stale) > 0 {
		st.mu.Lock()
		for _, id := range stale {
			delete(st.entries, id)
		}
		st.mu.Unlock()
	}

	return len(stale)
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.entries)
}

func (st *Store) lookup(conversationID string) (*sessionEntry, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	entry, ok := st.entries[conversationID]
	return entry, ok
}

func (st *Store) remove(conversationID string) {
	st.mu.Lock()
	delete(st.entries, conversationID)
	st.mu.Unlock()
}
