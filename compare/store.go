package compare

import (
	"sync"
	"time"
)

// TTL after which an untouched session's comparison set is dropped.
// There is no explicit expiry from the visitor's side; sets just live for
// the active session.
const TTL = 30 * time.Minute

type sessionEntry struct {
	set      *Set
	lastSeen time.Time
}

// Store maps session ids to comparison sets. Every page a visitor opens
// shares the one set behind their session id.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*sessionEntry),
		now:      time.Now,
	}
}

// Get returns the comparison set for the session, creating an empty one on
// first sight. Stale sessions are pruned opportunistically on access.
func (st *Store) Get(sessionID string) *Set {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.pruneLocked()

	entry, ok := st.sessions[sessionID]
	if !ok {
		entry = &sessionEntry{set: NewSet()}
		st.sessions[sessionID] = entry
	}
	entry.lastSeen = st.now()
	return entry.set
}

// Drop removes a session outright (session end).
func (st *Store) Drop(sessionID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, sessionID)
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) pruneLocked() {
	cutoff := st.now().Add(-TTL)
	for id, entry := range st.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
		}
	}
}
