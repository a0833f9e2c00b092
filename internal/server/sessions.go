package server

import (
	"sync"

	"github.com/Mug212/ats-score-resume-builder/internal/document"
	"github.com/google/uuid"
)

// SessionHooks is notified when sessions open and close.
type SessionHooks interface {
	SessionOpened()
	SessionClosed()
}

// session is one editing session. The store is single-threaded, so every
// access goes through mu.
type session struct {
	mu    sync.Mutex
	store *document.Store
}

// Sessions is the in-memory table of editing sessions.
type Sessions struct {
	mu       sync.RWMutex
	items    map[string]*session
	limit    int
	hooks    SessionHooks
	storeOps []document.Option
}

// NewSessions creates a session table. limit <= 0 means unbounded.
func NewSessions(limit int, hooks SessionHooks, storeOps ...document.Option) *Sessions {
	return &Sessions{
		items:    make(map[string]*session),
		limit:    limit,
		hooks:    hooks,
		storeOps: storeOps,
	}
}

// Create opens a session whose store starts from the given options plus the
// table-wide ones, and returns its id with the initial snapshot.
func (s *Sessions) Create(opts ...document.Option) (string, document.Snapshot, error) {
	all := append(append([]document.Option{}, s.storeOps...), opts...)
	sess := &session{store: document.NewStore(all...)}

	s.mu.Lock()
	if s.limit > 0 && len(s.items) >= s.limit {
		s.mu.Unlock()
		return "", document.Snapshot{}, ErrSessionLimit
	}
	id := uuid.NewString()
	s.items[id] = sess
	s.mu.Unlock()

	if s.hooks != nil {
		s.hooks.SessionOpened()
	}
	return id, sess.store.Snapshot(), nil
}

// With runs fn with exclusive access to the session's store.
func (s *Sessions) With(id string, fn func(*document.Store) error) error {
	s.mu.RLock()
	sess, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return &ErrSessionNotFound{ID: id}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.store)
}

// Delete closes a session.
func (s *Sessions) Delete(id string) error {
	s.mu.Lock()
	_, ok := s.items[id]
	delete(s.items, id)
	s.mu.Unlock()

	if !ok {
		return &ErrSessionNotFound{ID: id}
	}
	if s.hooks != nil {
		s.hooks.SessionClosed()
	}
	return nil
}

// Len returns the number of open sessions.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
