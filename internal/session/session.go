// Package session keeps one view controller per mounted page. A mount
// starts from the controller's defaults; state is dropped on unmount, on
// idle expiry, or when the store is full and the session is the least
// recently used.
package session

import (
	"container/list"
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexrivera/archfolio/internal/content"
	"github.com/alexrivera/archfolio/internal/view"
)

// ErrNotFound is returned for an unknown or expired session id.
var ErrNotFound = errors.New("session not found")

// Options configures a Store.
type Options struct {
	IdleTimeout time.Duration
	MaxSessions int
}

// Session is one mounted page and its controller.
type Session struct {
	ID string

	mu       sync.Mutex
	ctrl     *view.Controller
	lastSeen time.Time
	elem     *list.Element
	// pinned sessions belong to a live connection and are never swept or
	// evicted; only Unmount removes them.
	pinned bool
}

// Store holds the live sessions.
type Store struct {
	catalog *content.Catalog
	opts    Options
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
	lru      *list.List // front = most recently used
}

// NewStore creates an empty store.
func NewStore(catalog *content.Catalog, opts Options) *Store {
	return &Store{
		catalog:  catalog,
		opts:     opts,
		now:      time.Now,
		sessions: make(map[string]*Session),
		lru:      list.New(),
	}
}

// Mount creates a session in its initial state.
func (s *Store) Mount() *Session { return s.mount(false) }

// MountPinned creates a session that stays mounted until Unmount, however
// long it sits idle.
func (s *Store) MountPinned() *Session { return s.mount(true) }

func (s *Store) mount(pinned bool) *Session {
	sess := &Session{
		ID:     uuid.NewString(),
		ctrl:   view.NewController(s.catalog),
		pinned: pinned,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opts.MaxSessions > 0 {
		for len(s.sessions) >= s.opts.MaxSessions {
			victim := s.evictableLocked()
			if victim == nil {
				break
			}
			s.removeLocked(victim)
		}
	}

	sess.lastSeen = s.now()
	sess.elem = s.lru.PushFront(sess)
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session with id and marks it used.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	sess.lastSeen = s.now()
	s.lru.MoveToFront(sess.elem)
	return sess, nil
}

// Unmount discards the session with id. Unknown ids are ignored.
func (s *Store) Unmount(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		s.removeLocked(sess)
	}
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle longer than the idle timeout and returns how
// many were removed.
func (s *Store) Sweep() int {
	if s.opts.IdleTimeout <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.opts.IdleTimeout)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for e := s.lru.Back(); e != nil; {
		sess := e.Value.(*Session)
		if !sess.lastSeen.Before(cutoff) {
			break
		}
		prev := e.Prev()
		if !sess.pinned {
			s.removeLocked(sess)
			removed++
		}
		e = prev
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Printf("session sweep: expired %d idle sessions (%d live)", n, s.Len())
			}
		}
	}
}

// evictableLocked returns the least recently used unpinned session, or nil
// when every session is pinned.
func (s *Store) evictableLocked() *Session {
	for e := s.lru.Back(); e != nil; e = e.Prev() {
		if sess := e.Value.(*Session); !sess.pinned {
			return sess
		}
	}
	return nil
}

func (s *Store) removeLocked(sess *Session) {
	s.lru.Remove(sess.elem)
	delete(s.sessions, sess.ID)
}

// Apply runs ev against the session's controller and returns the change and
// the resulting scene. Events for one session are applied one at a time.
func (sess *Session) Apply(ev view.Event) (view.Change, view.Scene) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	ch := sess.ctrl.Dispatch(ev)
	return ch, sess.ctrl.Scene()
}

// Scene returns the session's current scene.
func (sess *Session) Scene() view.Scene {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.ctrl.Scene()
}

// Catalog returns the collection the session renders.
func (sess *Session) Catalog() *content.Catalog { return sess.ctrl.Catalog() }
