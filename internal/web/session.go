package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sunghokang/judgement.archive/internal/archive"
)

const sessionCookieName = "ja_session"

// session holds one browser session's archive and form template choice.
// Records live only as long as the session.
type session struct {
	store *archive.Store

	mu       sync.Mutex
	mode     archive.Variant
	lastSeen time.Time
}

// Mode returns the session's current form template.
func (s *session) Mode() archive.Variant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode switches the session's form template.
func (s *session) SetMode(mode archive.Variant) {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
}

func (s *session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// sessionStore is a thread-safe in-memory session registry. Sessions expire
// after sitting idle for ttl; expiry is enforced lazily on lookup.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

// newSessionStore creates an empty session registry.
func newSessionStore(ttl time.Duration, now func() time.Time) *sessionStore {
	if now == nil {
		now = time.Now
	}
	return &sessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      now,
	}
}

// create registers a new session and returns its ID.
func (s *sessionStore) create() (string, *session) {
	id := uuid.NewString()
	sess := &session{
		store:    archive.NewStore(),
		mode:     archive.VariantSimple,
		lastSeen: s.now(),
	}
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	return id, sess
}

// get returns a session by ID, or nil if missing or idle past the TTL.
// A successful lookup refreshes the idle clock.
func (s *sessionStore) get(id string) *session {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	now := s.now()
	if now.Sub(sess.idleSince()) > s.ttl {
		s.delete(id)
		return nil
	}
	sess.touch(now)
	return sess
}

// delete removes a session by ID.
func (s *sessionStore) delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// len reports the number of registered sessions.
func (s *sessionStore) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// ensureSession returns the request's session, creating one and setting the
// session cookie when none exists.
func (h *handler) ensureSession(w http.ResponseWriter, r *http.Request) *session {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if sess := h.sessions.get(cookie.Value); sess != nil {
			return sess
		}
	}
	id, sess := h.sessions.create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}
