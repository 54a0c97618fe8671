package services

import (
	"context"
	"sync"
	"time"

	"jasit-store/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session owns the cart of one browser visit. Handlers reach the cart only
// through View and Update, which serialize concurrent requests of the same
// visitor. A nil Session reads as an empty cart and discards updates.
type Session struct {
	ID string

	mu       sync.Mutex
	cart     *models.Cart
	lastSeen time.Time
}

func (s *Session) View(fn func(cart models.CartReader)) {
	if s == nil {
		fn(models.NewCart())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.cart)
}

func (s *Session) Update(fn func(cart *models.Cart)) {
	if s == nil {
		fn(models.NewCart())
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.cart)
}

// sweepEvery is how many session creations pass between the inline sweeps
// GetOrCreate performs, so expired sessions go away even without a janitor.
const sweepEvery = 256

type SessionStore struct {
	mu         sync.Mutex
	sessions   map[string]*Session
	ttl        time.Duration
	now        func() time.Time
	log        *zap.Logger
	sweepEvery int
	created    int
}

func NewSessionStore(ttl time.Duration, log *zap.Logger) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{
		sessions:   make(map[string]*Session),
		ttl:        ttl,
		now:        time.Now,
		log:        log,
		sweepEvery: sweepEvery,
	}
}

func (s *SessionStore) expired(sess *Session, now time.Time) bool {
	return now.Sub(sess.lastSeen) > s.ttl
}

// GetOrCreate returns the live session for id, or starts a fresh one with a
// new id when id is unknown, malformed or expired.
func (s *SessionStore) GetOrCreate(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if sess, ok := s.sessions[id]; ok {
		if !s.expired(sess, now) {
			sess.lastSeen = now
			return sess, false
		}
		delete(s.sessions, id)
	}

	s.created++
	if s.sweepEvery > 0 && s.created%s.sweepEvery == 0 {
		for staleID, stale := range s.sessions {
			if s.expired(stale, now) {
				delete(s.sessions, staleID)
			}
		}
	}

	sess := &Session{
		ID:       uuid.NewString(),
		cart:     models.NewCart(),
		lastSeen: now,
	}
	s.sessions[sess.ID] = sess
	return sess, true
}

// Get returns the live session for id and marks it as seen. It never
// creates one.
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess, now) {
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

// End tears the session down and empties its cart for anyone still holding
// a reference.
func (s *SessionStore) End(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		sess.Update(func(cart *models.Cart) { cart.Clear() })
	}
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops every session idle for longer than the ttl and reports how
// many were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	now := s.now()
	var stale []*Session
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			stale = append(stale, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range stale {
		sess.Update(func(cart *models.Cart) { cart.Clear() })
	}
	return len(stale)
}

func (s *SessionStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.Debug("expired sessions swept", zap.Int("count", n), zap.Int("remaining", s.Len()))
			}
		}
	}
}
