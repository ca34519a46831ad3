package services

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"hotel-gateway/models"
)

// Booking wizard steps.
const (
	StepResults  = "results"
	StepCheckout = "checkout"
	StepSuccess  = "success"
)

// BookingSession is one visitor's walk through the reservation wizard. It
// lives only in memory; abandoning the flow simply lets it expire.
type BookingSession struct {
	Token        string                 `json:"token"`
	FechaInicio  string                 `json:"fechaInicio"`
	FechaFin     string                 `json:"fechaFin"`
	Huespedes    int                    `json:"huespedes"`
	Nights       int                    `json:"nights"`
	Step         string                 `json:"step"`
	Rooms        []models.AvailableRoom `json:"rooms"`
	Selected     *models.AvailableRoom  `json:"selected,omitempty"`
	Confirmation *BookingConfirmation   `json:"confirmation,omitempty"`

	expiresAt time.Time
}

// BookingConfirmation is what the success step shows. Kind picks the layout:
// cash instructions, transfer details, or the generic confirmation.
type BookingConfirmation struct {
	Kind          string                `json:"kind"`
	PaymentConfig *models.PaymentConfig `json:"paymentConfig,omitempty"`
}

// SearchStore keeps active booking sessions keyed by random token. Expired
// entries are dropped lazily on access and on insert.
//
// The live session never leaves the store: Get and Update hand out value
// snapshots, and step transitions run inside Update under the store lock, so
// a session poll can serialize a session while another request advances it.
type SearchStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*BookingSession
}

func NewSearchStore(ttl time.Duration) *SearchStore {
	return &SearchStore{
		ttl:      ttl,
		sessions: make(map[string]*BookingSession),
	}
}

func newSearchToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Put stores the session under a fresh token and returns a snapshot of it.
func (s *SearchStore) Put(session *BookingSession) (*BookingSession, error) {
	token, err := newSearchToken()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()

	session.Token = token
	session.expiresAt = time.Now().Add(s.ttl)
	s.sessions[token] = session
	return snapshot(session), nil
}

// Get returns a snapshot of the session, or false when the token is unknown
// or expired. Mutating the returned value does not touch the stored session.
func (s *SearchStore) Get(token string) (*BookingSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.liveLocked(token)
	if !ok {
		return nil, false
	}
	return snapshot(session), true
}

// Update applies fn to the live session under the store lock and returns a
// snapshot of the result. fn must not block; any error it returns is passed
// through and leaves the session as fn left it.
func (s *SearchStore) Update(token string, fn func(*BookingSession) error) (*BookingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.liveLocked(token)
	if !ok {
		return nil, errSearchExpired()
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	return snapshot(session), nil
}

func (s *SearchStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *SearchStore) liveLocked(token string) (*BookingSession, bool) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	if time.Now().After(session.expiresAt) {
		delete(s.sessions, token)
		return nil, false
	}
	return session, true
}

// snapshot copies the session struct. Rooms and the selected room share
// backing memory with the stored session, but those are never written after
// StartSearch builds them.
func snapshot(session *BookingSession) *BookingSession {
	copied := *session
	return &copied
}

func (s *SearchStore) purgeLocked() {
	now := time.Now()
	for token, session := range s.sessions {
		if now.After(session.expiresAt) {
			delete(s.sessions, token)
		}
	}
}
