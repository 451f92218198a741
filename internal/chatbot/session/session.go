// Package session holds per-conversation state. Capacity is exactly one
// entry: the last resolved city and its parsed record. A multi-session
// deployment gives each session its own instance; there is no sharing
// across sessions.
package session

import (
	"sync"

	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/chatbot/record"
	"github.com/Amarnath2908/Travel-Companion-chatbot/internal/common/metrics"
)

// Session remembers the last fetched destination so follow-up questions
// about the same city skip the external aggregation.
type Session struct {
	mu       sync.Mutex
	lastCity string
	lastRec  *record.Record
}

// New creates an empty Session.
func New() *Session {
	return &Session{}
}

// Get returns the cached record if and only if city matches the last
// resolved city exactly and the cached record is non-empty. Otherwise the
// caller must fetch fresh.
func (s *Session) Get(city string) (*record.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastCity == city && s.lastRec != nil && !s.lastRec.IsEmpty() {
		metrics.SessionCacheHits.WithLabelValues("hit").Inc()
		return s.lastRec, true
	}
	metrics.SessionCacheHits.WithLabelValues("miss").Inc()
	return nil, false
}

// Set replaces the single cached entry unconditionally.
func (s *Session) Set(city string, rec *record.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastCity = city
	s.lastRec = rec
}

// LastCity returns the most recently cached city name.
func (s *Session) LastCity() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCity
}
