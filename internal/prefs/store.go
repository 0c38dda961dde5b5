package prefs

import (
	"sync"

	"NewsPulse/internal/domain"
)

// Store holds the user's current personalization selection. It is the only
// writer of preference state; readers take value snapshots so an in-flight
// request keeps the arguments it was initiated with.
type Store struct {
	mu      sync.Mutex
	current domain.Preferences
}

// NewStore returns a store seeded with the startup defaults.
func NewStore() *Store {
	return &Store{current: domain.DefaultPreferences()}
}

// SetCity selects the locale city.
func (s *Store) SetCity(city domain.City) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.City = city
}

// ToggleInterest adds the topic if absent and removes it if present.
// Toggling twice is a net no-op.
func (s *Store) ToggleInterest(topic domain.Topic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current.Interests[topic] {
		delete(s.current.Interests, topic)
		return
	}
	if s.current.Interests == nil {
		s.current.Interests = map[domain.Topic]bool{}
	}
	s.current.Interests[topic] = true
}

// SetUrgency selects the filtering tier.
func (s *Store) SetUrgency(urgency domain.Urgency) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Urgency = urgency
}

// SetLanguage selects the output language.
func (s *Store) SetLanguage(language domain.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Language = language
}

// Snapshot returns a value copy of the current selection, safe to hold
// across a network call.
func (s *Store) Snapshot() domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := s.current
	copied.Interests = make(map[domain.Topic]bool, len(s.current.Interests))
	for topic, on := range s.current.Interests {
		copied.Interests[topic] = on
	}
	return copied
}
