package gamelog

import (
	"sync"
	"time"
)

// maxStoredEvents caps the entry store; the oldest events are dropped first.
const maxStoredEvents = 1024

// EntryStore holds recent log events in memory, for hosts that present an
// in-app log page. It is thread-safe.
type EntryStore struct {
	mu     sync.RWMutex
	max    int
	events []Event
}

// NewEntryStore creates a new EntryStore.
func NewEntryStore() *EntryStore {
	return &EntryStore{
		max:    maxStoredEvents,
		events: make([]Event, 0, 256),
	}
}

// Add appends a new event to the store, dropping the oldest events when the
// store is over capacity.
func (s *EntryStore) Add(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) > s.max {
		s.events = s.events[len(s.events)-s.max:]
	}
}

// All returns a copy of all stored events.
func (s *EntryStore) All() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	eventsCopy := make([]Event, len(s.events))
	copy(eventsCopy, s.events)
	return eventsCopy
}

// Len returns the number of stored events.
func (s *EntryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// StoreSink adapts an EntryStore to the PermanentSink interface, capturing
// the permanent stream as timestamped events.
type StoreSink struct {
	Store *EntryStore
}

// Write implements PermanentSink.
func (s StoreSink) Write(level Severity, line string) {
	if s.Store == nil {
		return
	}
	s.Store.Add(Event{Time: time.Now(), Level: level, Line: line})
}
