package ecosystem

import (
	"slices"
	"sync"
)

// EventType names something that happened to an animal.
type EventType string

const (
	EventFed              EventType = "fed"
	EventMoved            EventType = "moved"
	EventTreated          EventType = "treated"
	EventBehaviorChanged  EventType = "behaviorChanged"
	EventBehaviorExecuted EventType = "behaviorExecuted"
	EventMadeSound        EventType = "madeSound"
	EventHungerIncreased  EventType = "timePassedHunger"
)

// Event carries the state change an animal publishes. Only the fields that
// belong to Type are set.
type Event struct {
	Type           EventType `json:"type"`
	Hunger         int       `json:"hunger,omitempty"`
	PreviousHunger int       `json:"previous_hunger,omitempty"`
	Health         int       `json:"health,omitempty"`
	PreviousHealth int       `json:"previous_health,omitempty"`
	Treatment      string    `json:"treatment,omitempty"`
	From           string    `json:"from,omitempty"`
	To             string    `json:"to,omitempty"`
	Behavior       string    `json:"behavior,omitempty"`
	Result         string    `json:"result,omitempty"`
	Sound          string    `json:"sound,omitempty"`
}

// Observer receives the events of every animal it is attached to.
// Observers are identified by ID; attaching a second observer with the same
// ID is a no-op.
type Observer interface {
	ID() string
	Update(a *Animal, e Event)
}

// subject keeps the attached observers in attach order.
type subject struct {
	mu        sync.Mutex
	observers []Observer
}

// Attach registers o. It reports false when an observer with the same ID is
// already attached.
func (s *subject) Attach(o Observer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(o.ID()) >= 0 {
		return false
	}
	s.observers = append(s.observers, o)
	return true
}

// Detach removes the observer with o's ID and reports whether one was found.
func (s *subject) Detach(o Observer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(o.ID())
	if i < 0 {
		return false
	}
	s.observers = slices.Delete(s.observers, i, i+1)
	return true
}

// ObserverCount returns the number of attached observers.
func (s *subject) ObserverCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

func (s *subject) indexOf(id string) int {
	return slices.IndexFunc(s.observers, func(o Observer) bool { return o.ID() == id })
}

// snapshot copies the observer list so updates run without the lock held.
func (s *subject) snapshot() []Observer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.observers)
}
