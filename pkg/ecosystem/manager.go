package ecosystem

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ajitpratap0/patternlab/pkg/json"
	"github.com/ajitpratap0/patternlab/pkg/logger"
)

// Actions understood by Manager.PerformAction.
const (
	ActionFeed    = "feed"
	ActionUnfeed  = "unfeed"
	ActionMove    = "move"
	ActionReturn  = "return"
	ActionTreat   = "treat"
	ActionUntreat = "untreat"
)

const (
	hungerAlert       = 70
	emergencyHunger   = 85
	recoveredHealth   = 95
	reportActivityLen = 10
	timeLayout        = "15:04:05"
)

// Manager observes the animals it manages and carries out the actions of
// commands. Observations are written to its output as they arrive and kept in
// an activity log together with performed actions.
type Manager struct {
	id string

	mu       sync.Mutex
	animals  []*Animal
	activity []string

	out    io.Writer
	now    func() time.Time
	logger *zap.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithOutput sets where observations and automatic responses are written.
func WithOutput(w io.Writer) ManagerOption {
	return func(m *Manager) { m.out = w }
}

// WithClock sets the time source used for log timestamps.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) { m.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) ManagerOption {
	return func(m *Manager) { m.logger = l }
}

// NewManager creates a manager with no animals. Output is discarded unless
// WithOutput is given.
func NewManager(id string, opts ...ManagerOption) *Manager {
	m := &Manager{
		id:  id,
		out: io.Discard,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = logger.OrNop(m.logger).With(zap.String("manager", id))
	return m
}

// ID identifies the manager as an Observer.
func (m *Manager) ID() string { return m.id }

// AddAnimal starts managing a and attaches the manager to it. An animal with
// the same name replaces the previous one.
func (m *Manager) AddAnimal(a *Animal) {
	m.mu.Lock()
	if i := m.indexOf(a.Name()); i >= 0 {
		m.animals[i].Detach(m)
		m.animals[i] = a
	} else {
		m.animals = append(m.animals, a)
	}
	m.mu.Unlock()

	a.Attach(m)
	m.logger.Info("managing animal", zap.String("animal", a.Name()), zap.String("species", a.Species()))
}

// RemoveAnimal stops managing the named animal and reports whether it was
// managed.
func (m *Manager) RemoveAnimal(name string) bool {
	m.mu.Lock()
	i := m.indexOf(name)
	if i < 0 {
		m.mu.Unlock()
		return false
	}
	a := m.animals[i]
	m.animals = slices.Delete(m.animals, i, i+1)
	m.mu.Unlock()

	a.Detach(m)
	m.logger.Info("stopped managing animal", zap.String("animal", name))
	return true
}

// Animal returns the managed animal called name.
func (m *Manager) Animal(name string) (*Animal, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.indexOf(name); i >= 0 {
		return m.animals[i], true
	}
	return nil, false
}

// Animals returns the managed animals in the order they were added.
func (m *Manager) Animals() []*Animal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.animals)
}

func (m *Manager) indexOf(name string) int {
	return slices.IndexFunc(m.animals, func(a *Animal) bool { return a.Name() == name })
}

// Update records an event published by a.
func (m *Manager) Update(a *Animal, e Event) {
	entry := fmt.Sprintf("[%s] %s observed: %s - %s", m.stamp(), m.id, a.Name(), e.Type)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.activity = append(m.activity, entry)
	if detail, ok := describe(e); ok {
		fmt.Fprintf(m.out, "   %s %s\n", entry, detail)
	}

	switch {
	case e.Type == EventHungerIncreased && e.Hunger > emergencyHunger:
		fmt.Fprintf(m.out, "%s initiating emergency feeding for %s\n", m.id, a.Name())
		m.logger.Warn("emergency feeding", zap.String("animal", a.Name()), zap.Int("hunger", e.Hunger))
	case e.Type == EventTreated && e.Health > recoveredHealth:
		fmt.Fprintf(m.out, "%s notes: %s has fully recovered!\n", m.id, a.Name())
	}
}

// describe renders the detail shown next to an observation. Hunger increases
// are only shown once they pass the alert threshold.
func describe(e Event) (string, bool) {
	switch e.Type {
	case EventFed:
		return fmt.Sprintf("(Hunger reduced from %d to %d)", e.PreviousHunger, e.Hunger), true
	case EventMoved:
		return fmt.Sprintf("(From %s to %s)", e.From, e.To), true
	case EventTreated:
		return fmt.Sprintf("(%s, Health: %d -> %d)", e.Treatment, e.PreviousHealth, e.Health), true
	case EventBehaviorChanged:
		return fmt.Sprintf("(New behavior: %s)", e.Behavior), true
	case EventMadeSound:
		return fmt.Sprintf("(Sound: %s)", e.Sound), true
	case EventHungerIncreased:
		if e.Hunger > hungerAlert {
			return fmt.Sprintf("HIGH HUNGER ALERT! (%d)", e.Hunger), true
		}
		return "", false
	default:
		data, err := json.Marshal(e)
		if err != nil {
			return "", false
		}
		return "(" + string(data) + ")", true
	}
}

// PerformAction carries out a command action on target and logs it.
func (m *Manager) PerformAction(action, target string) string {
	var what string
	switch action {
	case ActionFeed:
		what = "fed " + target
	case ActionUnfeed:
		what = "undid feeding of " + target
	case ActionMove:
		what = "moved " + target
	case ActionReturn:
		what = "returned " + target + " to original location"
	case ActionTreat:
		what = "treated " + target
	case ActionUntreat:
		what = "undid treatment for " + target
	default:
		what = fmt.Sprintf("performed unknown action: %s on %s", action, target)
	}
	result := fmt.Sprintf("[%s] %s %s", m.stamp(), m.id, what)

	m.mu.Lock()
	m.activity = append(m.activity, result)
	m.mu.Unlock()
	m.logger.Debug("action performed", zap.String("action", action), zap.String("target", target))
	return result
}

// PassTime advances time for every managed animal and returns the warnings
// of those weakened by hunger.
func (m *Manager) PassTime() []string {
	var warnings []string
	for _, a := range m.Animals() {
		if w := a.PassTime(); w != "" {
			warnings = append(warnings, w)
		}
	}
	return warnings
}

// Activity returns a copy of the activity log, oldest first.
func (m *Manager) Activity() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.activity)
}

// ClearActivity empties the activity log.
func (m *Manager) ClearActivity() {
	m.mu.Lock()
	m.activity = nil
	m.mu.Unlock()
}

// Report lists every managed animal's status and the last ten activities.
func (m *Manager) Report() string {
	animals := m.Animals()
	activity := m.Activity()

	lines := []string{
		fmt.Sprintf("=== ECOSYSTEM STATUS REPORT by %s ===", m.id),
		fmt.Sprintf("Animals under management: %d", len(animals)),
		fmt.Sprintf("Recent activities: %d", len(activity)),
		"",
		"ANIMAL STATUS:",
	}
	for _, a := range animals {
		lines = append(lines, "   "+a.Status())
	}
	lines = append(lines, "", fmt.Sprintf("RECENT ACTIVITY LOG (Last %d entries):", reportActivityLen))
	for _, entry := range activity[max(0, len(activity)-reportActivityLen):] {
		lines = append(lines, "   "+entry)
	}
	lines = append(lines, strings.Repeat("=", 50))
	return strings.Join(lines, "\n")
}

func (m *Manager) stamp() string {
	return m.now().Format(timeLayout)
}
