package ecosystem

import (
	"github.com/ajitpratap0/patternlab/pkg/dispatch"
	"github.com/ajitpratap0/patternlab/pkg/errors"
)

// Behavior is what an animal does when asked to act.
type Behavior interface {
	Name() string
	Execute() string
}

type Aggressive struct{}

func (Aggressive) Name() string    { return "Aggressive" }
func (Aggressive) Execute() string { return "Acting aggressively" }

type Playful struct{}

func (Playful) Name() string    { return "Playful" }
func (Playful) Execute() string { return "Playing around" }

type Calm struct{}

func (Calm) Name() string    { return "Calm" }
func (Calm) Execute() string { return "Staying calm and peaceful" }

type Hunting struct{}

func (Hunting) Name() string    { return "Hunting" }
func (Hunting) Execute() string { return "Hunting for food" }

type Social struct{}

func (Social) Name() string    { return "Social" }
func (Social) Execute() string { return "Socializing with others" }

type Defensive struct{}

func (Defensive) Name() string    { return "Defensive" }
func (Defensive) Execute() string { return "Being defensive" }

// Behaviors returns every built-in behavior.
func Behaviors() []Behavior {
	return []Behavior{Aggressive{}, Playful{}, Calm{}, Hunting{}, Social{}, Defensive{}}
}

var behaviorSelector = newBehaviorSelector()

func newBehaviorSelector() *dispatch.Selector[string, Behavior] {
	s := dispatch.New[string, Behavior]("unknown", nil)
	for _, b := range Behaviors() {
		s.Add(dispatch.Rule[string, Behavior]{
			Name:    b.Name(),
			Matches: dispatch.EqualFold(b.Name()),
			Handler: b,
		})
	}
	return s
}

// BehaviorFor looks a built-in behavior up by name, ignoring case.
func BehaviorFor(name string) (Behavior, error) {
	b, _, ok := behaviorSelector.Select(name)
	if !ok {
		return nil, errors.NotFound("behavior", name)
	}
	return b, nil
}
