package ecosystem

import (
	"fmt"
	"sync"

	"github.com/ajitpratap0/patternlab/pkg/metrics"
)

const (
	// MaxHealth is the health of a new or fully treated animal.
	MaxHealth = 100
	// MaxHunger is the hungriest an animal gets.
	MaxHunger = 100

	initialHunger = 50
	feedAmount    = 30
	treatAmount   = 20
	hungerPerTick = 10
	weakHunger    = 80
	weakHealthHit = 5
)

// Species describes a kind of animal.
type Species struct {
	Name            string
	DefaultLocation string
	// Call follows the animal's name when it makes a sound.
	Call string
	// Sound is the one-word label published with EventMadeSound.
	Sound string
}

// Built-in species.
var (
	Lion     = Species{Name: "Lion", DefaultLocation: "Savanna", Call: "roars loudly! ROOOAAR!", Sound: "roar"}
	Elephant = Species{Name: "Elephant", DefaultLocation: "Plains", Call: "trumpets! PFFFFRRRRR!", Sound: "trumpet"}
	Monkey   = Species{Name: "Monkey", DefaultLocation: "Forest", Call: "chatters excitedly! OOH OOH AH AH!", Sound: "chatter"}
	Penguin  = Species{Name: "Penguin", DefaultLocation: "Arctic", Call: "makes penguin noises! SQUAWK SQUAWK!", Sound: "squawk"}
)

// Animal is an observable creature whose actions are delegated to a Behavior.
// Every state change is published to the attached observers after the
// animal's own lock is released, so observers may read it back.
type Animal struct {
	subject

	stateMu  sync.RWMutex
	name     string
	species  Species
	health   int
	hunger   int
	location string
	behavior Behavior
}

// NewAnimal creates a healthy, half-hungry, calm animal. An empty location
// uses the species default.
func NewAnimal(sp Species, name, location string) *Animal {
	if location == "" {
		location = sp.DefaultLocation
	}
	return &Animal{
		name:     name,
		species:  sp,
		health:   MaxHealth,
		hunger:   initialHunger,
		location: location,
		behavior: Calm{},
	}
}

// NewLion, NewElephant, NewMonkey and NewPenguin create an animal of the
// matching built-in species.
func NewLion(name, location string) *Animal     { return NewAnimal(Lion, name, location) }
func NewElephant(name, location string) *Animal { return NewAnimal(Elephant, name, location) }
func NewMonkey(name, location string) *Animal   { return NewAnimal(Monkey, name, location) }
func NewPenguin(name, location string) *Animal  { return NewAnimal(Penguin, name, location) }

// Name returns the animal's name.
func (a *Animal) Name() string { return a.name }

// Species returns the species name.
func (a *Animal) Species() string { return a.species.Name }

// Health returns the current health, 0 to MaxHealth.
func (a *Animal) Health() int {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()
	return a.health
}

// Hunger returns the current hunger, 0 to MaxHunger.
func (a *Animal) Hunger() int {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()
	return a.hunger
}

// Location returns where the animal is.
func (a *Animal) Location() string {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()
	return a.location
}

// Behavior returns the name of the current behavior.
func (a *Animal) Behavior() string {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()
	return a.behavior.Name()
}

// MakeSound returns the species call.
func (a *Animal) MakeSound() string {
	a.notify(Event{Type: EventMadeSound, Sound: a.species.Sound})
	return fmt.Sprintf("%s %s", a.name, a.species.Call)
}

// Feed lowers hunger by 30, not below zero.
func (a *Animal) Feed() string {
	a.stateMu.Lock()
	prev := a.hunger
	a.hunger = max(0, a.hunger-feedAmount)
	e := Event{Type: EventFed, Hunger: a.hunger, PreviousHunger: prev}
	a.stateMu.Unlock()

	a.notify(e)
	return fmt.Sprintf("%s is eating. Hunger: %d -> %d", a.name, prev, e.Hunger)
}

// MoveTo changes the location.
func (a *Animal) MoveTo(location string) string {
	a.stateMu.Lock()
	prev := a.location
	a.location = location
	a.stateMu.Unlock()

	a.notify(Event{Type: EventMoved, From: prev, To: location})
	return fmt.Sprintf("%s moved from %s to %s", a.name, prev, location)
}

// Treat raises health by 20, not above MaxHealth.
func (a *Animal) Treat(treatment string) string {
	a.stateMu.Lock()
	prev := a.health
	a.health = min(MaxHealth, a.health+treatAmount)
	e := Event{Type: EventTreated, Health: a.health, PreviousHealth: prev, Treatment: treatment}
	a.stateMu.Unlock()

	a.notify(e)
	return fmt.Sprintf("%s received treatment: %s. Health: %d -> %d", a.name, treatment, prev, e.Health)
}

// SetBehavior swaps the behavior strategy.
func (a *Animal) SetBehavior(b Behavior) string {
	a.stateMu.Lock()
	a.behavior = b
	a.stateMu.Unlock()

	a.notify(Event{Type: EventBehaviorChanged, Behavior: b.Name()})
	return fmt.Sprintf("%s's behavior changed to: %s", a.name, b.Name())
}

// PerformBehavior runs the current behavior and returns its result.
func (a *Animal) PerformBehavior() string {
	a.stateMu.RLock()
	b := a.behavior
	a.stateMu.RUnlock()

	result := b.Execute()
	a.notify(Event{Type: EventBehaviorExecuted, Behavior: b.Name(), Result: result})
	return result
}

// PassTime adds 10 hunger. Above 80 hunger the animal also loses 5 health;
// the returned message is non-empty only when that happens.
func (a *Animal) PassTime() string {
	a.stateMu.Lock()
	prevHunger, prevHealth := a.hunger, a.health
	a.hunger = min(MaxHunger, a.hunger+hungerPerTick)
	if a.hunger > weakHunger {
		a.health = max(0, a.health-weakHealthHit)
	}
	hunger, health := a.hunger, a.health
	a.stateMu.Unlock()

	if hunger != prevHunger {
		a.notify(Event{Type: EventHungerIncreased, Hunger: hunger, PreviousHunger: prevHunger})
	}
	if health != prevHealth {
		return fmt.Sprintf("%s is getting weak from hunger! Health: %d -> %d", a.name, prevHealth, health)
	}
	return ""
}

// Status summarises health, hunger, location and behavior.
func (a *Animal) Status() string {
	a.stateMu.RLock()
	defer a.stateMu.RUnlock()
	return fmt.Sprintf("%s (%s) - Health: %d/100 (%s), Hunger: %d/100 (%s), Location: %s, Behavior: %s",
		a.name, a.species.Name,
		a.health, healthStatus(a.health),
		a.hunger, hungerStatus(a.hunger),
		a.location, a.behavior.Name())
}

// String returns Status.
func (a *Animal) String() string { return a.Status() }

func (a *Animal) notify(e Event) {
	metrics.EcosystemEvents.WithLabelValues(string(e.Type)).Inc()
	for _, o := range a.snapshot() {
		o.Update(a, e)
	}
}

func healthStatus(h int) string {
	switch {
	case h > 80:
		return "Excellent"
	case h > 60:
		return "Good"
	case h > 40:
		return "Fair"
	case h > 20:
		return "Poor"
	default:
		return "Critical"
	}
}

func hungerStatus(h int) string {
	switch {
	case h < 20:
		return "Full"
	case h < 50:
		return "Satisfied"
	case h < 80:
		return "Hungry"
	default:
		return "Very Hungry"
	}
}
