package cafeteria

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"
)

// CookingService cooks dishes and reports how far along they are.
type CookingService interface {
	Cook(f Food) string
	CookingStatus(f Food) string
}

// ServingService brings dishes to the table.
type ServingService interface {
	Serve(f Food) string
	CheckTemperature(f Food) string
}

// QualityControl inspects dishes before they are served.
type QualityControl interface {
	Check(f Food) string
	Recommendations(f Food) []string
}

// Oven cooks a dish for exactly its required time and brings it to its
// optimal temperature.
type Oven struct {
	orderBook
}

// NewOven returns an oven with an empty order book.
func NewOven() *Oven { return &Oven{} }

// Cook adds the required time and sets the optimal temperature. Dishes
// needing no cooking are left alone.
func (o *Oven) Cook(f Food) string {
	required := f.RequiredCookingTime()
	if required == 0 {
		return fmt.Sprintf("%s doesn't need cooking - it's ready to serve!", f.Name())
	}
	f.Cook(required)
	f.SetTemperature(f.OptimalTemperature())
	o.history(f).RecordCooking(f.Name())
	return fmt.Sprintf("Oven cooked %s for %d minutes. Temperature: %d°C", f.Name(), required, f.Temperature())
}

// CookingStatus reports the minutes still needed.
func (o *Oven) CookingStatus(f Food) string {
	required, current := f.RequiredCookingTime(), f.CookingTime()
	switch {
	case required == 0:
		return fmt.Sprintf("%s doesn't require cooking", f.Name())
	case current >= required:
		return fmt.Sprintf("%s is fully cooked (%d/%d minutes)", f.Name(), current, required)
	default:
		return fmt.Sprintf("%s needs %d more minutes of cooking", f.Name(), required-current)
	}
}

// StovetopEntry is one entry of the stovetop cooking log.
type StovetopEntry struct {
	Food   string    `json:"food"`
	Date   time.Time `json:"date"`
	Method string    `json:"method"`
}

// Stovetop cooks a dish for its required time give or take a couple of
// minutes and serves it slightly below its optimal temperature.
type Stovetop struct {
	variation func() int

	mu  sync.Mutex
	log []StovetopEntry
}

// StovetopOption configures a Stovetop.
type StovetopOption func(*Stovetop)

// WithVariation sets the function returning the minutes added to the
// required cooking time.
func WithVariation(fn func() int) StovetopOption {
	return func(s *Stovetop) { s.variation = fn }
}

// NewStovetop returns a stovetop whose cooking time varies by up to two
// minutes either way.
func NewStovetop(opts ...StovetopOption) *Stovetop {
	s := &Stovetop{variation: func() int { return rand.IntN(5) - 2 }}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cook adds the required time plus the variation and leaves the dish five
// degrees below optimal.
func (s *Stovetop) Cook(f Food) string {
	required := f.RequiredCookingTime()
	if required == 0 {
		return fmt.Sprintf("%s doesn't need cooking - ready to serve!", f.Name())
	}
	actual := required + s.variation()
	f.Cook(actual)
	f.SetTemperature(f.OptimalTemperature() - 5)

	s.mu.Lock()
	s.log = append(s.log, StovetopEntry{Food: f.Name(), Date: time.Now(), Method: "stovetop"})
	s.mu.Unlock()
	return fmt.Sprintf("Stovetop cooked %s for %d minutes. Temperature: %d°C", f.Name(), actual, f.Temperature())
}

// CookingStatus reports whether the dish is done.
func (s *Stovetop) CookingStatus(f Food) string {
	required, current := f.RequiredCookingTime(), f.CookingTime()
	switch {
	case required == 0:
		return fmt.Sprintf("%s is ready - no cooking needed", f.Name())
	case current >= required:
		return fmt.Sprintf("%s is done cooking on stovetop", f.Name())
	default:
		return fmt.Sprintf("%s needs more stovetop cooking time", f.Name())
	}
}

// Log returns a copy of the cooking log, oldest first.
func (s *Stovetop) Log() []StovetopEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.log)
}

// TableService serves cooked dishes and comments on their temperature.
type TableService struct {
	orderBook
}

// NewTableService returns a table service with an empty order book.
func NewTableService() *TableService { return &TableService{} }

// Serve refuses dishes that are not fully cooked and records the rest.
func (t *TableService) Serve(f Food) string {
	if f.CookingTime() < f.RequiredCookingTime() {
		return fmt.Sprintf("%s is not ready yet - still needs cooking!", f.Name())
	}
	t.history(f).RecordServing(f.Name())
	return fmt.Sprintf("%s served to table - %d portions available", f.Name(), f.Portions())
}

// CheckTemperature compares the dish with its optimal serving temperature.
func (t *TableService) CheckTemperature(f Food) string {
	optimal, current := f.OptimalTemperature(), f.Temperature()
	switch {
	case abs(current-optimal) <= 5:
		return fmt.Sprintf("%s is at optimal serving temperature (%d°C)", f.Name(), current)
	case current < optimal-10:
		return fmt.Sprintf("%s is too cold (%d°C) - needs reheating", f.Name(), current)
	case current > optimal+10:
		return fmt.Sprintf("%s is too hot (%d°C) - let it cool down", f.Name(), current)
	default:
		return fmt.Sprintf("%s temperature is acceptable (%d°C)", f.Name(), current)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
