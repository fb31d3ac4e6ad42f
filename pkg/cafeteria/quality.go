package cafeteria

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ajitpratap0/patternlab/pkg/dispatch"
)

// AssessmentStrategy produces the overall verdict for the qualities it
// handles.
type AssessmentStrategy interface {
	Name() string
	CanHandle(q Quality) bool
	Assess(f Food) string
}

// gradeStrategy handles a single quality.
type gradeStrategy struct {
	quality Quality
	assess  func(Food) string
}

func (s gradeStrategy) Name() string             { return string(s.quality) }
func (s gradeStrategy) CanHandle(q Quality) bool { return q == s.quality }
func (s gradeStrategy) Assess(f Food) string     { return s.assess(f) }

func fixedVerdict(v string) func(Food) string {
	return func(Food) string { return v }
}

func assessFresh(f Food) string {
	if f.Temperature() >= f.OptimalTemperature()-5 {
		return "Overall: Excellent quality!"
	}
	return "Overall: Fresh but temperature needs adjustment"
}

type unknownQuality struct{}

func (unknownQuality) Name() string           { return "default" }
func (unknownQuality) CanHandle(Quality) bool { return true }
func (unknownQuality) Assess(Food) string     { return "Overall: Unknown quality level" }

// Inspector is the QualityControl of the cafeteria. Strategies are tried in
// order and the first that handles a dish's quality gives the verdict; a
// default strategy always comes last.
type Inspector struct {
	mu         sync.RWMutex
	strategies *dispatch.Selector[Quality, AssessmentStrategy]
}

// NewInspector returns an inspector with the excellent, fresh, good, stale
// and spoiled strategies.
func NewInspector() *Inspector {
	in := &Inspector{
		strategies: dispatch.New[Quality, AssessmentStrategy]("default", unknownQuality{}),
	}
	for _, s := range []AssessmentStrategy{
		gradeStrategy{QualityExcellent, fixedVerdict("Overall: Outstanding quality - premium grade!")},
		gradeStrategy{QualityFresh, assessFresh},
		gradeStrategy{QualityGood, fixedVerdict("Overall: Good quality")},
		gradeStrategy{QualityStale, fixedVerdict("Overall: Has quality issues")},
		gradeStrategy{QualitySpoiled, fixedVerdict("Overall: Poor quality - spoiled")},
	} {
		in.AddStrategy(s)
	}
	return in
}

// AddStrategy registers s after the existing strategies and before the
// default.
func (in *Inspector) AddStrategy(s AssessmentStrategy) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.strategies.Add(dispatch.Rule[Quality, AssessmentStrategy]{
		Name:    s.Name(),
		Matches: s.CanHandle,
		Handler: s,
	})
}

// Strategies lists the strategy names in evaluation order.
func (in *Inspector) Strategies() []string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.strategies.Names()
}

// Check reports the dish state followed by the verdict of the first
// strategy that handles its quality.
func (in *Inspector) Check(f Food) string {
	in.mu.RLock()
	s, _, _ := in.strategies.Select(f.Quality())
	in.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "%s Quality Check:\n", f.Name())
	fmt.Fprintf(&b, "  Current quality: %s\n", f.Quality())
	fmt.Fprintf(&b, "  Temperature: %d°C\n", f.Temperature())
	fmt.Fprintf(&b, "  Cooking status: %d/%d minutes\n", f.CookingTime(), f.RequiredCookingTime())
	b.WriteString("  " + s.Assess(f))
	return b.String()
}

// Recommendations lists what to fix before serving: temperature, quality
// and unfinished cooking, in that order.
func (in *Inspector) Recommendations(f Food) []string {
	var recs []string
	temp, optimal := f.Temperature(), f.OptimalTemperature()
	switch {
	case temp < optimal-10:
		recs = append(recs, "Reheat food to optimal serving temperature")
	case temp > optimal+15:
		recs = append(recs, "Allow food to cool before serving")
	}
	switch f.Quality() {
	case QualityStale:
		recs = append(recs, "Consider discarding - quality compromised")
	case QualitySpoiled:
		recs = append(recs, "Do not serve - food is spoiled")
	}
	if f.CookingTime() < f.RequiredCookingTime() {
		recs = append(recs, "Continue cooking until fully done")
	}
	return recs
}
