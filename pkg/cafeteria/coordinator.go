package cafeteria

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ajitpratap0/patternlab/pkg/logger"
	"github.com/ajitpratap0/patternlab/pkg/metrics"
)

// CookingState is how far a dish is cooked.
type CookingState string

const (
	CookingRaw        CookingState = "raw"
	CookingInProgress CookingState = "cooking"
	CookingReady      CookingState = "ready"
	CookingOvercooked CookingState = "overcooked"
)

// TemperatureState is how a dish's temperature compares to its optimum.
type TemperatureState string

const (
	TemperatureCold    TemperatureState = "cold"
	TemperatureWarm    TemperatureState = "warm"
	TemperatureHot     TemperatureState = "hot"
	TemperatureOptimal TemperatureState = "optimal"
)

// FoodStatus summarises whether a dish can go out.
type FoodStatus struct {
	Cooking      CookingState     `json:"cooking_status"`
	Temperature  TemperatureState `json:"temperature"`
	Quality      Quality          `json:"quality"`
	ReadyToServe bool             `json:"ready_to_serve"`
}

// Coordinator runs an order through cooking, quality control and serving.
// The cooking service can be swapped while the coordinator is in use.
type Coordinator struct {
	mu      sync.RWMutex
	cook    CookingService
	serve   ServingService
	quality QualityControl
	logger  *zap.Logger
}

// NewCoordinator wires the three services together.
func NewCoordinator(cook CookingService, serve ServingService, quality QualityControl, log *zap.Logger) *Coordinator {
	return &Coordinator{
		cook:    cook,
		serve:   serve,
		quality: quality,
		logger:  logger.OrNop(log),
	}
}

// UpdateCookingService replaces the cooking service used by later orders.
func (c *Coordinator) UpdateCookingService(cook CookingService) {
	c.mu.Lock()
	c.cook = cook
	c.mu.Unlock()
	c.logger.Info("cooking service updated")
}

// ProcessOrder reports the cooking status, cooks the dish if it still needs
// it, inspects it, and serves it unless it is spoiled. It returns the steps
// taken in order.
func (c *Coordinator) ProcessOrder(f Food) []string {
	c.mu.RLock()
	cook := c.cook
	c.mu.RUnlock()

	steps := []string{cook.CookingStatus(f)}
	if f.CookingTime() < f.RequiredCookingTime() {
		steps = append(steps, cook.Cook(f))
	}
	steps = append(steps, c.quality.Check(f))
	if recs := c.quality.Recommendations(f); len(recs) > 0 {
		steps = append(steps, "Recommendations: "+strings.Join(recs, ", "))
	}

	outcome := "refused"
	if f.Quality() != QualitySpoiled {
		steps = append(steps, c.serve.Serve(f), c.serve.CheckTemperature(f))
		outcome = "served"
	}
	metrics.OrdersProcessed.WithLabelValues(outcome).Inc()
	c.logger.Info("order processed",
		zap.String("food", f.Name()),
		zap.String("quality", string(f.Quality())),
		zap.String("outcome", outcome),
	)
	return steps
}

// Status classifies the dish's cooking progress and temperature.
func (c *Coordinator) Status(f Food) FoodStatus {
	cooking := cookingState(f.CookingTime(), f.RequiredCookingTime())
	temp := temperatureState(f.Temperature(), f.OptimalTemperature())
	return FoodStatus{
		Cooking:     cooking,
		Temperature: temp,
		Quality:     f.Quality(),
		ReadyToServe: cooking == CookingReady &&
			f.Quality() != QualitySpoiled &&
			temp != TemperatureCold,
	}
}

// cookingState treats more than one and a half times the required time as
// overcooked.
func cookingState(current, required int) CookingState {
	switch {
	case required == 0:
		return CookingReady
	case current*2 > required*3:
		return CookingOvercooked
	case current >= required:
		return CookingReady
	case current > 0:
		return CookingInProgress
	default:
		return CookingRaw
	}
}

// temperatureState allows five degrees either side of optimal; anything
// hotter is hot and up to ten degrees colder is warm.
func temperatureState(temp, optimal int) TemperatureState {
	switch {
	case abs(temp-optimal) <= 5:
		return TemperatureOptimal
	case temp > optimal+5:
		return TemperatureHot
	case temp >= optimal-10:
		return TemperatureWarm
	default:
		return TemperatureCold
	}
}
