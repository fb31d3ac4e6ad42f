package cafeteria

import (
	"fmt"
	"strings"
)

// Quality grades a dish.
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityFresh     Quality = "fresh"
	QualityGood      Quality = "good"
	QualityStale     Quality = "stale"
	QualitySpoiled   Quality = "spoiled"
)

const roomTemperature = 20

// Food is a dish moving through the cafeteria. Temperatures are in degrees
// Celsius and times in minutes. Implementations are not safe for concurrent
// use.
type Food interface {
	Name() string
	Category() string
	Temperature() int
	SetTemperature(celsius int)
	Quality() Quality
	SetQuality(q Quality)
	// CookingTime is the time cooked so far.
	CookingTime() int
	Cook(minutes int)
	Portions() int
	OptimalTemperature() int
	RequiredCookingTime() int
	// Info renders a multi-line description of the dish.
	Info() string
}

// dish holds the state every Food shares.
type dish struct {
	name        string
	category    string
	temperature int
	quality     Quality
	cookingTime int
	portions    int
}

func newDish(name, category string, portions int) dish {
	return dish{
		name:        name,
		category:    category,
		temperature: roomTemperature,
		quality:     QualityFresh,
		portions:    portions,
	}
}

func (d *dish) Name() string               { return d.name }
func (d *dish) Category() string           { return d.category }
func (d *dish) Temperature() int           { return d.temperature }
func (d *dish) SetTemperature(celsius int) { d.temperature = celsius }
func (d *dish) Quality() Quality           { return d.quality }
func (d *dish) SetQuality(q Quality)       { d.quality = q }
func (d *dish) CookingTime() int           { return d.cookingTime }
func (d *dish) Cook(minutes int)           { d.cookingTime += minutes }
func (d *dish) Portions() int              { return d.portions }

// info renders the shared description; extra lines follow the category and
// cookingNote is appended to the cooking time line.
func (d *dish) info(f Food, cookingNote string, extra ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Information:\n", d.name)
	fmt.Fprintf(&b, "Category: %s\n", d.category)
	for _, line := range extra {
		b.WriteString(line + "\n")
	}
	fmt.Fprintf(&b, "Temperature: %d°C\n", d.temperature)
	fmt.Fprintf(&b, "Quality: %s\n", d.quality)
	fmt.Fprintf(&b, "Cooking Time: %d minutes%s\n", d.cookingTime, cookingNote)
	fmt.Fprintf(&b, "Portions: %d\n", d.portions)
	fmt.Fprintf(&b, "Required Cooking Time: %d minutes\n", f.RequiredCookingTime())
	fmt.Fprintf(&b, "Optimal Temperature: %d°C\n", f.OptimalTemperature())
	b.WriteString("---------------------------")
	return b.String()
}

// Size is a pizza size.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Pizza is an Italian dish served at 65°C whose cooking time and portions
// grow with its size.
type Pizza struct {
	dish
	size     Size
	toppings []string
}

// NewPizza creates a cheese and tomato pizza. Sizes other than small and
// large are treated as medium.
func NewPizza(name string, size Size) *Pizza {
	portions := 4
	switch size {
	case SizeSmall:
		portions = 2
	case SizeLarge:
		portions = 6
	default:
		size = SizeMedium
	}
	return &Pizza{
		dish:     newDish(name, "Italian", portions),
		size:     size,
		toppings: []string{"cheese", "tomato sauce"},
	}
}

func (p *Pizza) Size() Size { return p.size }

// Toppings returns a copy of the toppings.
func (p *Pizza) Toppings() []string { return append([]string(nil), p.toppings...) }

// AddTopping adds a topping and describes the change.
func (p *Pizza) AddTopping(topping string) string {
	p.toppings = append(p.toppings, topping)
	return fmt.Sprintf("Added %s to %s", topping, p.name)
}

func (p *Pizza) OptimalTemperature() int { return 65 }

func (p *Pizza) RequiredCookingTime() int {
	switch p.size {
	case SizeSmall:
		return 10
	case SizeLarge:
		return 20
	default:
		return 15
	}
}

func (p *Pizza) Info() string {
	return p.info(p, "",
		"Size: "+string(p.size),
		"Toppings: "+strings.Join(p.toppings, ", "))
}

// Salad is served cold and never cooked.
type Salad struct {
	dish
	dressing    string
	ingredients []string
}

// NewSalad creates a lettuce and tomato salad. An empty dressing means
// vinaigrette.
func NewSalad(name, dressing string) *Salad {
	if dressing == "" {
		dressing = "vinaigrette"
	}
	return &Salad{
		dish:        newDish(name, "Healthy", 2),
		dressing:    dressing,
		ingredients: []string{"lettuce", "tomatoes"},
	}
}

func (s *Salad) Dressing() string { return s.dressing }

// Ingredients returns a copy of the ingredients.
func (s *Salad) Ingredients() []string { return append([]string(nil), s.ingredients...) }

// AddIngredient adds an ingredient and describes the change.
func (s *Salad) AddIngredient(ingredient string) string {
	s.ingredients = append(s.ingredients, ingredient)
	return fmt.Sprintf("Added %s to %s", ingredient, s.name)
}

func (s *Salad) OptimalTemperature() int  { return 5 }
func (s *Salad) RequiredCookingTime() int { return 0 }

func (s *Salad) Info() string {
	return s.info(s, " (no cooking needed)",
		"Ingredients: "+strings.Join(s.ingredients, ", "),
		"Dressing: "+s.dressing)
}

// Soup is comfort food simmered for 25 minutes.
type Soup struct {
	dish
	broth       string
	ingredients []string
}

// NewSoup creates a soup of water and salt. An empty broth means vegetable.
func NewSoup(name, broth string) *Soup {
	if broth == "" {
		broth = "vegetable"
	}
	return &Soup{
		dish:        newDish(name, "Comfort Food", 3),
		broth:       broth,
		ingredients: []string{"water", "salt"},
	}
}

func (s *Soup) Broth() string { return s.broth }

// Ingredients returns a copy of the ingredients.
func (s *Soup) Ingredients() []string { return append([]string(nil), s.ingredients...) }

// AddIngredient adds an ingredient and describes the change.
func (s *Soup) AddIngredient(ingredient string) string {
	s.ingredients = append(s.ingredients, ingredient)
	return fmt.Sprintf("Added %s to %s", ingredient, s.name)
}

func (s *Soup) OptimalTemperature() int  { return 70 }
func (s *Soup) RequiredCookingTime() int { return 25 }

func (s *Soup) Info() string {
	return s.info(s, "",
		"Broth Type: "+s.broth,
		"Ingredients: "+strings.Join(s.ingredients, ", "))
}
