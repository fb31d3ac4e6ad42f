// Package enhancement layers cost and responsibility contributions on top of an
// employee without changing the employee type.
//
// Each decorator wraps exactly one inner Component and reaches one level into
// it for every call, so the composed result is always
//
//	TotalCost        = base cost + every delta
//	Responsibilities = base list ++ each layer's lines, in wrap order
//	Description      = base description + " + <label>" per layer, in wrap order
//
// Dropping the outermost reference undoes that layer exactly.
package enhancement

import "github.com/shopspring/decimal"

// Component is the capability set shared by employees and their decorators.
type Component interface {
	Description() string
	TotalCost() decimal.Decimal
	Responsibilities() []string
}

// Unwrapper is implemented by decorators to expose their inner component.
type Unwrapper interface {
	Unwrap() Component
}

// Unwrap returns the component wrapped by c, or nil when c is not a decorator.
func Unwrap(c Component) Component {
	if u, ok := c.(Unwrapper); ok {
		return u.Unwrap()
	}
	return nil
}

// Depth counts the decorator layers above the base component.
func Depth(c Component) int {
	depth := 0
	for inner := Unwrap(c); inner != nil; inner = Unwrap(inner) {
		depth++
	}
	return depth
}

// Base returns the innermost, undecorated component.
func Base(c Component) Component {
	for {
		inner := Unwrap(c)
		if inner == nil {
			return c
		}
		c = inner
	}
}

// layer holds the wrapped component and the bits shared by every decorator.
type layer struct {
	inner Component
}

func (l layer) Unwrap() Component {
	return l.inner
}

func (l layer) describe(label string) string {
	return l.inner.Description() + " + " + label
}

func (l layer) add(delta decimal.Decimal) decimal.Decimal {
	return l.inner.TotalCost().Add(delta)
}

func (l layer) extend(lines ...string) []string {
	base := l.inner.Responsibilities()
	out := make([]string, 0, len(base)+len(lines))
	out = append(out, base...)
	return append(out, lines...)
}
