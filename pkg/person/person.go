// Package person models the people that staff the organisation and shows three
// creational patterns on them: a fluent Builder, prototype copies, and a
// bounded pool of reusable Person records.
package person

import (
	"fmt"

	"github.com/ajitpratap0/patternlab/pkg/pool"
)

// Person holds contact details. The zero value is the canonical empty person.
type Person struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Age       int    `json:"age" yaml:"age"`
	Address   string `json:"address,omitempty" yaml:"address,omitempty"`
	Phone     string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

// New returns an empty person; it is the factory used by person pools.
func New() *Person {
	return &Person{}
}

// FullName joins first and last name.
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p *Person) String() string {
	return fmt.Sprintf("Person{firstName='%s', lastName='%s', age=%d, address='%s', phone='%s'}",
		p.FirstName, p.LastName, p.Age, p.Address, p.Phone)
}

// Copy returns an independent clone built through a Builder.
func (p *Person) Copy() *Person {
	b := NewBuilder(p.FirstName, p.LastName)
	if p.Age != 0 {
		b.Age(p.Age)
	}
	if p.Address != "" {
		b.Address(p.Address)
	}
	if p.Phone != "" {
		b.Phone(p.Phone)
	}
	return b.Build()
}

// Reset clears every field so the record can be pooled.
func (p *Person) Reset() {
	*p = Person{}
}

// IsEmpty reports whether p is in its reset state.
func (p *Person) IsEmpty() bool {
	return *p == Person{}
}

// NewPool creates an isolated pool holding at most capacity idle people.
func NewPool(capacity int, opts ...pool.Option) *pool.Pool[*Person] {
	opts = append([]pool.Option{pool.WithName("person")}, opts...)
	return pool.NewResettable(capacity, New, opts...)
}

// SharedPool returns the person pool held by r. Only the first call's capacity
// is used; see pool.GetInstance.
func SharedPool(r *pool.Registry, capacity int, opts ...pool.Option) *pool.Pool[*Person] {
	opts = append([]pool.Option{pool.WithName("person")}, opts...)
	return pool.GetInstance(r, capacity, New, (*Person).Reset, opts...)
}
