package person

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/patternlab/pkg/pool"
)

func TestBuilder(t *testing.T) {
	p := NewBuilder("josh", "doe").Address("myHome").Build()

	assert.Equal(t, "josh", p.FirstName)
	assert.Equal(t, "doe", p.LastName)
	assert.Equal(t, 0, p.Age)
	assert.Equal(t, "myHome", p.Address)
	assert.Equal(t, "", p.Phone)
	assert.Equal(t, "josh doe", p.FullName())
}

func TestBuilder_BuildReturnsFreshValues(t *testing.T) {
	b := NewBuilder("a", "b").Age(30)
	first := b.Build()
	second := b.Age(31).Build()

	assert.NotSame(t, first, second)
	assert.Equal(t, 30, first.Age)
	assert.Equal(t, 31, second.Age)
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
		age     int
		address string
		phone   string
	}{
		{"standard", StandardEmployee("a", "b"), 25, "Standard Address", "555-0000"},
		{"senior", SeniorEmployee("a", "b"), 35, "Senior District", "555-1000"},
		{"executive", Executive("a", "b"), 45, "Executive Plaza", "555-9000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.builder.Build()
			assert.Equal(t, tt.age, p.Age)
			assert.Equal(t, tt.address, p.Address)
			assert.Equal(t, tt.phone, p.Phone)
		})
	}
}

func TestCopy_IsIndependent(t *testing.T) {
	original := SeniorEmployee("Ada", "Lovelace").Build()
	clone := original.Copy()

	require.NotSame(t, original, clone)
	assert.Equal(t, *original, *clone)

	clone.Address = "Elsewhere"
	assert.Equal(t, "Senior District", original.Address)
}

func TestString(t *testing.T) {
	p := NewBuilder("josh", "doe").Address("myHome").Build()
	assert.Equal(t,
		"Person{firstName='josh', lastName='doe', age=0, address='myHome', phone=''}",
		p.String())
}

func TestReset(t *testing.T) {
	p := Executive("Grace", "Hopper").Build()
	require.False(t, p.IsEmpty())

	p.Reset()
	assert.True(t, p.IsEmpty())
}

func TestNewPool_ReusesResetPeople(t *testing.T) {
	people := NewPool(3)

	p1 := people.Borrow()
	p1.FirstName, p1.LastName = "Resource 1", "Damn"
	p2 := people.Borrow()
	p2.FirstName, p2.LastName = "Resource 2", "Cool"

	people.Release(p1)
	people.Release(p2)

	p3 := people.Borrow()
	assert.Same(t, p2, p3)
	assert.True(t, p3.IsEmpty())
	assert.Equal(t, "person", people.Name())
}

func TestSharedPool_FirstCapacityWins(t *testing.T) {
	r := pool.NewRegistry(nil)

	a := SharedPool(r, 3)
	b := SharedPool(r, 8)

	assert.Same(t, a, b)
	assert.Equal(t, 3, b.Capacity())
}
