package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

type gadget struct{ Label string }

func (g *gadget) Reset() { g.Label = "" }

func TestRegistry_FirstConfigurationWins(t *testing.T) {
	r := NewRegistry(zaptest.NewLogger(t))

	first := GetInstance(r, 3, newWidget, (*widget).Reset)
	second := GetInstance(r, 10, newWidget, (*widget).Reset)

	assert.Same(t, first, second)
	assert.Equal(t, 3, second.Capacity(), "a later capacity is ignored")
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_SharedStateAcrossCallers(t *testing.T) {
	r := NewRegistry(nil)

	w := GetInstance(r, 2, newWidget, (*widget).Reset).Borrow()
	GetInstance(r, 2, newWidget, (*widget).Reset).Release(w)

	assert.Same(t, w, GetInstance(r, 2, newWidget, (*widget).Reset).Borrow())
}

func TestRegistry_OnePoolPerType(t *testing.T) {
	r := NewRegistry(nil)

	widgets := GetInstance(r, 1, newWidget, (*widget).Reset)
	gadgets := GetInstance(r, 5, func() *gadget { return &gadget{} }, (*gadget).Reset)

	assert.Equal(t, 1, widgets.Capacity())
	assert.Equal(t, 5, gadgets.Capacity())
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_IsolatedRegistries(t *testing.T) {
	a := GetInstance(NewRegistry(nil), 1, newWidget, (*widget).Reset)
	b := GetInstance(NewRegistry(nil), 7, newWidget, (*widget).Reset)

	assert.NotSame(t, a, b)
	assert.Equal(t, 7, b.Capacity())
}

func TestRegistry_ConcurrentFirstCall(t *testing.T) {
	r := NewRegistry(nil)

	results := make([]*Pool[*widget], 32)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = GetInstance(r, i+1, newWidget, (*widget).Reset)
		}(i)
	}
	wg.Wait()

	for _, p := range results {
		assert.Same(t, results[0], p)
	}
	assert.Equal(t, 1, r.Len())
}
