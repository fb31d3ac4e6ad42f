// Package pool provides example usage of the bounded object pool.
package pool_test

import (
	"fmt"

	"github.com/ajitpratap0/patternlab/pkg/pool"
)

type ticket struct {
	Holder string
	Seat   int
}

func (t *ticket) Reset() {
	t.Holder = ""
	t.Seat = 0
}

// Example demonstrates borrowing, releasing and reusing an instance.
func Example() {
	tickets := pool.NewResettable(2, func() *ticket { return &ticket{} })

	t := tickets.Borrow()
	t.Holder = "Ada"
	t.Seat = 12
	tickets.Release(t)

	reused := tickets.Borrow()
	fmt.Println(reused == t)
	fmt.Printf("%q %d\n", reused.Holder, reused.Seat)

	// Output:
	// true
	// "" 0
}

// ExampleGetInstance shows that the first configuration of a shared pool wins.
func ExampleGetInstance() {
	registry := pool.NewRegistry(nil)

	p := pool.GetInstance(registry, 3, func() *ticket { return &ticket{} }, (*ticket).Reset)
	again := pool.GetInstance(registry, 10, func() *ticket { return &ticket{} }, (*ticket).Reset)

	fmt.Println(p == again, again.Capacity())

	// Output:
	// true 3
}

// ExamplePool_Release shows the capacity bound.
func ExamplePool_Release() {
	p := pool.NewResettable(1, func() *ticket { return &ticket{} })

	a, b := p.Borrow(), p.Borrow()
	p.Release(a)
	p.Release(b) // pool already holds one idle ticket, b is discarded
	p.Release(nil)

	s := p.Stats()
	fmt.Println(p.Idle(), s.Discarded)

	// Output:
	// 1 1
}
