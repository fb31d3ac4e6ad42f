// Package pool implements the bounded object pool used by patternlab to
// recycle resettable values such as person records.
//
// # Lifecycle
//
// Every instance moves through a small state machine:
//
//	Idle --Borrow--> Borrowed --Release--> Idle
//	                 Borrowed --Release (pool full)--> Discarded
//
// Discarded instances are left to the garbage collector and never come back.
//
// # Core Types
//
//   - Pool[T]: bounded LIFO storage with a factory and a reset function
//   - Registry: one shared Pool per element type, first configuration wins
//   - Stats: created/reused/released/discarded counters
//
// # Usage Patterns
//
// Isolated pool:
//
//	p := pool.NewResettable(3, person.New)
//	alice := p.Borrow()
//	alice.FirstName = "Alice"
//	p.Release(alice) // reset, then stored
//
// Shared pool:
//
//	p := pool.GetInstance(pool.Default, 3, person.New, (*person.Person).Reset)
//	same := pool.GetInstance(pool.Default, 10, person.New, (*person.Person).Reset)
//	// same == p and same.Capacity() == 3
//
// The second capacity being ignored is deliberate and matches the behaviour
// the demos document. Use a fresh Registry (or New) to get a differently sized
// pool.
//
// # Guarantees
//
//   - Idle() never exceeds Capacity()
//   - Borrow never fails; it falls back to the factory
//   - Release(nil) is a no-op
//   - Every released instance is reset before it can be borrowed again
//
// The pool does not detect double release. Releasing an instance you do not
// hold can store it twice.
package pool
