// Package pool provides a bounded, LIFO object pool for resettable values.
//
// A Pool hands out idle instances before constructing new ones, resets every
// instance on its way back in, and never stores more than its capacity.
// Releasing into a full pool drops the instance.
//
// Example usage:
//
//	people := pool.New(3,
//	    func() *Person { return &Person{} },
//	    func(p *Person) { p.Reset() },
//	)
//	p := people.Borrow()
//	p.FirstName = "Ada"
//	people.Release(p)
package pool

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/ajitpratap0/patternlab/pkg/logger"
	"github.com/ajitpratap0/patternlab/pkg/metrics"
)

// Resettable is implemented by values that can return to a canonical empty state.
type Resettable interface {
	Reset()
}

// Stats is a snapshot of pool activity.
type Stats struct {
	// Created counts instances constructed by the factory
	Created int64 `json:"created"`
	// Reused counts borrows served from idle storage
	Reused int64 `json:"reused"`
	// Released counts non-nil instances handed back
	Released int64 `json:"released"`
	// Discarded counts releases dropped because the pool was full
	Discarded int64 `json:"discarded"`
	// InUse is borrows minus releases; it goes negative if callers release
	// instances the pool never handed out.
	InUse int64 `json:"in_use"`
	// Idle is the number of instances currently stored
	Idle int `json:"idle"`
	// Capacity is the configured bound
	Capacity int `json:"capacity"`
}

// Pool represents a bounded object pool with stack semantics.
// It is safe for concurrent use.
type Pool[T any] struct {
	mu       sync.Mutex
	idle     []T
	capacity int
	factory  func() T
	reset    func(T)
	name     string
	logger   *zap.Logger
	metrics  *metrics.PoolCollector
	stats    Stats
}

// Option configures a Pool.
type Option func(*options)

type options struct {
	name    string
	logger  *zap.Logger
	metrics *metrics.PoolCollector
}

// WithName labels the pool in logs.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithLogger sets the logger used for lifecycle debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics attaches a Prometheus collector to the pool.
func WithMetrics(c *metrics.PoolCollector) Option {
	return func(o *options) { o.metrics = c }
}

// New creates a pool that stores at most capacity idle instances.
// factory is called whenever no idle instance is available; reset is called on
// every non-nil instance passed to Release and may be nil.
// A capacity below zero is treated as zero, which makes every release a discard.
func New[T any](capacity int, factory func() T, reset func(T), opts ...Option) *Pool[T] {
	o := options{name: typeName[T]()}
	for _, opt := range opts {
		opt(&o)
	}
	if capacity < 0 {
		capacity = 0
	}

	p := &Pool[T]{
		idle:     make([]T, 0, capacity),
		capacity: capacity,
		factory:  factory,
		reset:    reset,
		name:     o.name,
		logger:   logger.OrNop(o.logger),
		metrics:  o.metrics,
	}
	p.stats.Capacity = capacity
	p.metrics.Configured(capacity)
	p.logger.Debug("pool created",
		zap.String("pool", p.name),
		zap.Int("capacity", capacity))
	return p
}

// NewResettable creates a pool whose reset step is the value's own Reset method.
func NewResettable[T Resettable](capacity int, factory func() T, opts ...Option) *Pool[T] {
	return New(capacity, factory, func(v T) { v.Reset() }, opts...)
}

// Borrow returns the most recently released idle instance, or a new one from
// the factory when the pool is empty. It never fails.
func (p *Pool[T]) Borrow() T {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stats.InUse++
	if n := len(p.idle); n > 0 {
		obj := p.idle[n-1]
		var zero T
		p.idle[n-1] = zero
		p.idle = p.idle[:n-1]
		p.stats.Reused++
		p.metrics.Borrowed(true, len(p.idle))
		return obj
	}

	p.stats.Created++
	p.metrics.Borrowed(false, len(p.idle))
	p.logger.Debug("pool miss, constructing instance", zap.String("pool", p.name))
	return p.factory()
}

// Release resets obj and stores it for reuse. A nil obj is ignored. When the
// pool already holds capacity idle instances, obj is reset and dropped.
//
// Callers must only release instances they currently hold; releasing the same
// instance twice stores it twice.
func (p *Pool[T]) Release(obj T) {
	if isNil(obj) {
		return
	}
	if p.reset != nil {
		p.reset(obj)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stats.Released++
	p.stats.InUse--
	if len(p.idle) < p.capacity {
		p.idle = append(p.idle, obj)
		p.metrics.Released(true, len(p.idle))
		return
	}

	p.stats.Discarded++
	p.metrics.Released(false, len(p.idle))
	p.logger.Debug("pool full, discarding instance",
		zap.String("pool", p.name),
		zap.Int("capacity", p.capacity))
}

// Idle returns the number of instances currently stored.
func (p *Pool[T]) Idle() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.idle)
}

// Capacity returns the configured bound on idle instances.
func (p *Pool[T]) Capacity() int {
	return p.capacity
}

// Name returns the pool label.
func (p *Pool[T]) Name() string {
	return p.name
}

// Stats returns a snapshot of the pool counters.
func (p *Pool[T]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.stats
	s.Idle = len(p.idle)
	return s
}

// isNil reports whether v is a nil pointer, map, slice, channel, func or interface.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
