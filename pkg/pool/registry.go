package pool

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/ajitpratap0/patternlab/pkg/logger"
)

// Registry holds one shared pool per element type.
//
// The first GetInstance call for a type decides that pool's capacity, factory
// and reset function. Later calls return the same pool and ignore their
// arguments, including a different capacity.
type Registry struct {
	mu     sync.Mutex
	pools  map[reflect.Type]any
	logger *zap.Logger
}

// Default is the process-wide registry used by the command line demos.
// Tests should create their own with NewRegistry.
var Default = NewRegistry(nil)

// NewRegistry creates an empty registry. A nil logger disables logging.
func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{
		pools:  make(map[reflect.Type]any),
		logger: logger.OrNop(log),
	}
}

// GetInstance returns the shared pool for T held by r, creating it with the
// given capacity, factory and reset on the first call only.
func GetInstance[T any](r *Registry, capacity int, factory func() T, reset func(T), opts ...Option) *Pool[T] {
	key := reflect.TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.pools[key]; ok {
		p := existing.(*Pool[T])
		if capacity != p.capacity {
			r.logger.Debug("shared pool already configured, ignoring capacity",
				zap.String("pool", p.name),
				zap.Int("configured", p.capacity),
				zap.Int("requested", capacity))
		}
		return p
	}

	p := New(capacity, factory, reset, opts...)
	r.pools[key] = p
	r.logger.Info("shared pool created",
		zap.String("pool", p.name),
		zap.Int("capacity", p.capacity))
	return p
}

// Len returns the number of shared pools held by r.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pools)
}
