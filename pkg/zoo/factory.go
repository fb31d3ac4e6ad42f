package zoo

import (
	"go.uber.org/zap"

	"github.com/ajitpratap0/patternlab/pkg/dispatch"
	"github.com/ajitpratap0/patternlab/pkg/errors"
	"github.com/ajitpratap0/patternlab/pkg/logger"
)

// Factory creates animals and plants from a case-insensitive kind name.
// Unknown kinds reach a fallback that creates nothing.
type Factory struct {
	animals *dispatch.Selector[string, func() Animal]
	plants  *dispatch.Selector[string, func() Plant]
	logger  *zap.Logger
}

// NewFactory registers dog, cat, tree and flower.
func NewFactory(log *zap.Logger) *Factory {
	f := &Factory{
		animals: dispatch.New[string, func() Animal]("unknown animal", nil),
		plants:  dispatch.New[string, func() Plant]("unknown plant", nil),
		logger:  logger.OrNop(log),
	}
	f.RegisterAnimal("dog", func() Animal { return Dog{} })
	f.RegisterAnimal("cat", func() Animal { return Cat{} })
	f.RegisterPlant("tree", func() Plant { return Tree{} })
	f.RegisterPlant("flower", func() Plant { return Flower{} })
	return f
}

// RegisterAnimal adds a kind after the existing ones.
func (f *Factory) RegisterAnimal(kind string, create func() Animal) {
	f.animals.Add(dispatch.Rule[string, func() Animal]{
		Name:    kind,
		Matches: dispatch.EqualFold(kind),
		Handler: create,
	})
}

// RegisterPlant adds a kind after the existing ones.
func (f *Factory) RegisterPlant(kind string, create func() Plant) {
	f.plants.Add(dispatch.Rule[string, func() Plant]{
		Name:    kind,
		Matches: dispatch.EqualFold(kind),
		Handler: create,
	})
}

// CreateAnimal returns a new animal of kind, or nil and a not found error.
func (f *Factory) CreateAnimal(kind string) (Animal, error) {
	create, rule, ok := f.animals.Select(kind)
	if !ok || create == nil {
		f.logger.Debug("no animal strategy matched", zap.String("kind", kind), zap.String("rule", rule))
		return nil, errors.NotFound("animal type", kind)
	}
	return create(), nil
}

// CreatePlant returns a new plant of kind, or nil and a not found error.
func (f *Factory) CreatePlant(kind string) (Plant, error) {
	create, rule, ok := f.plants.Select(kind)
	if !ok || create == nil {
		f.logger.Debug("no plant strategy matched", zap.String("kind", kind), zap.String("rule", rule))
		return nil, errors.NotFound("plant type", kind)
	}
	return create(), nil
}
