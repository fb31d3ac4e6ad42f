package zoo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ajitpratap0/patternlab/pkg/errors"
)

func TestFactory_CreateAnimal(t *testing.T) {
	f := NewFactory(zaptest.NewLogger(t))

	tests := []struct {
		kind  string
		sound string
	}{
		{"dog", "Woof!"},
		{"DOG", "Woof!"},
		{"Cat", "Meow!"},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			a, err := f.CreateAnimal(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.sound, a.Sound())
		})
	}
}

func TestFactory_CreatePlant(t *testing.T) {
	f := NewFactory(nil)

	p, err := f.CreatePlant("Tree")
	require.NoError(t, err)
	assert.Equal(t, "Tree is growing tall", p.Grow())

	p, err = f.CreatePlant("flower")
	require.NoError(t, err)
	assert.Equal(t, "flower", p.Kind())
}

func TestFactory_UnknownKind(t *testing.T) {
	f := NewFactory(nil)

	a, err := f.CreateAnimal("unicorn")
	assert.Nil(t, a)
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "unknown animal type: unicorn")

	p, err := f.CreatePlant("")
	assert.Nil(t, p)
	assert.True(t, errors.IsNotFound(err))
}

type parrot struct{}

func (parrot) Kind() string  { return "parrot" }
func (parrot) Sound() string { return "Squawk!" }

func TestFactory_Register(t *testing.T) {
	f := NewFactory(nil)
	f.RegisterAnimal("parrot", func() Animal { return parrot{} })
	f.RegisterAnimal("dog", func() Animal { return parrot{} })

	a, err := f.CreateAnimal("Parrot")
	require.NoError(t, err)
	assert.Equal(t, "Squawk!", a.Sound())

	a, err = f.CreateAnimal("dog")
	require.NoError(t, err)
	assert.Equal(t, "Woof!", a.Sound(), "earlier registration wins")
}

func TestEcosystems(t *testing.T) {
	tests := []struct {
		eco    Ecosystem
		animal string
		plant  string
	}{
		{Forest{}, "dog", "tree"},
		{Garden{}, "cat", "flower"},
	}
	for _, tt := range tests {
		t.Run(tt.eco.Name(), func(t *testing.T) {
			assert.Equal(t, tt.animal, tt.eco.Animal().Kind())
			assert.Equal(t, tt.plant, tt.eco.Plant().Kind())
		})
	}
}
