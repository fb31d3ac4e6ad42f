package zoo

// Ecosystem creates an animal and a plant that belong together.
type Ecosystem interface {
	Name() string
	Animal() Animal
	Plant() Plant
}

// Forest pairs dogs with trees.
type Forest struct{}

func (Forest) Name() string   { return "Forest" }
func (Forest) Animal() Animal { return Dog{} }
func (Forest) Plant() Plant   { return Tree{} }

// Garden pairs cats with flowers.
type Garden struct{}

func (Garden) Name() string   { return "Garden" }
func (Garden) Animal() Animal { return Cat{} }
func (Garden) Plant() Plant   { return Flower{} }
