// Package zoo creates animals and plants by name, or as matching families
// through Forest and Garden.
package zoo

// Animal is anything that makes a sound.
type Animal interface {
	Kind() string
	Sound() string
}

// Plant is anything that grows.
type Plant interface {
	Kind() string
	Grow() string
}

type Dog struct{}

func (Dog) Kind() string  { return "dog" }
func (Dog) Sound() string { return "Woof!" }

type Cat struct{}

func (Cat) Kind() string  { return "cat" }
func (Cat) Sound() string { return "Meow!" }

type Tree struct{}

func (Tree) Kind() string { return "tree" }
func (Tree) Grow() string { return "Tree is growing tall" }

type Flower struct{}

func (Flower) Kind() string { return "flower" }
func (Flower) Grow() string { return "Flower is blooming" }
