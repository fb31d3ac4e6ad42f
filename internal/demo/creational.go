package demo

import (
	"context"

	"go.uber.org/zap"

	"github.com/ajitpratap0/patternlab/pkg/person"
	"github.com/ajitpratap0/patternlab/pkg/zoo"
)

// Builder shows the fluent builder, prototype copies and the presets.
func (r *Runner) Builder(ctx context.Context) error {
	log := r.log(ctx, "builder")
	p := &printer{w: r.out}

	p.heading("Builder Pattern Demo")
	original := person.NewBuilder("josh", "doe").Address("myHome").Build()
	clone := original.Copy()
	p.println(original.String())
	p.println(clone.String())

	clone.FirstName = "jane"
	p.printf("Copy is independent: %t\n", original.FirstName == "josh")
	if err := r.pause(ctx); err != nil {
		return err
	}

	p.println()
	p.println("Presets:")
	presets := []struct {
		label string
		b     *person.Builder
	}{
		{"Standard", person.StandardEmployee("Sam", "Standard")},
		{"Senior", person.SeniorEmployee("Sue", "Senior")},
		{"Executive", person.Executive("Ed", "Executive")},
	}
	for _, preset := range presets {
		p.printf("  %s: %s\n", preset.label, preset.b.Build())
	}

	log.Debug("builder demo finished", zap.Int("presets", len(presets)))
	return p.err
}

// Pool borrows and returns people through the shared person pool.
func (r *Runner) Pool(ctx context.Context) error {
	log := r.log(ctx, "pool")
	p := &printer{w: r.out}
	people := person.SharedPool(r.registry, r.cfg.Pool.PersonCapacity, r.poolOptions()...)

	p.heading("Object Pool Pattern Demo")
	first := people.Borrow()
	first.FirstName, first.LastName = "Resource 1", "Damn"
	p.printf("Borrowed: %s\n", first)

	second := people.Borrow()
	second.FirstName, second.LastName = "Resource 2", "Cool"
	p.printf("Borrowed: %s\n", second)

	people.Release(first)
	people.Release(second)
	if err := r.pause(ctx); err != nil {
		return err
	}

	reused := people.Borrow()
	p.printf("Reused: %s\n", reused)
	p.printf("Most recently returned instance reused: %t\n", reused == second)
	people.Release(reused)

	st := people.Stats()
	p.printf("Pool %q: idle=%d capacity=%d created=%d reused=%d discarded=%d\n",
		people.Name(), st.Idle, st.Capacity, st.Created, st.Reused, st.Discarded)

	log.Debug("pool demo finished", zap.Int("idle", st.Idle))
	return p.err
}

// Zoo creates animals and plants by name and by family.
func (r *Runner) Zoo(ctx context.Context) error {
	log := r.log(ctx, "zoo")
	p := &printer{w: r.out}
	factory := zoo.NewFactory(log)

	p.heading("Factory Pattern Demo")
	for _, kind := range []string{"dog", "cat", "unicorn"} {
		a, err := factory.CreateAnimal(kind)
		if err != nil {
			p.printf("  %s: %v\n", kind, err)
			continue
		}
		p.printf("  %s: %s\n", kind, a.Sound())
	}
	for _, kind := range []string{"tree", "flower"} {
		plant, err := factory.CreatePlant(kind)
		if err != nil {
			p.printf("  %s: %v\n", kind, err)
			continue
		}
		p.printf("  %s: %s\n", kind, plant.Grow())
	}
	if err := r.pause(ctx); err != nil {
		return err
	}

	p.println()
	p.heading("Abstract Factory Pattern Demo")
	for _, eco := range []zoo.Ecosystem{zoo.Forest{}, zoo.Garden{}} {
		p.printf("%s ecosystem:\n", eco.Name())
		p.printf("  %s\n", eco.Animal().Sound())
		p.printf("  %s\n", eco.Plant().Grow())
	}
	return p.err
}
