package demo

import (
	"context"

	"go.uber.org/zap"

	"github.com/ajitpratap0/patternlab/pkg/cafeteria"
	"github.com/ajitpratap0/patternlab/pkg/ecosystem"
)

// Ecosystem walks a managed set of animals through the observer, strategy,
// command and chain of responsibility patterns and ends with the manager's
// report.
func (r *Runner) Ecosystem(ctx context.Context) error {
	log := r.log(ctx, "ecosystem")
	p := &printer{w: r.out}
	m := ecosystem.NewManager(r.cfg.Ecosystem.ManagerID,
		ecosystem.WithOutput(r.out),
		ecosystem.WithLogger(log),
	)

	p.heading("Observer Pattern - Animals Notify Their Manager")
	simba := ecosystem.NewLion("Simba", "Pride Rock")
	dumbo := ecosystem.NewElephant("Dumbo", "Elephant Valley")
	george := ecosystem.NewMonkey("Curious George", "Jungle")
	for _, a := range []*ecosystem.Animal{simba, dumbo, george} {
		m.AddAnimal(a)
	}
	p.println(simba.MakeSound())
	p.println(dumbo.Feed())
	p.println(george.MoveTo("Tree House"))
	p.println(simba.Treat("Vitamin supplements"))
	p.println("Simulating time passage...")
	for _, w := range m.PassTime() {
		p.println(w)
	}
	if err := r.pause(ctx); err != nil {
		return err
	}

	p.println()
	p.heading("Strategy Pattern - Swapping Behaviors")
	behaviors := ecosystem.Behaviors()
	for i, a := range m.Animals() {
		p.printf("%s: %s\n", a.Name(), a.PerformBehavior())
		for j := range 2 {
			b := behaviors[(2*i+j)%len(behaviors)]
			p.printf("  %s\n", a.SetBehavior(b))
			p.printf("  %s: %s\n", a.Name(), a.PerformBehavior())
		}
	}
	if err := r.pause(ctx); err != nil {
		return err
	}

	p.println()
	p.heading("Command Pattern - Undo and Redo")
	inv := ecosystem.NewInvoker()
	for _, c := range []ecosystem.Command{
		ecosystem.NewFeedCommand(m, "Simba"),
		ecosystem.NewMoveCommand(m, "Dumbo", "Watering Hole"),
		ecosystem.NewTreatCommand(m, "Curious George", "Health Check"),
		ecosystem.NewFeedCommand(m, "Dumbo"),
		ecosystem.NewMoveCommand(m, "Simba", "Hunting Grounds"),
	} {
		p.println(inv.Execute(c))
	}
	p.println("Command History:")
	for _, line := range inv.History() {
		p.printf("  %s\n", line)
	}
	for range 3 {
		if msg, ok := inv.Undo(); ok {
			p.printf("Undo: %s\n", msg)
		}
	}
	for range 2 {
		if msg, ok := inv.Redo(); ok {
			p.printf("Redo: %s\n", msg)
		}
	}
	cur, total := inv.Position()
	p.printf("History position: %d/%d\n", cur, total)
	if err := r.pause(ctx); err != nil {
		return err
	}

	p.println()
	p.heading("Chain of Responsibility - Routing Requests")
	chain := ecosystem.DefaultChain()
	for _, req := range []ecosystem.Request{
		ecosystem.EmergencyRequest("Lion escaped from enclosure!", "Security Guard"),
		ecosystem.MedicalRequest("Elephant showing signs of illness", "Veterinarian", 4),
		ecosystem.FeedingRequest("Tigers need feeding", "Zookeeper"),
		ecosystem.MaintenanceRequest("Broken fence in monkey habitat", "Maintenance Staff", 3),
		ecosystem.VisitorRequest("Where is the gift shop?", "Tourist"),
		ecosystem.MedicalRequest("Routine health checkup for penguins", "Vet Tech", 2),
		ecosystem.MaintenanceRequest("Replace burnt light bulb", "Janitor", 1),
		ecosystem.EmergencyRequest("Visitor injury in lion area", "First Aid"),
	} {
		res := chain.Handle(req)
		p.printf("Request: %s (Type: %s, Priority: %d, From: %s)\n", req.Description, req.Type, req.Priority, req.Requester)
		for _, name := range res.Passed {
			p.printf("  %s passed it on\n", name)
		}
		p.printf("  %s\n", res.Response)
		for _, action := range res.Actions {
			p.printf("    - %s\n", action)
		}
	}
	if err := r.pause(ctx); err != nil {
		return err
	}

	p.println()
	p.println(m.Report())

	log.Info("ecosystem demo finished",
		zap.Int("animals", len(m.Animals())),
		zap.Int("activities", len(m.Activity())),
	)
	return p.err
}

// Cafeteria processes three dishes through an oven-backed coordinator and
// then swaps in the stovetop. With asJSON only the final dish statuses are
// printed.
func (r *Runner) Cafeteria(ctx context.Context, asJSON bool) error {
	log := r.log(ctx, "cafeteria")
	coord := cafeteria.NewCoordinator(cafeteria.NewOven(), cafeteria.NewTableService(), cafeteria.NewInspector(), log)

	pizza := cafeteria.NewPizza("Margherita Pizza", cafeteria.SizeLarge)
	salad := cafeteria.NewSalad("Caesar Salad", "ranch")
	soup := cafeteria.NewSoup("Tomato Soup", "vegetable")
	foods := []cafeteria.Food{pizza, salad, soup}

	if asJSON {
		statuses := make(map[string]cafeteria.FoodStatus, len(foods))
		for _, f := range foods {
			coord.ProcessOrder(f)
			statuses[f.Name()] = coord.Status(f)
		}
		return writeJSON(r.out, statuses)
	}

	p := &printer{w: r.out}
	p.heading("Cafeteria - Dishes")
	for _, f := range foods {
		p.println(f.Info())
	}
	p.println(pizza.AddTopping("pepperoni"))
	p.println(salad.AddIngredient("croutons"))
	p.println(soup.AddIngredient("herbs"))
	if err := r.pause(ctx); err != nil {
		return err
	}

	p.println()
	p.heading("Cafeteria - Processing Orders")
	for _, f := range foods {
		p.printf("Processing %s:\n", f.Name())
		for _, step := range coord.ProcessOrder(f) {
			p.printf("  %s\n", step)
		}
		st := coord.Status(f)
		p.printf("  Status: cooking=%s temperature=%s ready=%t\n", st.Cooking, st.Temperature, st.ReadyToServe)
	}
	if err := r.pause(ctx); err != nil {
		return err
	}

	p.println()
	p.heading("Cafeteria - Swapping the Cooking Service")
	coord.UpdateCookingService(cafeteria.NewStovetop())
	p.println("Switched to stovetop cooking")
	stew := cafeteria.NewSoup("Beef Stew", "beef")
	for _, step := range coord.ProcessOrder(stew) {
		p.printf("  %s\n", step)
	}

	log.Debug("cafeteria demo finished", zap.Int("orders", len(foods)+1))
	return p.err
}
