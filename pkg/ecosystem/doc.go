// Package ecosystem manages a small set of animals with four behavioural
// patterns.
//
//   - Observer: every Animal is a subject; a Manager attached to it is told
//     about each feed, move, treatment, sound and behaviour change.
//   - Strategy: an Animal delegates what it does to a swappable Behavior.
//   - Command: Feed, Move and Treat requests are objects run through an
//     Invoker that keeps an undo/redo history.
//   - Chain of Responsibility: a Request travels Emergency, Medical, Feeding,
//     Maintenance and Visitor handlers until one accepts it.
//
// Example usage:
//
//	m := ecosystem.NewManager("Keeper", ecosystem.WithOutput(os.Stdout))
//	simba := ecosystem.NewLion("Simba", "Pride Rock")
//	m.AddAnimal(simba)
//	simba.Feed() // the manager logs "Keeper observed: Simba - fed"
//
//	inv := ecosystem.NewInvoker()
//	inv.Execute(ecosystem.NewFeedCommand(m, "Simba"))
//	inv.Undo()
//
//	res := ecosystem.DefaultChain().Handle(ecosystem.FeedingRequest("Tigers need feeding", "Zookeeper"))
//	fmt.Println(res.Handler) // FeedingHandler
package ecosystem
