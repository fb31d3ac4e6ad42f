// Package cafeteria cooks, inspects and serves dishes through swappable
// services.
//
// A Coordinator depends only on the CookingService, ServingService and
// QualityControl interfaces, so an Oven can be replaced by a Stovetop without
// touching it. New dishes implement Food; new quality grades are added to an
// Inspector with AddStrategy and are tried before the default verdict.
//
// Example usage:
//
//	c := cafeteria.NewCoordinator(cafeteria.NewOven(), cafeteria.NewTableService(), cafeteria.NewInspector(), logger)
//	pizza := cafeteria.NewPizza("Margherita Pizza", cafeteria.SizeLarge)
//	for _, step := range c.ProcessOrder(pizza) {
//		fmt.Println(step)
//	}
//	c.UpdateCookingService(cafeteria.NewStovetop())
package cafeteria
