// Package patternlab collects small, tested implementations of creational,
// structural and behavioural design patterns, wired together into a sample
// organisation, an animal ecosystem and a cafeteria.
//
// # Patterns
//
//  1. Object Pool: pool.Pool[T] keeps at most a fixed number of idle
//     instances, hands out the most recently returned one first and resets
//     every instance on its way back. pool.GetInstance shares one pool per
//     element type through a Registry; the first call fixes the capacity.
//
//  2. Decorator: enhancement layers add cost and responsibilities to any
//     enhancement.Component without changing it. Layers stack in any order
//     and each appends " + <label>" to the description.
//
//  3. Builder and Prototype: person.Builder assembles people fluently and
//     Person.Copy clones them through a builder.
//
//  4. Factory, Abstract Factory and Strategy: organization factories create
//     programmers and managers, divisions create junior and senior staff, and
//     creation strategies are selected by a first-match-wins dispatch.Selector.
//     zoo does the same for animals and plants.
//
//  5. Composite, Facade and Bridge: organization.Department nests
//     departments and employees, organization.Facade drives the whole tree, and
//     notification separates the kind of notice from its delivery channel.
//
//  6. Observer, Strategy, Command and Chain of Responsibility: every
//     ecosystem.Animal notifies its Manager of state changes and delegates what
//     it does to a Behavior. Feed, Move and Treat commands run through an
//     Invoker with undo and redo, and requests travel the Emergency, Medical,
//     Feeding, Maintenance and Visitor handlers until one accepts them.
//
//  7. Dependency inversion and quality strategies: cafeteria.Coordinator only
//     knows the cooking, serving and quality interfaces, so the Oven can be
//     swapped for a Stovetop. The Inspector picks the first quality strategy
//     that handles a dish and falls back to a default verdict.
//
// # Quick Start
//
//	import (
//	    "github.com/ajitpratap0/patternlab/pkg/enhancement"
//	    "github.com/ajitpratap0/patternlab/pkg/organization"
//	    "github.com/shopspring/decimal"
//	)
//
//	f, _ := organization.NewFacade(organization.DefaultSettings(), nil)
//	f.CreateDepartment("Engineering", decimal.NewFromInt(500000), "")
//	dev, _ := f.CreateEmployee("Ada", "Lovelace", "programmer",
//	    decimal.NewFromInt(90000), "Engineering", organization.CreateOptions{})
//	senior := f.CreateEnhancedEmployee(dev, enhancement.Enhancements{Leadership: true})
//	fmt.Println(senior.TotalCost()) // 100000
//
// # Key Packages
//
//	pkg/pool          - Bounded LIFO object pool and per-type registry
//	pkg/enhancement   - Cost and responsibility decorators
//	pkg/person        - Person records, builder, prototype and pooling
//	pkg/organization  - Departments, employees, factories, strategies, facade
//	pkg/notification  - Notice kinds bridged to delivery channels
//	pkg/zoo           - Name-based and family factories
//	pkg/ecosystem     - Observed animals, behaviors, commands, request chain
//	pkg/cafeteria     - Dishes, cooking and serving services, quality control
//	pkg/dispatch      - First-match-wins selection with a fallback
//	pkg/config        - Viper-loaded application configuration
//	pkg/logger        - Zap logging with optional rotating file
//	pkg/metrics       - Prometheus metrics and text exposition
//	pkg/json          - goccy/go-json output through pooled buffers
//	cmd/patternlab    - Command line walkthroughs
//
// # Command Line
//
//	patternlab all                      # every walkthrough
//	patternlab org --json               # organisation statistics
//	patternlab --config lab.yaml pool   # pool demo with custom capacity
//	patternlab ecosystem                # observer, command and chain demo
//	patternlab cafeteria --json         # dish statuses after processing
//	patternlab metrics                  # run everything, print metrics
//	patternlab config show              # effective configuration
//
// Configuration is read from YAML and PATTERNLAB_* environment variables; a
// .env file in the working directory is loaded first.
package patternlab
