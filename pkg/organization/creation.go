package organization

import (
	"github.com/shopspring/decimal"

	"github.com/ajitpratap0/patternlab/pkg/dispatch"
	"github.com/ajitpratap0/patternlab/pkg/errors"
	"github.com/ajitpratap0/patternlab/pkg/person"
)

// Employee kinds understood by the creation strategies.
const (
	KindProgrammer = "programmer"
	KindManager    = "manager"
)

const (
	unknownAddress = "Unknown Address"
	unknownPhone   = "Unknown Phone"
)

// CreateOptions tunes a new employee. Zero values fall back to defaults.
type CreateOptions struct {
	Age     int    `json:"age,omitempty" yaml:"age,omitempty"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	Phone   string `json:"phone,omitempty" yaml:"phone,omitempty"`

	// Languages are added to a programmer's factory defaults.
	Languages []string `json:"languages,omitempty" yaml:"languages,omitempty"`

	// TeamSize overrides a manager's team size when set.
	TeamSize *int `json:"team_size,omitempty" yaml:"team_size,omitempty"`
}

// CreationStrategy creates one kind of employee.
type CreationStrategy interface {
	Kind() string
	DefaultAge() int
	Create(firstName, lastName string, salary decimal.Decimal, opts CreateOptions) Staff
}

func (o CreateOptions) person(firstName, lastName string, defaultAge int) person.Person {
	age := o.Age
	if age == 0 {
		age = defaultAge
	}
	address := o.Address
	if address == "" {
		address = unknownAddress
	}
	phone := o.Phone
	if phone == "" {
		phone = unknownPhone
	}
	return *person.NewBuilder(firstName, lastName).Age(age).Address(address).Phone(phone).Build()
}

// ProgrammerStrategy creates programmers through ProgrammerFactory.
type ProgrammerStrategy struct {
	Factory Factory
}

func (ProgrammerStrategy) Kind() string { return KindProgrammer }

func (ProgrammerStrategy) DefaultAge() int { return 25 }

func (s ProgrammerStrategy) Create(firstName, lastName string, salary decimal.Decimal, opts CreateOptions) Staff {
	staff := factoryOr(s.Factory, ProgrammerFactory{}).Create(opts.person(firstName, lastName, s.DefaultAge()), salary)
	if p, ok := staff.(*Programmer); ok {
		for _, l := range opts.Languages {
			p.AddLanguage(l)
		}
	}
	return staff
}

// ManagerStrategy creates managers through ManagerFactory.
type ManagerStrategy struct {
	Factory Factory
}

func (ManagerStrategy) Kind() string { return KindManager }

func (ManagerStrategy) DefaultAge() int { return 30 }

func (s ManagerStrategy) Create(firstName, lastName string, salary decimal.Decimal, opts CreateOptions) Staff {
	staff := factoryOr(s.Factory, ManagerFactory{}).Create(opts.person(firstName, lastName, s.DefaultAge()), salary)
	if m, ok := staff.(*Manager); ok && opts.TeamSize != nil {
		m.SetTeamSize(*opts.TeamSize)
	}
	return staff
}

func factoryOr(f, def Factory) Factory {
	if f == nil {
		return def
	}
	return f
}

// CreationContext picks the strategy for an employee kind, ignoring case.
type CreationContext struct {
	selector *dispatch.Selector[string, CreationStrategy]
}

// NewCreationContext registers the programmer and manager strategies.
func NewCreationContext() *CreationContext {
	c := &CreationContext{selector: dispatch.New[string, CreationStrategy]("unknown", nil)}
	c.Register(ProgrammerStrategy{})
	c.Register(ManagerStrategy{})
	return c
}

// Register adds s after the existing strategies.
func (c *CreationContext) Register(s CreationStrategy) {
	c.selector.Add(dispatch.Rule[string, CreationStrategy]{
		Name:    s.Kind(),
		Matches: dispatch.EqualFold(s.Kind()),
		Handler: s,
	})
}

// Strategy returns the strategy handling kind.
func (c *CreationContext) Strategy(kind string) (CreationStrategy, error) {
	s, _, ok := c.selector.Select(kind)
	if !ok {
		return nil, errors.NotFound("employee type", kind)
	}
	return s, nil
}

// Kinds lists the registered kinds in match order.
func (c *CreationContext) Kinds() []string {
	names := c.selector.Names()
	return names[:len(names)-1]
}
