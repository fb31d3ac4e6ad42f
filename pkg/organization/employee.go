package organization

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ajitpratap0/patternlab/pkg/errors"
	"github.com/ajitpratap0/patternlab/pkg/person"
)

// Position names.
const (
	PositionProgrammer = "Programmer"
	PositionManager    = "Manager"
)

// Employee is the leaf of the organisation tree.
type Employee struct {
	person.Person
	id       string
	salary   decimal.Decimal
	position string
}

func newEmployee(p person.Person, salary decimal.Decimal, position string) Employee {
	return Employee{
		Person:   p,
		id:       uuid.NewString(),
		salary:   salary,
		position: position,
	}
}

// ID is the UUID assigned when the employee was created.
func (e *Employee) ID() string { return e.id }

// Name is "<first> <last> (<position>)".
func (e *Employee) Name() string {
	return fmt.Sprintf("%s %s (%s)", e.FirstName, e.LastName, e.position)
}

// Position returns PositionProgrammer or PositionManager.
func (e *Employee) Position() string { return e.position }

// BaseSalary is the salary before any role bonus.
func (e *Employee) BaseSalary() decimal.Decimal { return e.salary }

// Salary is the base salary; roles with bonuses override it.
func (e *Employee) Salary() decimal.Decimal { return e.salary }

// EmployeeCount is always one for a leaf.
func (e *Employee) EmployeeCount() int { return 1 }

// Display shows the base salary, not role bonuses.
func (e *Employee) Display(indent int) string {
	return fmt.Sprintf("%sEmployee: %s - Salary: %s", indentation(indent), e.Name(), money(e.salary))
}

// Add always fails with an unsupported error; employees have no children.
func (e *Employee) Add(Component) error {
	return errors.New(errors.ErrorTypeUnsupported, "cannot add components to individual employees").
		WithDetail("employee", e.Name())
}

// Remove always fails with an unsupported error.
func (e *Employee) Remove(Component) error {
	return errors.New(errors.ErrorTypeUnsupported, "cannot remove components from individual employees").
		WithDetail("employee", e.Name())
}

// Children is always nil.
func (e *Employee) Children() []Component { return nil }

// Description is the name followed by the position.
func (e *Employee) Description() string {
	return e.Name() + " - " + e.position
}

// TotalCost equals the base salary.
func (e *Employee) TotalCost() decimal.Decimal { return e.salary }

// Responsibilities lists a single generic duty for the position.
func (e *Employee) Responsibilities() []string {
	return []string{fmt.Sprintf("Basic %s responsibilities", e.position)}
}

// Record returns the employee itself so wrappers can reach it.
func (e *Employee) Record() *Employee { return e }

// Programmer is an employee with a set of languages.
type Programmer struct {
	Employee
	languages []string
}

// NewProgrammer creates a programmer; duplicate languages are dropped.
func NewProgrammer(p person.Person, salary decimal.Decimal, languages ...string) *Programmer {
	pr := &Programmer{Employee: newEmployee(p, salary, PositionProgrammer)}
	for _, l := range languages {
		pr.AddLanguage(l)
	}
	return pr
}

// Languages returns a copy of the programmer's languages.
func (p *Programmer) Languages() []string {
	return slices.Clone(p.languages)
}

// AddLanguage adds language unless it is already known.
func (p *Programmer) AddLanguage(language string) {
	if !slices.Contains(p.languages, language) {
		p.languages = append(p.languages, language)
	}
}

// Description appends the known languages, if any.
func (p *Programmer) Description() string {
	d := p.Employee.Description()
	if len(p.languages) > 0 {
		d += fmt.Sprintf(" (Languages: %s)", strings.Join(p.languages, ", "))
	}
	return d
}

// Responsibilities lists the programming duties.
func (p *Programmer) Responsibilities() []string {
	return []string{
		"Write and maintain code",
		"Debug applications",
		"Code reviews",
		"Technical documentation",
	}
}

// ManagerBonusPerReport is paid per team member on top of a manager's salary.
var ManagerBonusPerReport = decimal.NewFromInt(1000)

// Manager is an employee paid a bonus per team member.
type Manager struct {
	Employee
	teamSize int
}

// NewManager creates a manager with the given team size.
func NewManager(p person.Person, salary decimal.Decimal, teamSize int) *Manager {
	return &Manager{
		Employee: newEmployee(p, salary, PositionManager),
		teamSize: teamSize,
	}
}

// TeamSize is the number of direct reports.
func (m *Manager) TeamSize() int { return m.teamSize }

// SetTeamSize changes the number of direct reports and so the bonus.
func (m *Manager) SetTeamSize(size int) { m.teamSize = size }

// Salary includes the per-report bonus.
func (m *Manager) Salary() decimal.Decimal {
	return m.salary.Add(ManagerBonusPerReport.Mul(decimal.NewFromInt(int64(m.teamSize))))
}

// TotalCost equals Salary, bonus included.
func (m *Manager) TotalCost() decimal.Decimal { return m.Salary() }

// Description appends the team size.
func (m *Manager) Description() string {
	return fmt.Sprintf("%s (Team Size: %d)", m.Employee.Description(), m.teamSize)
}

// Responsibilities lists the management duties.
func (m *Manager) Responsibilities() []string {
	return []string{
		"Team leadership",
		"Project planning",
		"Performance reviews",
		"Resource allocation",
		"Stakeholder communication",
	}
}
