package organization

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Department is the composite node of the organisation tree.
type Department struct {
	id         string
	name       string
	budget     decimal.Decimal
	components []Component
}

// NewDepartment creates an empty department.
func NewDepartment(name string, budget decimal.Decimal) *Department {
	return &Department{
		id:     uuid.NewString(),
		name:   name,
		budget: budget,
	}
}

func (d *Department) ID() string { return d.id }

func (d *Department) Name() string { return d.name }

func (d *Department) Budget() decimal.Decimal { return d.budget }

// Salary sums the salaries of every employee below d.
func (d *Department) Salary() decimal.Decimal {
	total := decimal.Zero
	for _, c := range d.components {
		total = total.Add(c.Salary())
	}
	return total
}

// EmployeeCount counts the employees below d.
func (d *Department) EmployeeCount() int {
	n := 0
	for _, c := range d.components {
		n += c.EmployeeCount()
	}
	return n
}

func (d *Department) Display(indent int) string {
	pad := indentation(indent)
	var b strings.Builder
	fmt.Fprintf(&b, "%sDepartment: %s (Budget: %s)\n", pad, d.name, money(d.budget))
	fmt.Fprintf(&b, "%sTotal Employees: %d, Total Salary: %s\n", pad, d.EmployeeCount(), money(d.Salary()))
	for _, c := range d.components {
		b.WriteString(c.Display(indent + 1))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// Add appends c. A component whose ID is already a direct child is ignored,
// so salary and employee totals count it once; distinct employees with the
// same name are still added.
func (d *Department) Add(c Component) error {
	if d.indexOf(c) < 0 {
		d.components = append(d.components, c)
	}
	return nil
}

// Remove detaches c if it is a direct child.
func (d *Department) Remove(c Component) error {
	if i := d.indexOf(c); i >= 0 {
		d.components = slices.Delete(d.components, i, i+1)
	}
	return nil
}

func (d *Department) indexOf(c Component) int {
	return slices.IndexFunc(d.components, func(x Component) bool { return x.ID() == c.ID() })
}

// Children returns a copy of the direct children.
func (d *Department) Children() []Component {
	return slices.Clone(d.components)
}

// WithinBudget reports whether the total salary does not exceed the budget.
func (d *Department) WithinBudget() bool {
	return d.Salary().LessThanOrEqual(d.budget)
}

// BudgetUtilization is the salary as a percentage of the budget, or zero for
// a department without budget.
func (d *Department) BudgetUtilization() decimal.Decimal {
	if d.budget.IsZero() {
		return decimal.Zero
	}
	return d.Salary().Div(d.budget).Mul(hundred)
}

// FindByName returns every component below d whose name contains name,
// ignoring case.
func (d *Department) FindByName(name string) []Component {
	needle := strings.ToLower(name)
	var out []Component
	for _, c := range d.components {
		if strings.Contains(strings.ToLower(c.Name()), needle) {
			out = append(out, c)
		}
		if sub, ok := c.(*Department); ok {
			out = append(out, sub.FindByName(name)...)
		}
	}
	return out
}

// FindDepartment returns d or the first department below it called name.
func (d *Department) FindDepartment(name string) (*Department, bool) {
	if d.name == name {
		return d, true
	}
	for _, c := range d.components {
		if sub, ok := c.(*Department); ok {
			if found, ok := sub.FindDepartment(name); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// Departments counts d and every department below it.
func (d *Department) Departments() int {
	n := 1
	for _, c := range d.components {
		if sub, ok := c.(*Department); ok {
			n += sub.Departments()
		}
	}
	return n
}
