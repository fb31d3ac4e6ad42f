// Package organization models a company as a tree of departments and
// employees, with factories and creation strategies for staff and a Facade
// that ties the tree, the notification services and the enhancement layers
// together.
package organization

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ajitpratap0/patternlab/pkg/enhancement"
)

// Component is a node of the organisation tree. Departments are composites;
// employees are leaves and refuse children.
type Component interface {
	ID() string
	Name() string
	Salary() decimal.Decimal
	EmployeeCount() int
	Display(indent int) string
	Add(c Component) error
	Remove(c Component) error
	Children() []Component
}

// Staff is an employee usable both as a tree leaf and as the base of an
// enhancement chain.
type Staff interface {
	Component
	enhancement.Component
	Position() string
	Record() *Employee
}

func indentation(indent int) string {
	if indent <= 0 {
		return ""
	}
	return strings.Repeat("  ", indent)
}

func money(d decimal.Decimal) string {
	return "$" + d.String()
}
