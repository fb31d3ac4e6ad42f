package organization

import (
	"github.com/shopspring/decimal"

	"github.com/ajitpratap0/patternlab/pkg/person"
)

// Factory creates one kind of staff from a person record.
type Factory interface {
	Create(p person.Person, salary decimal.Decimal) Staff
}

// ProgrammerFactory creates programmers who know JavaScript and TypeScript.
type ProgrammerFactory struct{}

func (ProgrammerFactory) Create(p person.Person, salary decimal.Decimal) Staff {
	return NewProgrammer(p, salary, "JavaScript", "TypeScript")
}

// DefaultTeamSize is the team size given to managers by ManagerFactory.
const DefaultTeamSize = 5

// ManagerFactory creates managers with DefaultTeamSize reports.
type ManagerFactory struct{}

func (ManagerFactory) Create(p person.Person, salary decimal.Decimal) Staff {
	return NewManager(p, salary, DefaultTeamSize)
}

// DivisionFactory creates the junior and senior staff of a division.
type DivisionFactory interface {
	Junior(firstName, lastName string) Staff
	Senior(firstName, lastName string) Staff
}

// TechDivision staffs engineering.
type TechDivision struct{}

func (TechDivision) Junior(firstName, lastName string) Staff {
	p := person.NewBuilder(firstName, lastName).Age(24).Address("Tech City").Phone("555-0000").Build()
	return NewProgrammer(*p, decimal.NewFromInt(65000), "JavaScript")
}

func (TechDivision) Senior(firstName, lastName string) Staff {
	p := person.NewBuilder(firstName, lastName).Age(32).Address("Tech City").Phone("555-0001").Build()
	return NewProgrammer(*p, decimal.NewFromInt(95000), "JavaScript", "Python", "Go")
}

// ManagementDivision staffs management.
type ManagementDivision struct{}

func (ManagementDivision) Junior(firstName, lastName string) Staff {
	p := person.NewBuilder(firstName, lastName).Age(28).Address("Business District").Phone("555-0002").Build()
	return NewManager(*p, decimal.NewFromInt(75000), 2)
}

func (ManagementDivision) Senior(firstName, lastName string) Staff {
	p := person.NewBuilder(firstName, lastName).Age(38).Address("Business District").Phone("555-0003").Build()
	return NewManager(*p, decimal.NewFromInt(120000), 10)
}
