package organization

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/patternlab/pkg/enhancement"
	"github.com/ajitpratap0/patternlab/pkg/errors"
	"github.com/ajitpratap0/patternlab/pkg/person"
	"github.com/ajitpratap0/patternlab/pkg/testutil"
)

func alice() person.Person {
	return *person.StandardEmployee("Alice", "Smith").Build()
}

func bob() person.Person {
	return *person.SeniorEmployee("Bob", "Jones").Build()
}

func TestProgrammer(t *testing.T) {
	p := NewProgrammer(alice(), decimal.NewFromInt(80000), "Go", "Rust", "Go")

	assert.Equal(t, "Alice Smith (Programmer)", p.Name())
	assert.Equal(t, []string{"Go", "Rust"}, p.Languages())
	assert.Equal(t, "Alice Smith (Programmer) - Programmer (Languages: Go, Rust)", p.Description())
	testutil.RequireDecimal(t, "80000", p.TotalCost())
	assert.Len(t, p.Responsibilities(), 4)
	assert.NotEmpty(t, p.ID())
	assert.Equal(t, 1, p.EmployeeCount())

	langs := p.Languages()
	langs[0] = "COBOL"
	assert.Equal(t, []string{"Go", "Rust"}, p.Languages())
}

func TestProgrammer_NoLanguages(t *testing.T) {
	p := NewProgrammer(alice(), decimal.NewFromInt(1))
	assert.Equal(t, "Alice Smith (Programmer) - Programmer", p.Description())
}

func TestManager_SalaryIncludesTeamBonus(t *testing.T) {
	m := NewManager(bob(), decimal.NewFromInt(90000), 5)

	testutil.RequireDecimal(t, "95000", m.Salary())
	testutil.RequireDecimal(t, "95000", m.TotalCost())
	testutil.RequireDecimal(t, "90000", m.BaseSalary())
	assert.Equal(t, "Bob Jones (Manager) - Manager (Team Size: 5)", m.Description())
	assert.Equal(t, "Employee: Bob Jones (Manager) - Salary: $90000", m.Display(0))

	m.SetTeamSize(0)
	testutil.RequireDecimal(t, "90000", m.Salary())
	assert.Equal(t, "Team leadership", m.Responsibilities()[0])
}

func TestEmployee_Base(t *testing.T) {
	e := newEmployee(alice(), decimal.NewFromInt(50000), "Analyst")

	assert.Equal(t, "Alice Smith (Analyst) - Analyst", e.Description())
	assert.Equal(t, []string{"Basic Analyst responsibilities"}, e.Responsibilities())
	assert.Nil(t, e.Children())
	assert.Same(t, &e, e.Record())
}

func TestEmployee_RefusesChildren(t *testing.T) {
	p := NewProgrammer(alice(), decimal.NewFromInt(1))
	other := NewProgrammer(bob(), decimal.NewFromInt(1))

	err := p.Add(other)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnsupported))

	err = p.Remove(other)
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnsupported))
}

func TestStaffIsEnhanceable(t *testing.T) {
	var s Staff = NewProgrammer(alice(), decimal.NewFromInt(80000))

	e := enhancement.Apply(s, enhancement.Enhancements{
		Certifications: []string{"AWS"},
		Leadership:     true,
		OvertimeHours:  10,
		SpecialProject: "Apollo",
	})

	testutil.RequireDecimal(t, "103000", e.TotalCost())
	assert.Same(t, s, enhancement.Base(e))
}

func TestDepartment(t *testing.T) {
	eng := NewDepartment("Engineering", decimal.NewFromInt(200000))
	p := NewProgrammer(alice(), decimal.NewFromInt(80000))
	m := NewManager(bob(), decimal.NewFromInt(90000), 5)
	require.NoError(t, eng.Add(p))
	require.NoError(t, eng.Add(m))
	require.NoError(t, eng.Add(p))

	assert.Equal(t, 2, eng.EmployeeCount())
	testutil.RequireDecimal(t, "175000", eng.Salary())
	testutil.RequireDecimal(t, "87.5", eng.BudgetUtilization())
	assert.True(t, eng.WithinBudget())

	want := "Department: Engineering (Budget: $200000)\n" +
		"Total Employees: 2, Total Salary: $175000\n" +
		"  Employee: Alice Smith (Programmer) - Salary: $80000\n" +
		"  Employee: Bob Jones (Manager) - Salary: $90000"
	assert.Equal(t, want, eng.Display(0))

	require.NoError(t, eng.Remove(m))
	assert.Equal(t, 1, eng.EmployeeCount())
	assert.Len(t, eng.Children(), 1)
}

func TestDepartment_AddIgnoresSameID(t *testing.T) {
	d := NewDepartment("Platform", decimal.NewFromInt(500000))
	first := NewProgrammer(alice(), decimal.NewFromInt(80000))
	twin := NewProgrammer(alice(), decimal.NewFromInt(80000))

	for range 3 {
		require.NoError(t, d.Add(first))
	}
	require.NoError(t, d.Add(twin))

	assert.Equal(t, 2, d.EmployeeCount(), "same ID once, same name twice")
	testutil.RequireDecimal(t, "160000", d.Salary())
}

func TestDepartment_Budget(t *testing.T) {
	tests := []struct {
		name        string
		budget      int64
		salary      int64
		within      bool
		utilization string
	}{
		{"under", 100000, 50000, true, "50"},
		{"exact", 50000, 50000, true, "100"},
		{"over", 40000, 50000, false, "125"},
		{"no budget", 0, 50000, false, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDepartment("D", decimal.NewFromInt(tt.budget))
			require.NoError(t, d.Add(NewProgrammer(alice(), decimal.NewFromInt(tt.salary))))
			assert.Equal(t, tt.within, d.WithinBudget())
			testutil.RequireDecimal(t, tt.utilization, d.BudgetUtilization())
		})
	}
}

func TestDepartment_Nested(t *testing.T) {
	root := NewDepartment("Company", decimal.NewFromInt(1000000))
	eng := NewDepartment("Engineering", decimal.NewFromInt(300000))
	backend := NewDepartment("Backend", decimal.NewFromInt(150000))
	require.NoError(t, root.Add(eng))
	require.NoError(t, eng.Add(backend))
	require.NoError(t, backend.Add(NewProgrammer(alice(), decimal.NewFromInt(80000))))
	require.NoError(t, eng.Add(NewManager(bob(), decimal.NewFromInt(90000), 2)))

	assert.Equal(t, 2, root.EmployeeCount())
	testutil.RequireDecimal(t, "172000", root.Salary())
	assert.Equal(t, 3, root.Departments())

	found, ok := root.FindDepartment("Backend")
	require.True(t, ok)
	assert.Same(t, backend, found)

	_, ok = root.FindDepartment("Sales")
	assert.False(t, ok)

	hits := root.FindByName("alice")
	require.Len(t, hits, 1)
	assert.Equal(t, "Alice Smith (Programmer)", hits[0].Name())

	assert.Len(t, root.FindByName("END"), 1)
	assert.Len(t, root.FindByName("manager"), 1)
	assert.Empty(t, root.FindByName("zed"))

	assert.Contains(t, root.Display(0), "\n      Employee: Alice Smith (Programmer) - Salary: $80000")
}

func TestFactories(t *testing.T) {
	p := ProgrammerFactory{}.Create(alice(), decimal.NewFromInt(70000))
	require.IsType(t, &Programmer{}, p)
	assert.Equal(t, []string{"JavaScript", "TypeScript"}, p.(*Programmer).Languages())

	m := ManagerFactory{}.Create(bob(), decimal.NewFromInt(90000))
	require.IsType(t, &Manager{}, m)
	assert.Equal(t, DefaultTeamSize, m.(*Manager).TeamSize())
}

func TestDivisionFactories(t *testing.T) {
	tests := []struct {
		name      string
		create    func(first, last string) Staff
		age       int
		base      string
		position  string
		languages []string
		team      int
	}{
		{"tech junior", TechDivision{}.Junior, 24, "65000", PositionProgrammer, []string{"JavaScript"}, 0},
		{"tech senior", TechDivision{}.Senior, 32, "95000", PositionProgrammer, []string{"JavaScript", "Python", "Go"}, 0},
		{"management junior", ManagementDivision{}.Junior, 28, "75000", PositionManager, nil, 2},
		{"management senior", ManagementDivision{}.Senior, 38, "120000", PositionManager, nil, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.create("Sam", "Lee")
			assert.Equal(t, tt.position, s.Position())
			assert.Equal(t, tt.age, s.Record().Age)
			testutil.RequireDecimal(t, tt.base, s.Record().BaseSalary())
			switch v := s.(type) {
			case *Programmer:
				assert.Equal(t, tt.languages, v.Languages())
			case *Manager:
				assert.Equal(t, tt.team, v.TeamSize())
			}
		})
	}
}

func TestCreationContext(t *testing.T) {
	c := NewCreationContext()
	assert.Equal(t, []string{KindProgrammer, KindManager}, c.Kinds())

	s, err := c.Strategy("PROGRAMMER")
	require.NoError(t, err)
	assert.Equal(t, 25, s.DefaultAge())

	staff := s.Create("Ann", "Lee", decimal.NewFromInt(60000), CreateOptions{Languages: []string{"Go", "JavaScript"}})
	p := staff.(*Programmer)
	assert.Equal(t, []string{"JavaScript", "TypeScript", "Go"}, p.Languages())
	assert.Equal(t, 25, p.Age)
	assert.Equal(t, "Unknown Address", p.Address)
	assert.Equal(t, "Unknown Phone", p.Phone)

	s, err = c.Strategy("manager")
	require.NoError(t, err)
	assert.Equal(t, 30, s.DefaultAge())

	team := 0
	m := s.Create("Max", "Roe", decimal.NewFromInt(90000), CreateOptions{Age: 41, TeamSize: &team}).(*Manager)
	assert.Equal(t, 0, m.TeamSize())
	assert.Equal(t, 41, m.Age)

	m = s.Create("Max", "Roe", decimal.NewFromInt(90000), CreateOptions{}).(*Manager)
	assert.Equal(t, DefaultTeamSize, m.TeamSize())

	_, err = c.Strategy("intern")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "unknown employee type: intern")
}

type seniorFactory struct{}

func (seniorFactory) Create(p person.Person, salary decimal.Decimal) Staff {
	return NewProgrammer(p, salary.Add(decimal.NewFromInt(10000)), "Go")
}

func TestCreationContext_FirstRegisteredWins(t *testing.T) {
	c := NewCreationContext()
	c.Register(ProgrammerStrategy{Factory: seniorFactory{}})

	s, err := c.Strategy("programmer")
	require.NoError(t, err)
	staff := s.Create("A", "B", decimal.NewFromInt(1), CreateOptions{})
	testutil.RequireDecimal(t, "1", staff.Salary())
}
