package organization

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"

	"github.com/ajitpratap0/patternlab/pkg/enhancement"
	"github.com/ajitpratap0/patternlab/pkg/errors"
	"github.com/ajitpratap0/patternlab/pkg/testutil"
)

type FacadeSuite struct {
	testutil.Suite
	facade *Facade
}

func TestFacadeSuite(t *testing.T) {
	suite.Run(t, new(FacadeSuite))
}

func (s *FacadeSuite) SetupTest() {
	s.Suite.SetupTest()
	f, err := NewFacade(Settings{}, s.Logger())
	s.Require().NoError(err)
	s.facade = f
}

func (s *FacadeSuite) TestDefaults() {
	root := s.facade.Root()
	s.Equal("Tech Corporation", root.Name())
	testutil.RequireDecimal(s.T(), "1000000", root.Budget())
	s.Equal("standard", s.facade.Notifier().Kind())
	s.Equal("email", s.facade.Notifier().Sender().Channel())
}

func (s *FacadeSuite) TestCreateEmployee() {
	s.facade.CreateDepartment("Engineering", decimal.Zero, "")

	staff, err := s.facade.CreateEmployee("Alice", "Smith", "programmer", decimal.NewFromInt(80000), "Engineering",
		CreateOptions{Languages: []string{"Go"}})
	s.Require().NoError(err)
	s.Equal("Alice Smith (Programmer) - Programmer (Languages: JavaScript, TypeScript, Go)", staff.Description())

	eng, ok := s.facade.Root().FindDepartment("Engineering")
	s.Require().True(ok)
	testutil.RequireDecimal(s.T(), "100000", eng.Budget())
	s.Equal(1, eng.EmployeeCount())

	s.Equal([]string{
		"Email sent to hr@company.com: New department 'Engineering' created with budget $100000",
		"Email sent to alice.smith@company.com: Welcome Alice Smith to the organization!",
	}, s.facade.Outbox())
}

func (s *FacadeSuite) TestCreateEmployee_ZeroSalaryUsesDefault() {
	staff, err := s.facade.CreateEmployee("Dee", "Fault", "programmer", decimal.Zero, "", CreateOptions{})
	s.Require().NoError(err)
	testutil.RequireDecimal(s.T(), "50000", staff.Salary())

	f, err := NewFacade(Settings{DefaultSalary: decimal.NewFromInt(42000)}, nil)
	s.Require().NoError(err)
	staff, err = f.CreateEmployee("Dee", "Fault", "manager", decimal.Zero, "", CreateOptions{TeamSize: new(int)})
	s.Require().NoError(err)
	testutil.RequireDecimal(s.T(), "42000", staff.Salary())
}

func (s *FacadeSuite) TestCreateEmployee_UnknownKind() {
	_, err := s.facade.CreateEmployee("Ian", "Tern", "intern", decimal.NewFromInt(1), "", CreateOptions{})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Empty(s.facade.Outbox())
}

func (s *FacadeSuite) TestCreateEmployee_UnknownDepartmentWarns() {
	logger, logs := testutil.ObservedLogger(zapcore.WarnLevel)
	f, err := NewFacade(Settings{CompanyName: "Acme"}, logger)
	s.Require().NoError(err)

	staff, err := f.CreateEmployee("Bob", "Jones", "Manager", decimal.NewFromInt(90000), "Nowhere", CreateOptions{})
	s.Require().NoError(err)
	s.NotNil(staff)
	s.Equal(0, f.Root().EmployeeCount())
	s.Equal(1, logs.FilterMessage("department not found, employee left unassigned").Len())
}

func (s *FacadeSuite) TestCreateDepartment_ParentFallsBackToRoot() {
	eng := s.facade.CreateDepartment("Engineering", decimal.NewFromInt(500000), "")
	backend := s.facade.CreateDepartment("Backend", decimal.Zero, "Engineering")
	orphan := s.facade.CreateDepartment("Orphan", decimal.Zero, "Missing")

	s.Contains(eng.Children(), Component(backend))
	s.Contains(s.facade.Root().Children(), Component(orphan))
	s.Equal(4, s.facade.Stats().TotalDepartments)
}

func (s *FacadeSuite) TestAddEmployeeToDepartment() {
	s.facade.CreateDepartment("Ops", decimal.Zero, "")
	staff := TechDivision{}.Junior("Jo", "Park")

	s.True(s.facade.AddEmployeeToDepartment(staff, "Ops"))
	s.False(s.facade.AddEmployeeToDepartment(staff, "Sales"))
	s.Len(s.facade.FindEmployees("jo park"), 1)
}

func (s *FacadeSuite) TestReport() {
	s.facade.CreateDepartment("Engineering", decimal.Zero, "")
	_, err := s.facade.CreateEmployee("Alice", "Smith", "programmer", decimal.NewFromInt(80000), "Engineering", CreateOptions{})
	s.Require().NoError(err)

	want := "=== ORGANIZATION REPORT ===\n" +
		"Department: Tech Corporation (Budget: $1000000)\n" +
		"Total Employees: 1, Total Salary: $80000\n" +
		"  Department: Engineering (Budget: $100000)\n" +
		"  Total Employees: 1, Total Salary: $80000\n" +
		"    Employee: Alice Smith (Programmer) - Salary: $80000\n" +
		"\n" +
		"=== SUMMARY ===\n" +
		"Total Employees: 1\n" +
		"Total Salary Expense: $80000\n" +
		"Budget Utilization: 8.00%\n" +
		"Within Budget: YES"
	s.Equal(want, s.facade.Report())
}

func (s *FacadeSuite) TestSwitchNotificationMethod() {
	tests := []struct {
		method  string
		kind    string
		channel string
		prefix  string
	}{
		{"sms", "standard", "sms", "SMS sent to all@company.com: hi"},
		{"slack", "standard", "slack", "Slack message sent to all@company.com: hi"},
		{"email", "standard", "email", "Email sent to all@company.com: hi"},
		{"urgent", "urgent", "email", "Email sent to all@company.com: URGENT: hi"},
	}
	for _, tt := range tests {
		s.Run(tt.method, func() {
			s.Require().NoError(s.facade.SwitchNotificationMethod(tt.method))
			s.Equal(tt.kind, s.facade.Notifier().Kind())
			s.Equal(tt.channel, s.facade.Notifier().Sender().Channel())
			s.Equal(tt.prefix, s.facade.SendAnnouncement("hi")[0])
		})
	}

	err := s.facade.SwitchNotificationMethod("fax")
	s.Require().Error(err)
	s.True(errors.IsType(err, errors.ErrorTypeValidation))
}

func (s *FacadeSuite) TestSendAnnouncement() {
	got := s.facade.SendAnnouncement("Quarterly results")
	s.Equal([]string{
		"Email sent to all@company.com: Quarterly results",
		"Email sent to managers@company.com: Quarterly results",
		"Email sent to developers@company.com: Quarterly results",
	}, got)
	s.Len(s.facade.Outbox(), 3)
}

func (s *FacadeSuite) TestStats() {
	s.facade.CreateDepartment("Engineering", decimal.Zero, "")
	_, err := s.facade.CreateEmployee("Max", "Roe", "manager", decimal.NewFromInt(100000), "Engineering", CreateOptions{})
	s.Require().NoError(err)

	st := s.facade.Stats()
	s.Equal(2, st.TotalDepartments)
	s.Equal(1, st.TotalEmployees)
	testutil.RequireDecimal(s.T(), "105000", st.TotalSalaryCost)
	testutil.RequireDecimal(s.T(), "10.5", st.BudgetUtilization)
	s.True(st.WithinBudget)
}

func (s *FacadeSuite) TestCreateEnhancedEmployee() {
	staff, err := s.facade.CreateEmployee("Alice", "Smith", "programmer", decimal.NewFromInt(80000), "", CreateOptions{})
	s.Require().NoError(err)

	e := s.facade.CreateEnhancedEmployee(staff, enhancement.Enhancements{
		Certifications: []string{"AWS", "Kubernetes"},
		Leadership:     true,
	})
	testutil.RequireDecimal(s.T(), "100000", e.TotalCost())
	s.Equal(3, enhancement.Depth(e))
	s.Equal(
		"Alice Smith (Programmer) - Programmer (Languages: JavaScript, TypeScript) + AWS Certified + Kubernetes Certified + Leadership Role",
		e.Description())
}

func (s *FacadeSuite) TestNewFacade_UnknownChannel() {
	_, err := NewFacade(Settings{Channel: "pigeon"}, nil)
	s.Error(err)
}
