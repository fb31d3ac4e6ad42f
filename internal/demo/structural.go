package demo

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ajitpratap0/patternlab/pkg/enhancement"
	"github.com/ajitpratap0/patternlab/pkg/organization"
)

// EnhancementReport is the JSON form of the enhancement walkthrough.
type EnhancementReport struct {
	Base             string          `json:"base"`
	BaseCost         decimal.Decimal `json:"base_cost"`
	Description      string          `json:"description"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	Increase         decimal.Decimal `json:"increase"`
	Layers           int             `json:"layers"`
	Responsibilities []string        `json:"responsibilities"`
}

func (r *Runner) facade() (*organization.Facade, error) {
	return organization.NewFacade(r.cfg.OrganizationSettings(), r.logger)
}

// Enhance layers certification, leadership, overtime and a special project
// on a programmer and reports the result.
func (r *Runner) Enhance(ctx context.Context, asJSON bool) error {
	log := r.log(ctx, "enhance")
	f, err := r.facade()
	if err != nil {
		return err
	}
	base, err := f.CreateEmployee("Frank", "Miller", organization.KindProgrammer, decimal.NewFromInt(75000), "", organization.CreateOptions{})
	if err != nil {
		return err
	}

	enhanced := enhancement.Chain(base,
		func(c enhancement.Component) enhancement.Component {
			return enhancement.NewCertification(c, "AWS Solutions Architect", enhancement.WithBonus(decimal.NewFromInt(8000)))
		},
		func(c enhancement.Component) enhancement.Component {
			return enhancement.NewLeadership(c, enhancement.WithBonus(decimal.NewFromInt(12000)))
		},
		func(c enhancement.Component) enhancement.Component {
			return enhancement.NewOvertime(c, 20, enhancement.WithRate(decimal.NewFromInt(75)))
		},
		func(c enhancement.Component) enhancement.Component {
			return enhancement.NewSpecialProject(c, "Cloud Migration", enhancement.WithBonus(decimal.NewFromInt(10000)))
		},
	)

	report := EnhancementReport{
		Base:             base.Description(),
		BaseCost:         base.TotalCost(),
		Description:      enhanced.Description(),
		TotalCost:        enhanced.TotalCost(),
		Increase:         enhanced.TotalCost().Sub(base.TotalCost()),
		Layers:           enhancement.Depth(enhanced),
		Responsibilities: enhanced.Responsibilities(),
	}
	log.Debug("employee enhanced",
		zap.Int("layers", report.Layers),
		zap.String("total_cost", report.TotalCost.String()))

	if asJSON {
		return writeJSON(r.out, report)
	}

	p := &printer{w: r.out}
	p.heading("Decorator Pattern - Enhancing Employee Capabilities")
	p.printf("Base Employee: %s\n", report.Base)
	p.printf("Base Cost: $%s\n", report.BaseCost)
	p.printf("Base Responsibilities: %d\n", len(base.Responsibilities()))
	if err := r.pause(ctx); err != nil {
		return err
	}

	p.println()
	p.println("After applying decorators:")
	p.printf("Enhanced Employee: %s\n", report.Description)
	p.printf("Enhanced Cost: $%s\n", report.TotalCost)
	p.printf("Enhanced Responsibilities: %d\n", len(report.Responsibilities))
	p.println()
	p.println("All Responsibilities:")
	for i, resp := range report.Responsibilities {
		p.printf("  %d. %s\n", i+1, resp)
	}
	p.println()
	p.printf("Cost increase: $%s\n", report.Increase)
	return p.err
}

// Org builds a sample company through the facade. With asJSON only the
// statistics are written.
func (r *Runner) Org(ctx context.Context, asJSON bool) error {
	log := r.log(ctx, "org")
	f, err := r.facade()
	if err != nil {
		return err
	}
	if err := populate(f); err != nil {
		return err
	}
	log.Info("organisation built", zap.Int("employees", f.Root().EmployeeCount()))

	if asJSON {
		return writeJSON(r.out, f.Stats())
	}

	p := &printer{w: r.out}
	p.heading("Composite Pattern - Organisation Hierarchy")
	p.printf("Total employees: %d\n", f.Root().EmployeeCount())
	p.printf("Total salary cost: $%s\n", f.Root().Salary())
	if err := r.pause(ctx); err != nil {
		return err
	}

	p.println()
	p.heading("Facade Pattern - Simplified Organisation Management")
	grace, err := f.CreateEmployee("Grace", "Lee", organization.KindProgrammer, decimal.NewFromInt(80000), "Backend Team", organization.CreateOptions{})
	if err != nil {
		return err
	}
	enhanced := f.CreateEnhancedEmployee(grace, enhancement.Enhancements{
		Certifications: []string{"Docker", "Kubernetes"},
		Leadership:     true,
		OvertimeHours:  15,
		SpecialProject: "Microservices Architecture",
	})
	p.printf("Created: %s\n", enhanced.Description())
	p.printf("Total Cost: $%s\n", enhanced.TotalCost())
	p.println()
	p.println("Finding employees:")
	for _, c := range f.FindEmployees("Alice") {
		p.printf("  Found: %s\n", c.Name())
	}
	st := f.Stats()
	p.println()
	p.println("Organisation Statistics:")
	p.printf("  Departments: %d\n", st.TotalDepartments)
	p.printf("  Employees: %d\n", st.TotalEmployees)
	p.printf("  Total Cost: $%s\n", st.TotalSalaryCost)
	p.printf("  Budget Utilization: %s%%\n", st.BudgetUtilization.StringFixed(2))
	if err := r.pause(ctx); err != nil {
		return err
	}

	p.println()
	p.heading("Bridge Pattern - Flexible Notification System")
	announcements := []struct {
		method, message string
	}{
		{"email", "Monthly team meeting scheduled for Friday"},
		{"sms", "Emergency server maintenance tonight"},
		{"urgent", "Security breach detected - immediate action required"},
	}
	for _, a := range announcements {
		if err := f.SwitchNotificationMethod(a.method); err != nil {
			return err
		}
		p.printf("%s notifications:\n", a.method)
		for _, line := range f.SendAnnouncement(a.message) {
			p.printf("  %s\n", line)
		}
	}

	p.println()
	p.println(f.Report())
	return p.err
}

func populate(f *organization.Facade) error {
	departments := []struct {
		name   string
		budget int64
		parent string
	}{
		{"Engineering", 500000, ""},
		{"Frontend Team", 200000, "Engineering"},
		{"Backend Team", 250000, "Engineering"},
		{"DevOps Team", 150000, "Engineering"},
		{"Marketing", 300000, ""},
		{"Human Resources", 200000, ""},
	}
	for _, d := range departments {
		f.CreateDepartment(d.name, decimal.NewFromInt(d.budget), d.parent)
	}

	team := 12
	hires := []struct {
		first, last, kind string
		salary            int64
		department        string
		opts              organization.CreateOptions
	}{
		{"Alice", "Johnson", organization.KindProgrammer, 85000, "Frontend Team",
			organization.CreateOptions{Age: 28, Languages: []string{"React", "TypeScript", "CSS"}}},
		{"Bob", "Smith", organization.KindProgrammer, 90000, "Backend Team",
			organization.CreateOptions{Age: 30, Languages: []string{"Node.js", "Python", "PostgreSQL"}}},
		{"Charlie", "Brown", organization.KindManager, 110000, "Engineering",
			organization.CreateOptions{Age: 35, TeamSize: &team}},
	}
	for _, h := range hires {
		if _, err := f.CreateEmployee(h.first, h.last, h.kind, decimal.NewFromInt(h.salary), h.department, h.opts); err != nil {
			return err
		}
	}

	f.AddEmployeeToDepartment(organization.TechDivision{}.Senior("Diana", "Wilson"), "DevOps Team")
	f.AddEmployeeToDepartment(organization.ManagementDivision{}.Junior("Eve", "Davis"), "Human Resources")
	return nil
}
