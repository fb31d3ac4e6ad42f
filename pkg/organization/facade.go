package organization

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ajitpratap0/patternlab/pkg/enhancement"
	"github.com/ajitpratap0/patternlab/pkg/errors"
	"github.com/ajitpratap0/patternlab/pkg/logger"
	"github.com/ajitpratap0/patternlab/pkg/notification"
)

// Settings configures a Facade.
type Settings struct {
	CompanyName      string
	RootBudget       decimal.Decimal
	DepartmentBudget decimal.Decimal
	// Channel is the initial notification method, see SwitchNotificationMethod.
	Channel string
	// DefaultSalary is paid when CreateEmployee is given a zero salary.
	DefaultSalary decimal.Decimal
}

// DefaultSettings returns the stock company setup.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:      "Tech Corporation",
		RootBudget:       decimal.NewFromInt(1_000_000),
		DepartmentBudget: decimal.NewFromInt(100_000),
		Channel:          "email",
		DefaultSalary:    decimal.NewFromInt(50000),
	}
}

// AnnouncementRecipients receive every SendAnnouncement.
var AnnouncementRecipients = []string{
	"all@company.com",
	"managers@company.com",
	"developers@company.com",
}

// Stats summarises the organisation.
type Stats struct {
	TotalDepartments  int             `json:"total_departments"`
	TotalEmployees    int             `json:"total_employees"`
	TotalSalaryCost   decimal.Decimal `json:"total_salary_cost"`
	BudgetUtilization decimal.Decimal `json:"budget_utilization"`
	WithinBudget      bool            `json:"within_budget"`
}

// Facade is the single entry point for building and querying an
// organisation. It is safe for concurrent use.
type Facade struct {
	mu       sync.Mutex
	settings Settings
	root     *Department
	notifier notification.Service
	creation *CreationContext
	outbox   []string
	logger   *zap.Logger
}

// NewFacade creates an organisation with an empty root department. Unset
// settings take their DefaultSettings value.
func NewFacade(s Settings, log *zap.Logger) (*Facade, error) {
	log = logger.OrNop(log)
	def := DefaultSettings()
	if s.CompanyName == "" {
		s.CompanyName = def.CompanyName
	}
	if s.RootBudget.IsZero() {
		s.RootBudget = def.RootBudget
	}
	if s.DepartmentBudget.IsZero() {
		s.DepartmentBudget = def.DepartmentBudget
	}
	if s.Channel == "" {
		s.Channel = def.Channel
	}
	if s.DefaultSalary.IsZero() {
		s.DefaultSalary = def.DefaultSalary
	}

	f := &Facade{
		settings: s,
		root:     NewDepartment(s.CompanyName, s.RootBudget),
		notifier: notification.NewStandard(notification.Email{}, log),
		creation: NewCreationContext(),
		logger:   log.With(zap.String("company", s.CompanyName)),
	}
	if err := f.SwitchNotificationMethod(s.Channel); err != nil {
		return nil, err
	}
	return f, nil
}

// Root returns the company department.
func (f *Facade) Root() *Department { return f.root }

// CreateEmployee creates an employee of the given kind, files it under
// department when that department exists and sends a welcome notice. A zero
// salary is replaced by the configured default salary.
func (f *Facade) CreateEmployee(firstName, lastName, kind string, salary decimal.Decimal, department string, opts CreateOptions) (Staff, error) {
	strategy, err := f.creation.Strategy(kind)
	if err != nil {
		return nil, err
	}
	if salary.IsZero() {
		salary = f.settings.DefaultSalary
	}
	staff := strategy.Create(firstName, lastName, salary, opts)

	if department != "" && !f.AddEmployeeToDepartment(staff, department) {
		f.logger.Warn("department not found, employee left unassigned",
			zap.String("employee", staff.Name()),
			zap.String("department", department))
	}

	f.notify(
		fmt.Sprintf("Welcome %s %s to the organization!", firstName, lastName),
		fmt.Sprintf("%s.%s@company.com", strings.ToLower(firstName), strings.ToLower(lastName)),
	)
	f.logger.Info("employee created",
		zap.String("id", staff.ID()),
		zap.String("kind", strategy.Kind()),
		zap.String("salary", salary.String()))
	return staff, nil
}

// CreateEnhancedEmployee wraps base in the requested enhancement layers.
func (f *Facade) CreateEnhancedEmployee(base Staff, e enhancement.Enhancements) enhancement.Component {
	return enhancement.Apply(base, e)
}

// CreateDepartment creates a department under parent, or under the root when
// parent is empty or unknown. A zero budget takes the configured default.
func (f *Facade) CreateDepartment(name string, budget decimal.Decimal, parent string) *Department {
	if budget.IsZero() {
		budget = f.settings.DepartmentBudget
	}
	dept := NewDepartment(name, budget)

	f.mu.Lock()
	target := f.root
	if parent != "" {
		if p, ok := f.root.FindDepartment(parent); ok {
			target = p
		}
	}
	_ = target.Add(dept)
	f.mu.Unlock()

	f.notify(fmt.Sprintf("New department '%s' created with budget %s", name, money(budget)), "hr@company.com")
	f.logger.Info("department created",
		zap.String("department", name),
		zap.String("parent", target.Name()))
	return dept
}

// AddEmployeeToDepartment files c under the named department. It reports
// false when no such department exists.
func (f *Facade) AddEmployeeToDepartment(c Component, department string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	dept, ok := f.root.FindDepartment(department)
	if !ok {
		return false
	}
	_ = dept.Add(c)
	return true
}

// Report renders the organisation tree followed by a summary.
func (f *Facade) Report() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	within := "NO"
	if f.root.WithinBudget() {
		within = "YES"
	}
	var b strings.Builder
	b.WriteString("=== ORGANIZATION REPORT ===\n")
	b.WriteString(f.root.Display(0))
	b.WriteString("\n\n=== SUMMARY ===\n")
	fmt.Fprintf(&b, "Total Employees: %d\n", f.root.EmployeeCount())
	fmt.Fprintf(&b, "Total Salary Expense: %s\n", money(f.root.Salary()))
	fmt.Fprintf(&b, "Budget Utilization: %s%%\n", f.root.BudgetUtilization().StringFixed(2))
	fmt.Fprintf(&b, "Within Budget: %s", within)
	return b.String()
}

// FindEmployees searches the whole organisation by name.
func (f *Facade) FindEmployees(name string) []Component {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.root.FindByName(name)
}

// SwitchNotificationMethod changes how notices are delivered. "email", "sms"
// and "slack" swap the channel of the current service; "urgent" replaces the
// service with an urgent one over email.
func (f *Facade) SwitchNotificationMethod(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if method == "urgent" {
		f.notifier = notification.NewUrgent(notification.Email{}, f.logger)
		return nil
	}
	sender, err := notification.SenderFor(method)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeValidation, "cannot switch notification method").
			WithDetail("method", method)
	}
	f.notifier.SetSender(sender)
	return nil
}

// Notifier returns the current notification service.
func (f *Facade) Notifier() notification.Service {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notifier
}

// SendAnnouncement sends message to every AnnouncementRecipients entry.
func (f *Facade) SendAnnouncement(message string) []string {
	out := make([]string, 0, len(AnnouncementRecipients))
	for _, r := range AnnouncementRecipients {
		out = append(out, f.notify(message, r))
	}
	return out
}

// Outbox returns every notice sent so far, oldest first.
func (f *Facade) Outbox() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.outbox...)
}

// Stats summarises the whole organisation.
func (f *Facade) Stats() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Stats{
		TotalDepartments:  f.root.Departments(),
		TotalEmployees:    f.root.EmployeeCount(),
		TotalSalaryCost:   f.root.Salary(),
		BudgetUtilization: f.root.BudgetUtilization(),
		WithinBudget:      f.root.WithinBudget(),
	}
}

func (f *Facade) notify(message, recipient string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.notifier.Send(message, recipient)
	f.outbox = append(f.outbox, out)
	return out
}
