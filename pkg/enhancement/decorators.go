package enhancement

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Default contributions used when a constructor is given no option.
var (
	DefaultCertificationBonus  = decimal.NewFromInt(5000)
	DefaultLeadershipBonus     = decimal.NewFromInt(10000)
	DefaultOvertimeRate        = decimal.NewFromInt(50)
	DefaultSpecialProjectBonus = decimal.NewFromInt(7500)
)

// Option overrides the amount a decorator contributes.
type Option func(*decimal.Decimal)

// WithBonus sets the flat bonus of a certification, leadership or project layer.
func WithBonus(amount decimal.Decimal) Option {
	return func(d *decimal.Decimal) { *d = amount }
}

// WithRate sets the hourly rate of an overtime layer.
func WithRate(rate decimal.Decimal) Option {
	return WithBonus(rate)
}

func amount(def decimal.Decimal, opts []Option) decimal.Decimal {
	v := def
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// Certification adds a certification bonus.
type Certification struct {
	layer
	name  string
	bonus decimal.Decimal
}

// NewCertification wraps inner with a certification named name.
func NewCertification(inner Component, name string, opts ...Option) Component {
	return &Certification{
		layer: layer{inner: inner},
		name:  name,
		bonus: amount(DefaultCertificationBonus, opts),
	}
}

func (c *Certification) Description() string {
	return c.describe(c.name + " Certified")
}

func (c *Certification) TotalCost() decimal.Decimal {
	return c.add(c.bonus)
}

func (c *Certification) Responsibilities() []string {
	return c.extend(
		fmt.Sprintf("Maintain %s certification", c.name),
		"Share certification knowledge with team",
	)
}

// Leadership adds a leadership role bonus.
type Leadership struct {
	layer
	bonus decimal.Decimal
}

// NewLeadership wraps inner with a leadership role.
func NewLeadership(inner Component, opts ...Option) Component {
	return &Leadership{
		layer: layer{inner: inner},
		bonus: amount(DefaultLeadershipBonus, opts),
	}
}

func (l *Leadership) Description() string {
	return l.describe("Leadership Role")
}

func (l *Leadership) TotalCost() decimal.Decimal {
	return l.add(l.bonus)
}

func (l *Leadership) Responsibilities() []string {
	return l.extend(
		"Mentor junior team members",
		"Lead strategic initiatives",
		"Cross-team collaboration",
	)
}

// Overtime adds hours times an hourly rate.
type Overtime struct {
	layer
	hours int
	rate  decimal.Decimal
}

// NewOvertime wraps inner with hours of overtime.
func NewOvertime(inner Component, hours int, opts ...Option) Component {
	return &Overtime{
		layer: layer{inner: inner},
		hours: hours,
		rate:  amount(DefaultOvertimeRate, opts),
	}
}

func (o *Overtime) Description() string {
	return o.describe(fmt.Sprintf("%dh Overtime", o.hours))
}

func (o *Overtime) TotalCost() decimal.Decimal {
	return o.add(o.rate.Mul(decimal.NewFromInt(int64(o.hours))))
}

func (o *Overtime) Responsibilities() []string {
	return o.extend(
		fmt.Sprintf("Work %d overtime hours", o.hours),
		"Handle critical deadlines",
	)
}

// SpecialProject adds a project lead bonus.
type SpecialProject struct {
	layer
	project string
	bonus   decimal.Decimal
}

// NewSpecialProject wraps inner with the lead role on project.
func NewSpecialProject(inner Component, project string, opts ...Option) Component {
	return &SpecialProject{
		layer:   layer{inner: inner},
		project: project,
		bonus:   amount(DefaultSpecialProjectBonus, opts),
	}
}

func (s *SpecialProject) Description() string {
	return s.describe(s.project + " Project Lead")
}

func (s *SpecialProject) TotalCost() decimal.Decimal {
	return s.add(s.bonus)
}

func (s *SpecialProject) Responsibilities() []string {
	return s.extend(
		fmt.Sprintf("Lead %s project", s.project),
		"Coordinate project deliverables",
		"Report project status to management",
	)
}
