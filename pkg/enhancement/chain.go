package enhancement

// Enhancements describes the layers Apply puts on a base component.
type Enhancements struct {
	Certifications []string `json:"certifications,omitempty" yaml:"certifications,omitempty"`
	Leadership     bool     `json:"leadership,omitempty" yaml:"leadership,omitempty"`
	OvertimeHours  int      `json:"overtime_hours,omitempty" yaml:"overtime_hours,omitempty"`
	SpecialProject string   `json:"special_project,omitempty" yaml:"special_project,omitempty"`
}

// Apply wraps base with certifications in order, then leadership, then
// overtime when hours are positive, then the special project. Default amounts
// are used for every layer.
func Apply(base Component, e Enhancements) Component {
	c := base
	for _, cert := range e.Certifications {
		c = NewCertification(c, cert)
	}
	if e.Leadership {
		c = NewLeadership(c)
	}
	if e.OvertimeHours > 0 {
		c = NewOvertime(c, e.OvertimeHours)
	}
	if e.SpecialProject != "" {
		c = NewSpecialProject(c, e.SpecialProject)
	}
	return c
}

// Decorator builds one layer around an inner component.
type Decorator func(Component) Component

// Chain applies decorators in order, so the last one ends up outermost.
func Chain(base Component, decorators ...Decorator) Component {
	c := base
	for _, d := range decorators {
		c = d(c)
	}
	return c
}
