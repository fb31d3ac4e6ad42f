package config

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ajitpratap0/patternlab/pkg/errors"
	"github.com/ajitpratap0/patternlab/pkg/logger"
	"github.com/ajitpratap0/patternlab/pkg/organization"
)

// AppConfig is the root configuration.
type AppConfig struct {
	Company   CompanyConfig   `yaml:"company" json:"company" mapstructure:"company"`
	Defaults  DefaultsConfig  `yaml:"defaults" json:"defaults" mapstructure:"defaults"`
	Pool      PoolConfig      `yaml:"pool" json:"pool" mapstructure:"pool"`
	Logging   LoggingConfig   `yaml:"logging" json:"logging" mapstructure:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics" json:"metrics" mapstructure:"metrics"`
	Demo      DemoConfig      `yaml:"demo" json:"demo" mapstructure:"demo"`
	Ecosystem EcosystemConfig `yaml:"ecosystem" json:"ecosystem" mapstructure:"ecosystem"`
}

// CompanyConfig describes the root of the organisation.
type CompanyConfig struct {
	// Name of the root department
	Name string `yaml:"name" json:"name" mapstructure:"name"`
	// RootBudget is the budget of the root department
	RootBudget int64 `yaml:"root_budget" json:"root_budget" mapstructure:"root_budget"`
	// DepartmentBudget is used for departments created without a budget
	DepartmentBudget int64 `yaml:"department_budget" json:"department_budget" mapstructure:"department_budget"`
}

// DefaultsConfig holds values applied when callers leave them out.
type DefaultsConfig struct {
	// Salary is paid to employees hired without one
	Salary             int64  `yaml:"salary" json:"salary" mapstructure:"salary"`
	NotificationMethod string `yaml:"notification_method" json:"notification_method" mapstructure:"notification_method"`
}

// PoolConfig configures the shared person pool.
type PoolConfig struct {
	// PersonCapacity bounds the idle people kept for reuse
	PersonCapacity int `yaml:"person_capacity" json:"person_capacity" mapstructure:"person_capacity"`
	// Name labels the pool in logs and metrics
	Name string `yaml:"name" json:"name" mapstructure:"name"`
}

// LoggingConfig mirrors logger.Config.
type LoggingConfig struct {
	Level       string        `yaml:"level" json:"level" mapstructure:"level"`
	Encoding    string        `yaml:"encoding" json:"encoding" mapstructure:"encoding"`
	Development bool          `yaml:"development" json:"development" mapstructure:"development"`
	File        LogFileConfig `yaml:"file" json:"file" mapstructure:"file"`
}

// LogFileConfig configures the optional rotating log file.
type LogFileConfig struct {
	Path       string `yaml:"path" json:"path" mapstructure:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" json:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool   `yaml:"compress" json:"compress" mapstructure:"compress"`
}

// MetricsConfig toggles Prometheus reporting.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
}

// DemoConfig paces the walkthroughs.
type DemoConfig struct {
	// Delay is slept between demo steps
	Delay time.Duration `yaml:"delay" json:"delay" mapstructure:"delay"`
}

// EcosystemConfig configures the ecosystem walkthrough.
type EcosystemConfig struct {
	// ManagerID names the observer that manages the animals
	ManagerID string `yaml:"manager_id" json:"manager_id" mapstructure:"manager_id"`
}

var notificationMethods = map[string]bool{
	"email":  true,
	"sms":    true,
	"slack":  true,
	"urgent": true,
}

var logEncodings = map[string]bool{
	"console": true,
	"json":    true,
}

// NewAppConfig returns the configuration with every default filled in.
func NewAppConfig() *AppConfig {
	return &AppConfig{
		Company: CompanyConfig{
			Name:             "Tech Corporation",
			RootBudget:       1_000_000,
			DepartmentBudget: 100_000,
		},
		Defaults: DefaultsConfig{
			Salary:             50000,
			NotificationMethod: "email",
		},
		Pool: PoolConfig{
			PersonCapacity: 3,
			Name:           "person",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
			File: LogFileConfig{
				MaxSizeMB:  10,
				MaxBackups: 3,
				MaxAgeDays: 7,
			},
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
		Ecosystem: EcosystemConfig{
			ManagerID: "MainEcosystemManager",
		},
	}
}

// Validate checks required fields and value ranges.
func (c *AppConfig) Validate() error {
	invalid := func(field, msg string) error {
		return errors.New(errors.ErrorTypeValidation, field+" "+msg).WithDetail("field", field)
	}
	if c.Company.Name == "" {
		return invalid("company.name", "is required")
	}
	if c.Company.RootBudget < 0 {
		return invalid("company.root_budget", "cannot be negative")
	}
	if c.Company.DepartmentBudget < 0 {
		return invalid("company.department_budget", "cannot be negative")
	}
	if c.Defaults.Salary < 0 {
		return invalid("defaults.salary", "cannot be negative")
	}
	if !notificationMethods[c.Defaults.NotificationMethod] {
		return invalid("defaults.notification_method", "must be one of email, sms, slack, urgent")
	}
	if c.Pool.PersonCapacity < 0 {
		return invalid("pool.person_capacity", "cannot be negative")
	}
	if !logEncodings[c.Logging.Encoding] {
		return invalid("logging.encoding", "must be console or json")
	}
	if c.Demo.Delay < 0 {
		return invalid("demo.delay", "cannot be negative")
	}
	if c.Ecosystem.ManagerID == "" {
		return invalid("ecosystem.manager_id", "is required")
	}
	return nil
}

// LoggerConfig converts the logging section for logger.New. Logs go to
// stderr so command output on stdout stays machine readable.
func (c *AppConfig) LoggerConfig() logger.Config {
	return logger.Config{
		Level:       c.Logging.Level,
		Development: c.Logging.Development,
		Encoding:    c.Logging.Encoding,
		OutputPaths: []string{"stderr"},
		File: logger.FileConfig{
			Path:       c.Logging.File.Path,
			MaxSizeMB:  c.Logging.File.MaxSizeMB,
			MaxBackups: c.Logging.File.MaxBackups,
			MaxAgeDays: c.Logging.File.MaxAgeDays,
			Compress:   c.Logging.File.Compress,
		},
	}
}

// OrganizationSettings converts the company section for organization.NewFacade.
func (c *AppConfig) OrganizationSettings() organization.Settings {
	return organization.Settings{
		CompanyName:      c.Company.Name,
		RootBudget:       decimal.NewFromInt(c.Company.RootBudget),
		DepartmentBudget: decimal.NewFromInt(c.Company.DepartmentBudget),
		Channel:          c.Defaults.NotificationMethod,
		DefaultSalary:    c.DefaultSalary(),
	}
}

// DefaultSalary is Defaults.Salary as a decimal.
func (c *AppConfig) DefaultSalary() decimal.Decimal {
	return decimal.NewFromInt(c.Defaults.Salary)
}
