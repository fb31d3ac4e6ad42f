package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/patternlab/pkg/errors"
)

// EnvPrefix prefixes environment overrides, e.g. PATTERNLAB_COMPANY_NAME.
const EnvPrefix = "PATTERNLAB"

// Load reads the YAML file at path on top of the defaults, applies
// PATTERNLAB_* environment overrides and validates the result. An empty path
// loads defaults and environment only. ${VAR} references in the file are
// expanded before parsing.
func Load(path string) (*AppConfig, error) {
	v := newViper()

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the operator
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to read config file").
				WithDetail("path", path)
		}
		if err := v.ReadConfig(bytes.NewReader([]byte(os.ExpandEnv(string(data))))); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse config file").
				WithDetail("path", path)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := NewAppConfig()
	v.SetDefault("company.name", def.Company.Name)
	v.SetDefault("company.root_budget", def.Company.RootBudget)
	v.SetDefault("company.department_budget", def.Company.DepartmentBudget)
	v.SetDefault("defaults.salary", def.Defaults.Salary)
	v.SetDefault("defaults.notification_method", def.Defaults.NotificationMethod)
	v.SetDefault("pool.person_capacity", def.Pool.PersonCapacity)
	v.SetDefault("pool.name", def.Pool.Name)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.encoding", def.Logging.Encoding)
	v.SetDefault("logging.development", def.Logging.Development)
	v.SetDefault("logging.file.path", def.Logging.File.Path)
	v.SetDefault("logging.file.max_size_mb", def.Logging.File.MaxSizeMB)
	v.SetDefault("logging.file.max_backups", def.Logging.File.MaxBackups)
	v.SetDefault("logging.file.max_age_days", def.Logging.File.MaxAgeDays)
	v.SetDefault("logging.file.compress", def.Logging.File.Compress)
	v.SetDefault("metrics.enabled", def.Metrics.Enabled)
	v.SetDefault("demo.delay", def.Demo.Delay)
	v.SetDefault("ecosystem.manager_id", def.Ecosystem.ManagerID)
	return v
}

// Marshal renders cfg as YAML.
func Marshal(cfg *AppConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeInternal, "failed to marshal YAML")
	}
	return data, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *AppConfig) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to write config file").
			WithDetail("path", path)
	}
	return nil
}
