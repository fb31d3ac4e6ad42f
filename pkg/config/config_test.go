package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ajitpratap0/patternlab/pkg/errors"
	"github.com/ajitpratap0/patternlab/pkg/testutil"
)

func TestNewAppConfig_Defaults(t *testing.T) {
	cfg := NewAppConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "Tech Corporation", cfg.Company.Name)
	assert.Equal(t, int64(50000), cfg.Defaults.Salary)
	assert.Equal(t, "email", cfg.Defaults.NotificationMethod)
	assert.Equal(t, 3, cfg.Pool.PersonCapacity)
	assert.Equal(t, "MainEcosystemManager", cfg.Ecosystem.ManagerID)

	s := cfg.OrganizationSettings()
	testutil.RequireDecimal(t, "1000000", s.RootBudget)
	testutil.RequireDecimal(t, "100000", s.DepartmentBudget)
	assert.Equal(t, "email", s.Channel)
	testutil.RequireDecimal(t, "50000", s.DefaultSalary)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		field  string
	}{
		{"empty company", func(c *AppConfig) { c.Company.Name = "" }, "company.name"},
		{"negative budget", func(c *AppConfig) { c.Company.RootBudget = -1 }, "company.root_budget"},
		{"negative salary", func(c *AppConfig) { c.Defaults.Salary = -5 }, "defaults.salary"},
		{"unknown channel", func(c *AppConfig) { c.Defaults.NotificationMethod = "fax" }, "defaults.notification_method"},
		{"negative pool", func(c *AppConfig) { c.Pool.PersonCapacity = -1 }, "pool.person_capacity"},
		{"bad encoding", func(c *AppConfig) { c.Logging.Encoding = "xml" }, "logging.encoding"},
		{"negative delay", func(c *AppConfig) { c.Demo.Delay = -time.Second }, "demo.delay"},
		{"empty manager", func(c *AppConfig) { c.Ecosystem.ManagerID = "" }, "ecosystem.manager_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewAppConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoggerConfig(t *testing.T) {
	cfg := NewAppConfig()
	cfg.Logging.File.Path = "/tmp/patternlab.log"

	lc := cfg.LoggerConfig()
	assert.Equal(t, "info", lc.Level)
	assert.Equal(t, "console", lc.Encoding)
	assert.Equal(t, "/tmp/patternlab.log", lc.File.Path)
	assert.Equal(t, 10, lc.File.MaxSizeMB)
}

type LoaderSuite struct {
	testutil.Suite
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderSuite))
}

func (s *LoaderSuite) TestLoad_NoFile() {
	cfg, err := Load("")
	s.Require().NoError(err)
	s.Equal(NewAppConfig(), cfg)
}

func (s *LoaderSuite) TestLoad_File() {
	path := s.CreateTempFile("patternlab.yaml", []byte(`
company:
  name: Acme
  root_budget: 250000
defaults:
  notification_method: slack
pool:
  person_capacity: 8
demo:
  delay: 150ms
`))

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal("Acme", cfg.Company.Name)
	s.Equal(int64(250000), cfg.Company.RootBudget)
	s.Equal(int64(100000), cfg.Company.DepartmentBudget)
	s.Equal("slack", cfg.Defaults.NotificationMethod)
	s.Equal(8, cfg.Pool.PersonCapacity)
	s.Equal(150*time.Millisecond, cfg.Demo.Delay)
	s.Equal("person", cfg.Pool.Name)
}

func (s *LoaderSuite) TestLoad_EnvExpansionAndOverride() {
	s.T().Setenv("PATTERNLAB_TEST_COMPANY", "Initech")
	s.T().Setenv("PATTERNLAB_POOL_PERSON_CAPACITY", "12")
	path := s.CreateTempFile("env.yaml", []byte("company:\n  name: ${PATTERNLAB_TEST_COMPANY}\npool:\n  person_capacity: 4\n"))

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal("Initech", cfg.Company.Name)
	s.Equal(12, cfg.Pool.PersonCapacity)
}

func (s *LoaderSuite) TestLoad_Invalid() {
	path := s.CreateTempFile("bad.yaml", []byte("defaults:\n  notification_method: carrier-pigeon\n"))

	_, err := Load(path)
	s.Require().Error(err)
	s.True(errors.IsType(err, errors.ErrorTypeValidation))
}

func (s *LoaderSuite) TestLoad_MissingFile() {
	_, err := Load(filepath.Join(s.TempDir(), "missing.yaml"))
	s.Require().Error(err)
	s.True(errors.IsType(err, errors.ErrorTypeConfig))
	s.ErrorIs(err, os.ErrNotExist)
}

func (s *LoaderSuite) TestSaveLoadRoundTrip() {
	cfg := NewAppConfig()
	cfg.Company.Name = "Globex"
	cfg.Demo.Delay = 2 * time.Second
	cfg.Logging.File.Compress = true

	path := filepath.Join(s.TempDir(), "saved.yaml")
	s.Require().NoError(Save(path, cfg))

	loaded, err := Load(path)
	s.Require().NoError(err)
	s.Equal(cfg, loaded)
}
