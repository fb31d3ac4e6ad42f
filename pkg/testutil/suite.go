package testutil

import (
	"os"
	"path/filepath"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Suite provides a scratch directory and a test logger to testify suites
// that embed it.
type Suite struct {
	suite.Suite
	tempDir string
	logger  *zap.Logger
}

// SetupTest runs before each test in the suite.
func (s *Suite) SetupTest() {
	s.tempDir = s.T().TempDir()
	s.logger = zaptest.NewLogger(s.T())
}

// TempDir returns the per-test scratch directory.
func (s *Suite) TempDir() string {
	return s.tempDir
}

// Logger returns the per-test logger.
func (s *Suite) Logger() *zap.Logger {
	return s.logger
}

// CreateTempFile writes content to name inside TempDir and returns its path.
func (s *Suite) CreateTempFile(name string, content []byte) string {
	path := filepath.Join(s.tempDir, name)
	s.Require().NoError(os.WriteFile(path, content, 0o644))
	return path
}
