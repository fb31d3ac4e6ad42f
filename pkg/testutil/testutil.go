// Package testutil provides testing utilities for patternlab
package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// TestLogger creates a test logger that writes to the test output.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// ObservedLogger returns a logger whose entries at or above level are
// recorded for assertions.
func ObservedLogger(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}

// Decimal parses s or fails the test.
func Decimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err, "parse decimal %q", s)
	return d
}

// RequireDecimal fails the test unless actual equals expected numerically,
// so "75000" and "75000.00" compare equal.
func RequireDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	want := Decimal(t, expected)
	require.Truef(t, want.Equal(actual), "expected %s, got %s", want, actual)
}
