package slogger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFromString(t *testing.T) {
	require.Equal(t, LevelDebug, LevelFromString("debug"))
	require.Equal(t, LevelWarn, LevelFromString("WARN"))
	require.Equal(t, LevelError, LevelFromString("error"))
	require.Equal(t, DefaultLogLevel, LevelFromString("verbose"))
}

func TestDevNullLogger(t *testing.T) {
	var logger Logger = NewDevNullLogger()
	require.NotPanics(t, func() {
		logger.Debug("msg", "k", "v")
		logger.Info("msg")
		logger.Warn("msg")
		logger.Error("msg")
	})
	require.Equal(t, logger, logger.With("k", "v"))
}

func TestSloggerWith(t *testing.T) {
	logger := New(LevelError)
	child := logger.With("component", "editor")
	require.NotNil(t, child)
	require.NotPanics(t, func() { child.Debug("suppressed") })
}
