package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestNew(t *testing.T) {
	logger, restore, err := New("warn")
	require.NoError(t, err)
	defer restore()

	require.Equal(t, logger, zap.L())
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewBadLevel(t *testing.T) {
	_, _, err := New("loud")

	require.Error(t, err)
}

func TestWarnIfErr(t *testing.T) {
	logs := observe(t)
	testStr := "test-string"
	testDescr := "description"

	WarnIfErr(testDescr, errors.New(testStr))
	WarnIfErr(testDescr, nil)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, testDescr, entry.Message)
	assert.Equal(t, testStr, entry.ContextMap()["error"])
}

func TestErrIfErr(t *testing.T) {
	logs := observe(t)
	testStr := "test-string"
	testDescr := "description"

	ErrIfErr(testDescr, errors.New(testStr))
	ErrIfErr(testDescr, nil)

	require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Equal(t, testStr, logs.All()[0].ContextMap()["error"])
}
