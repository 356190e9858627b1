package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger for the given level ("debug", "info", ...)
// and installs it as zap's global logger. The returned func restores the
// previous global and flushes buffered entries.
func New(level string) (*zap.Logger, func(), error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}

	restore := zap.ReplaceGlobals(logger)
	return logger, func() {
		_ = logger.Sync()
		restore()
	}, nil
}

func Fatal(description string, err error) {
	zap.L().Fatal(description, zap.Error(err))
}

func WarnIfErr(description string, err error) {
	if err != nil {
		zap.L().Warn(description, zap.Error(err))
	}
}

func ErrIfErr(description string, err error) {
	if err != nil {
		zap.L().Error(description, zap.Error(err))
	}
}
