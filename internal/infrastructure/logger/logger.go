package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps the zap logger with additional functionality
type Logger struct {
	*zap.Logger
}

// New creates a logger. Debug mode switches to the development
// encoder and lowers the level to Debug.
func New(debug bool) (*Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	if debug {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: zapLogger}, nil
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l.Logger != nil {
		return l.Logger.Sync()
	}
	return nil
}

// Nop returns a logger that discards everything, for tests.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}
