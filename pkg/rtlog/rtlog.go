// Package rtlog wraps zap into the small logging surface the renderer
// actually needs: leveled, printf-style logging with scoped fields.
package rtlog

import (
	"go.uber.org/zap"
)

// Logger is the structured logging capability used by cmd/raytracer. It
// is constructed by the caller, never a package-level global; scene
// construction and the scheduler take no Logger and do not log.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New builds a production logger: JSON output, info level.
func New() (*Logger, error) {
	zl, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: zl.Sugar()}, nil
}

// NewDevelopment builds a human-readable console logger at debug level,
// useful for local CLI runs.
func NewDevelopment() (*Logger, error) {
	zl, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: zl.Sugar()}, nil
}

// NewNop builds a logger that discards everything, for tests that need
// a Logger but don't care about its output.
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Infof logs at info level with printf-style formatting.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warnf logs at warn level with printf-style formatting.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Errorf logs at error level with printf-style formatting.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// With returns a child logger annotated with the given key/value pairs,
// used to attach render parameters (scene name, worker count) to every
// subsequent log line for the duration of a render.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(keysAndValues...)}
}

// Sync flushes any buffered log entries; callers should defer it right
// after construction.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}
