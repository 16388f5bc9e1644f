package log

import (
	"sync"

	"go.uber.org/zap/zapcore"
)

var defaultLogger Logger
var defaultLoggerLock sync.Mutex

var Debugw func(msg string, keysAndValues ...interface{})
var Infow func(msg string, keysAndValues ...interface{})
var Warnw func(msg string, keysAndValues ...interface{})
var Errorw func(msg string, keysAndValues ...interface{})

var Error func(err error)

var With func(args ...interface{}) Logger

func init() {
	SetDefault(New(NewInput{
		Level: zapcore.InfoLevel,
	}))
}

// InitDefault will create a new logger with the given settings
// and will set it as the default global logger. This function
// IS NOT thread-safe and cannot be used while other routines
// are using the existing global default logger.
func InitDefault(input NewInput) {
	SetDefault(New(input))
}

// SetDefault installs an existing logger as the default global logger
// and returns the logger it replaced.
func SetDefault(l Logger) (previous Logger) {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()

	previous = defaultLogger
	defaultLogger = l

	Debugw = defaultLogger.Debugw
	Infow = defaultLogger.Infow
	Warnw = defaultLogger.Warnw
	Errorw = defaultLogger.Errorw

	Error = defaultLogger.Error

	With = defaultLogger.With
	return previous
}

// Default returns the current default global logger.
func Default() Logger {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()
	return defaultLogger
}
