package log

import (
	"fmt"
	"os"

	"github.com/YuminosukeSato/perceptron/pkg/errors"
)

// SetupLogger function setup logger.
// It installs a zerolog JSON logger on stderr as the default logger and
// routes library warnings (errors.Warn) through it.
func SetupLogger(loglevel string) {
	zl := NewZerologLogger(os.Stderr, ToLogLevel(loglevel))
	SetLogger(zl)
	errors.SetZerologWarnFunc(zl.WarnFunc())
}

// ToLogLevel converts "debug", "info", "warn" or "error" into a Level.
func ToLogLevel(level string) Level {
	switch level {
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}
