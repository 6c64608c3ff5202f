package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// logMaxSizeMB is the size a log file reaches before it is rotated.
	logMaxSizeMB = 10

	// logMaxBackups is the number of rotated log files kept.
	logMaxBackups = 3
)

// ParseLogLevel converts a level name (trace, debug, info, warn, error or off) into an hclog.Level.
func ParseLogLevel(level string) (hclog.Level, error) {
	l := hclog.LevelFromString(strings.TrimSpace(level))
	if l == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("invalid log level '%s', must be one of trace, debug, info, warn, error, off", level)
	}
	return l, nil
}

// NewLogger creates the application logger.
// Logs are discarded unless logPath is set, in which case they are written to a rotating log file.
func NewLogger(level string, logPath string) (hclog.Logger, error) {
	l, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}

	var output io.Writer = io.Discard
	if logPath = strings.TrimSpace(logPath); logPath != "" {
		output = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    logMaxSizeMB,
			MaxBackups: logMaxBackups,
		}
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "clawconf",
		Level:  l,
		Output: output,
	}), nil
}
