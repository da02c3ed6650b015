package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	gokitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type LoggerOpts struct {
	// Prefix names the log file, <Prefix>_<timestamp>.log.
	Prefix string
	// Dir enables the log file when set.
	Dir string
	// Level is one of debug, info, warn or error.
	Level string
	// Output defaults to os.Stderr. Stdout is left to prompts and the report.
	Output io.Writer
}

// NewLogger creates a logfmt logger that writes to Output and, when Dir is set, to a file.
// The returned close func releases the file and is safe to call when there is none.
func NewLogger(opts LoggerOpts) (gokitlog.Logger, func() error, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	closeFn := func() error { return nil }

	if opts.Dir != "" {
		// Create logs directory if it doesn't exist
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
		}

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		logFile := filepath.Join(opts.Dir, fmt.Sprintf("%s_%s.log", opts.Prefix, timestamp))

		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}

		out = io.MultiWriter(out, file)
		closeFn = file.Close
	}

	logger := gokitlog.NewLogfmtLogger(gokitlog.NewSyncWriter(out))
	logger = level.NewFilter(logger, levelOption(opts.Level))
	logger = gokitlog.With(logger, "ts", gokitlog.DefaultTimestampUTC, "caller", gokitlog.DefaultCaller)

	return logger, closeFn, nil
}

func levelOption(name string) level.Option {
	switch name {
	case "debug":
		return level.AllowDebug()
	case "info":
		return level.AllowInfo()
	case "error":
		return level.AllowError()
	default:
		return level.AllowWarn()
	}
}

// LogWithTiming logs a message with timing information
func LogWithTiming(logger gokitlog.Logger, startTime time.Time, format string, v ...interface{}) {
	elapsed := time.Since(startTime)
	message := fmt.Sprintf(format, v...)
	level.Info(logger).Log("msg", message, "took", elapsed)
}
