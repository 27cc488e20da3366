// Package logging configures the process-wide diagnostic logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"slnmap/config"
)

// Setup configures the logrus standard logger from config. Diagnostics go
// to stderr by default so JSON output on stdout stays clean.
func Setup(cfg config.LogConfig) {
	// Set log level
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("invalid log level %q, using 'warning' instead: %v", cfg.Level, err)
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)

	// Set log format
	switch strings.ToLower(cfg.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	// Set log output
	var output io.Writer
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		output = os.Stdout
	case "stderr", "":
		output = os.Stderr
	default:
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logrus.Warnf("failed to open log file %q, using stderr instead: %v", cfg.Output, err)
			output = os.Stderr
		} else {
			output = file
		}
	}
	logrus.SetOutput(output)
}
