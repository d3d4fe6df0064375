// Package logging configures the session logger. The fullscreen UI
// owns the terminal, so log output goes to a file under the data
// directory rather than stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to the given file path. Logging is
// best-effort: if the file cannot be opened, output is discarded so a
// broken log destination never blocks a session.
func New(path string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level := logrus.InfoLevel
	if lvl, err := logrus.ParseLevel(os.Getenv("TOMODORO_LOG_LEVEL")); err == nil {
		level = lvl
	}
	logger.SetLevel(level)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.SetOutput(io.Discard)
		return logger
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return logger
	}
	logger.SetOutput(file)
	return logger
}
