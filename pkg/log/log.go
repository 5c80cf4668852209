// Package log provides the logging interface used throughout the
// emulator, along with a logrus backed implementation.
package log

import "github.com/sirupsen/logrus"

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text to stderr at the
// info level.
func New() Logger {
	return newLogrus(logrus.InfoLevel)
}

// NewDebug returns a Logger writing plain text to stderr,
// including debug messages.
func NewDebug() Logger {
	return newLogrus(logrus.DebugLevel)
}

func newLogrus(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
