// Package logger adapts logrus to the ports.Logger interface.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/doeshing/ollash/internal/ports"
)

// LogrusLogger routes structured logs to stderr. Quiet unless verbose.
type LogrusLogger struct {
	l *logrus.Logger
}

// New creates a LogrusLogger. Verbose enables debug-level output.
func New(verbose bool) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log := &LogrusLogger{l: l}
	log.SetVerbose(verbose)
	return log
}

// SetVerbose raises or lowers the level after construction. The CLI parses
// --debug later than the container wires the logger, so the flag adjusts the
// level through here.
func (l *LogrusLogger) SetVerbose(verbose bool) {
	if verbose {
		l.l.SetLevel(logrus.DebugLevel)
	} else {
		l.l.SetLevel(logrus.WarnLevel)
	}
}

func (l *LogrusLogger) Debug(msg string, fields map[string]interface{}) {
	l.l.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *LogrusLogger) Info(msg string, fields map[string]interface{}) {
	l.l.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *LogrusLogger) Warn(msg string, fields map[string]interface{}) {
	l.l.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *LogrusLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.l.WithFields(logrus.Fields(fields)).WithError(err).Error(msg)
}

var _ ports.Logger = (*LogrusLogger)(nil)
