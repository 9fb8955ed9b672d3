// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger prints verbose diagnostics for zotero-notes on stderr.
// Debug and info messages appear only with --verbose; warnings always do.
package logger

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

var std = newLogger(os.Stderr)

func newLogger(w io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetLevel(log.WarnLevel)
	l.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	return l
}

// SetVerbose enables or disables debug and info messages.
func SetVerbose(v bool) {
	if v {
		std.SetLevel(log.DebugLevel)
		return
	}
	std.SetLevel(log.WarnLevel)
}

// IsVerbose reports whether verbose mode is enabled.
func IsVerbose() bool {
	return std.IsLevelEnabled(log.DebugLevel)
}

// SetOutput redirects log output. Tests use it to capture messages.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Debug logs a per-record detail.
func Debug(format string, args ...any) {
	std.Debugf(format, args...)
}

// Info logs a per-run step.
func Info(format string, args ...any) {
	std.Infof(format, args...)
}

// Warn logs a problem that does not stop the run.
func Warn(format string, args ...any) {
	std.Warnf(format, args...)
}

// WithField returns an entry carrying one structured field, for messages
// about a single record.
func WithField(key string, value any) *log.Entry {
	return std.WithField(key, value)
}
