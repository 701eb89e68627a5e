// ABOUTME: Structured logger backed by logrus with optional rotating file output
// ABOUTME: Maps the core Logger field maps onto logrus fields

package structured

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xiajiun/article-scraping/pkg/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 5
	maxLogAgeDays = 30
)

// Logger implements interfaces.Logger on top of logrus
type Logger struct {
	entry  *logrus.Entry
	closer io.Closer
}

// New builds a logger from configuration. When cfg.File is set, output goes
// to a size-rotated file instead of stderr.
func New(cfg config.LogConfig) *Logger {
	var out io.Writer = os.Stderr
	var closer io.Closer
	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
		}
		out = rotating
		closer = rotating
	}

	l := NewWithWriter(out, cfg.Level, cfg.Format)
	l.closer = closer
	return l
}

// NewWithWriter builds a logger writing to w. Unknown levels fall back to info.
func NewWithWriter(w io.Writer, level, format string) *Logger {
	base := logrus.New()
	base.SetOutput(w)

	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	base.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	return &Logger{entry: logrus.NewEntry(base)}
}

// With returns a logger that adds fields to every line
func (l *Logger) With(fields map[string]interface{}) *Logger {
	return &Logger{entry: l.entry.WithFields(fields), closer: l.closer}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(fields).Error(msg)
}

// Close flushes and closes the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
