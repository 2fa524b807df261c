// Package termapp implements the interactive terminal front end: a
// log.Logger that writes level-prefixed lines to stderr, and a
// ui.Prompter that reads menu answers from stdin.
package termapp

import (
	"fmt"
	"os"
	"sort"

	"github.com/purbtool/purb/log"
)

// Logger writes level-prefixed log lines to stderr. DebugLevel entries are
// suppressed unless Debug is true, matching --unsafe-debug.
type Logger struct {
	Debug bool

	level  log.LoggerLevel
	err    error
	fields map[string]any
}

var _ log.Factory = (*Logger)(nil)
var _ log.Logger = (*Logger)(nil)

// NewLogger builds a Logger; debug enables DebugLevel output.
func NewLogger(debug bool) *Logger {
	return &Logger{Debug: debug, level: log.InfoLevel}
}

// New returns a fresh logger entry sharing the Debug setting.
func (l *Logger) New() log.Logger {
	return &Logger{Debug: l.Debug, level: log.InfoLevel}
}

func (l *Logger) Level(lvl log.LoggerLevel) log.Logger {
	l.level = lvl
	return l
}

func (l *Logger) Field(k string, v any) log.Logger {
	if l.fields == nil {
		l.fields = make(map[string]any)
	}
	l.fields[k] = v
	return l
}

func (l *Logger) Fields(data map[string]any) log.Logger {
	for k, v := range data {
		l.Field(k, v)
	}
	return l
}

func (l *Logger) Error(err error) log.Logger {
	l.err = err
	return l
}

func (l *Logger) Message(msg string) {
	if l.level == log.DebugLevel && !l.Debug {
		return
	}
	fmt.Fprintf(os.Stderr, "%s%s%s\n", levelPrefix(l.level), msg, l.renderTail())
}

func (l *Logger) Messagef(format string, v ...any) {
	l.Message(fmt.Sprintf(format, v...))
}

func (l *Logger) renderTail() string {
	tail := ""
	if len(l.fields) > 0 {
		keys := make([]string, 0, len(l.fields))
		for k := range l.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			tail += fmt.Sprintf(" %s=%v", k, l.fields[k])
		}
	}
	if l.err != nil {
		tail += fmt.Sprintf(" error=%v", l.err)
	}
	return tail
}

func levelPrefix(lvl log.LoggerLevel) string {
	switch lvl {
	case log.DebugLevel:
		return "D: "
	case log.WarnLevel:
		return "W: "
	case log.ErrorLevel:
		return "E: "
	default:
		return "I: "
	}
}
