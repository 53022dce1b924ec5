package logger

import (
	"fmt"
	"log"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

type Logger interface {
	Debugf(format string, a ...any)
	Infof(format string, a ...any)
	Warnf(format string, a ...any)
	Errorf(format string, a ...any)
}

type stdLogger struct {
	level Level
}

// NewLogger writes level-tagged lines through the standard log package.
// SILENCE drops everything, which is what tests run with.
func NewLogger(level Level) Logger {
	return &stdLogger{level: level}
}

func (l *stdLogger) logf(level Level, tag, format string, a ...any) {
	if level < l.level {
		return
	}

	log.Printf("%s %s", tag, fmt.Sprintf(format, a...))
}

func (l *stdLogger) Debugf(format string, a ...any) { l.logf(DEBUG, "DEBUG", format, a...) }
func (l *stdLogger) Infof(format string, a ...any)  { l.logf(INFO, "INFO", format, a...) }
func (l *stdLogger) Warnf(format string, a ...any)  { l.logf(WARNING, "WARN", format, a...) }
func (l *stdLogger) Errorf(format string, a ...any) { l.logf(ERROR, "ERROR", format, a...) }
