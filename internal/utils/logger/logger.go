package logger

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
)

var (
	infoColor    = color.New(color.FgCyan).SprintFunc()
	successColor = color.New(color.FgGreen).SprintFunc()
	warnColor    = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
)

// Logger is a scoped console logger.
type Logger struct {
	scope string
}

func New(scope string) *Logger {
	return &Logger{scope: scope}
}

func (l *Logger) printf(level, format string, args ...interface{}) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	fmt.Printf("%s %s [%s] %s\n", ts, level, l.scope, fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.printf(infoColor("INFO"), format, args...)
}

func (l *Logger) Success(format string, args ...interface{}) {
	l.printf(successColor("OK"), format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.printf(warnColor("WARN"), format, args...)
}

// Error logs the formatted message and returns it as an error so call
// sites can log and propagate in one step.
func (l *Logger) Error(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	l.printf(errorColor("ERROR"), "%s", msg)
	return errors.New(msg)
}
