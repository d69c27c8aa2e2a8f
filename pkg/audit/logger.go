package audit

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the append-only audit trail. Every attempted and completed
// action passes through here before the console shows its next menu.
// Recording never fails the caller: a broken sink degrades to a single
// console notice.
type Logger struct {
	log     *logrus.Logger
	file    *os.File
	console io.Writer
}

// lineFormatter renders one event per line: [LEVEL] <timestamp> <message>.
type lineFormatter struct{}

func (f *lineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	level := "INFO"
	if entry.Level <= logrus.ErrorLevel {
		level = "ERROR"
	}
	line := fmt.Sprintf("[%s] %s %s\n", level, entry.Time.Format("2006-01-02 15:04:05"), entry.Message)
	return []byte(line), nil
}

// bestEffortWriter swallows sink errors so audit writes can never block
// operator workflow. The first failure produces one console notice.
type bestEffortWriter struct {
	sink     io.Writer
	console  io.Writer
	notified bool
}

func (w *bestEffortWriter) Write(p []byte) (int, error) {
	if _, err := w.sink.Write(p); err != nil && !w.notified {
		w.notified = true
		fmt.Fprintf(w.console, "warning: audit log write failed: %v\n", err)
	}
	return len(p), nil
}

// New opens (or creates) the audit file in append mode.
func New(path string, console io.Writer) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log %s: %v", path, err)
	}
	logger := NewWithSink(file, console)
	logger.file = file
	return logger, nil
}

// NewWithSink builds a logger over an arbitrary sink. Tests use this.
func NewWithSink(sink io.Writer, console io.Writer) *Logger {
	if console == nil {
		console = os.Stderr
	}
	log := logrus.New()
	log.SetOutput(&bestEffortWriter{sink: sink, console: console})
	log.SetFormatter(&lineFormatter{})
	log.SetLevel(logrus.InfoLevel)
	return &Logger{log: log, console: console}
}

func (l *Logger) Info(format string, args ...any) {
	l.log.Infof(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log.Errorf(format, args...)
}

// Close flushes the sink at process exit.
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Sync()
		l.file.Close()
	}
}
