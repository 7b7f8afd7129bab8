package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05"

// ConsoleLogger is a leveled, line-oriented logging engine. Each line carries a timestamp, the
// level name, and the formatted message.
type ConsoleLogger struct {
	level Level
	out   io.Writer
	now   func() time.Time
	mutex sync.Mutex
}

// NewConsoleLogger creates a logger writing to standard output, limited to the specified level.
func NewConsoleLogger(level Level) Logger {
	return NewWriterLogger(os.Stdout, level)
}

// NewWriterLogger creates a logger writing to an arbitrary destination, limited to the specified
// level. Writes are serialized, so the logger may be shared between goroutines.
func NewWriterLogger(out io.Writer, level Level) *ConsoleLogger {
	return &ConsoleLogger{
		level: level,
		out:   out,
		now:   time.Now,
	}
}

// Debug logs a debug message, if permitted by the current level.
func (l *ConsoleLogger) Debug(format string, v ...interface{}) {
	l.log(Debug, format, v...)
}

// Info logs an informational message, if permitted by the current level.
func (l *ConsoleLogger) Info(format string, v ...interface{}) {
	l.log(Info, format, v...)
}

// Warn logs a warning message, if permitted by the current level.
func (l *ConsoleLogger) Warn(format string, v ...interface{}) {
	l.log(Warn, format, v...)
}

// Error logs an error message, if permitted by the current level.
func (l *ConsoleLogger) Error(format string, v ...interface{}) {
	l.log(Error, format, v...)
}

// Level reads the current logging level.
func (l *ConsoleLogger) Level() Level {
	return l.level
}

func (l *ConsoleLogger) log(level Level, format string, v ...interface{}) {
	if !l.level.Enables(level) {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	fmt.Fprintf(
		l.out,
		"%s %s\t%s\n",
		l.now().Format(timestampFormat),
		level,
		fmt.Sprintf(format, v...),
	)
}
