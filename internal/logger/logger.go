package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is relative to the process working directory.
const LogFilePath = "logs/boxpush.log"

// Logger writes timestamped lines to stderr and appends them to a log file.
// The file handle is kept open for the lifetime of the process.
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

// New returns a Logger, creating the logs directory if needed. A logger that
// cannot open its file still logs to stderr.
func New() *Logger {
	l := &Logger{}
	if err := os.MkdirAll(filepath.Dir(LogFilePath), 0755); err != nil {
		return l
	}
	f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return l
	}
	l.file = f
	return l
}

func (l *Logger) Infof(format string, args ...any) {
	l.write("INFO", fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.write("WARN", fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.write("ERROR", fmt.Sprintf(format, args...))
}

func (l *Logger) write(level, msg string) {
	log.Printf("%s %s", level, msg)
	if l == nil || l.file == nil {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	fmt.Fprintf(l.file, "[%s] %s %s\n", ts, level, msg)
	l.mu.Unlock()
}

// Close flushes and closes the underlying log file.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}
