package logger

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Logger writes session diagnostics (file opened, dialect decisions, load
// progress) through a buffered channel so callers never block on I/O. A nil
// *Logger is a valid no-op logger.
type Logger struct {
	out      io.WriteCloser
	logChan  chan string
	stopChan chan struct{}
	doneChan chan struct{}
}

// New creates a logger writing to the given file, creating it if needed.
func New(filename string) (*Logger, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}
	return NewWithWriter(file), nil
}

// NewWithWriter creates a logger over an arbitrary writer and starts the
// background drain goroutine.
func NewWithWriter(out io.WriteCloser) *Logger {
	l := &Logger{
		out:      out,
		logChan:  make(chan string, 256),
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
	go l.run()
	return l
}

// Printf queues a formatted diagnostic line. Safe on a nil logger.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil {
		return
	}
	line := fmt.Sprintf("[%s] %s\n", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...))
	select {
	case l.logChan <- line:
	default:
		// Drop rather than block the UI control flow.
	}
}

// run drains the log channel until stopped, then flushes what remains.
func (l *Logger) run() {
	defer close(l.doneChan)
	for {
		select {
		case line := <-l.logChan:
			io.WriteString(l.out, line)
		case <-l.stopChan:
			for {
				select {
				case line := <-l.logChan:
					io.WriteString(l.out, line)
				default:
					return
				}
			}
		}
	}
}

// Close stops the drain goroutine, flushes pending lines and closes the
// underlying writer. Safe on a nil logger.
func (l *Logger) Close() {
	if l == nil {
		return
	}
	close(l.stopChan)
	<-l.doneChan
	l.out.Close()
}
