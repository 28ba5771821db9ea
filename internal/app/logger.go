package app

import (
	"fmt"
	"io"
	"time"
)

// Logger receives diagnostic lines tagged with the component that wrote them.
// Console progress is printed separately and does not go through it.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes RFC 3339 timestamped lines to w.
type FileLogger struct {
	w   io.Writer
	now func() time.Time
}

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w, now: time.Now} }

func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	l.write("INFO", component, format, args...)
}

func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.write("ERROR", component, format, args...)
}

func (l FileLogger) write(level, component, format string, args ...interface{}) {
	now := time.Now
	if l.now != nil {
		now = l.now
	}
	line := fmt.Sprintf("%s [%s] %s: %s\n", now().Format(time.RFC3339), level, component, fmt.Sprintf(format, args...))
	_, _ = io.WriteString(l.w, line)
}
