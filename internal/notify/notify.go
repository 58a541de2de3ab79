// Package notify keeps the user-facing notification history of a viewer
// session. Every notification is also written to the application log.
package notify

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshstats/internal/logger"
)

// DefaultTimeFormat is the timestamp layout used when none is configured.
const DefaultTimeFormat = "15:04:05"

// Type is the severity of a notification.
type Type uint8

const (
	Info Type = iota
	Warning
	Error
)

// String returns the severity name.
func (t Type) String() string {
	switch t {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Notification is a single timestamped message.
type Notification struct {
	Text    string    // Text as posted
	Message string    // Text prefixed with the bracketed timestamp
	Type    Type
	Time    time.Time
	Seq     uint64    // Position in the session, starting at 1
}

// String returns the rendered message.
func (n Notification) String() string {
	return n.Message
}

// Log is an append-only notification history, safe for concurrent use.
type Log struct {
	mu       sync.Mutex
	entries  []Notification
	seq      uint64
	capacity int
	layout   string
	now      func() time.Time
	log      *zap.Logger
}

// Option configures a Log.
type Option func(*Log)

// WithCapacity keeps only the n most recent notifications. Zero or
// negative means unbounded.
func WithCapacity(n int) Option {
	return func(l *Log) { l.capacity = n }
}

// WithTimeFormat sets the timestamp layout used in rendered messages.
func WithTimeFormat(layout string) Option {
	return func(l *Log) {
		if layout != "" {
			l.layout = layout
		}
	}
}

// WithLogger mirrors notifications to lg instead of the global logger.
func WithLogger(lg *zap.Logger) Option {
	return func(l *Log) { l.log = lg }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// New creates an empty notification log.
func New(opts ...Option) *Log {
	l := &Log{
		layout: DefaultTimeFormat,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logger.Named("notify")
	}
	return l
}

// Info posts an informational notification.
func (l *Log) Info(format string, args ...any) Notification {
	return l.Add(Info, fmt.Sprintf(format, args...))
}

// Warning posts a warning notification.
func (l *Log) Warning(format string, args ...any) Notification {
	return l.Add(Warning, fmt.Sprintf(format, args...))
}

// Error posts an error notification.
func (l *Log) Error(format string, args ...any) Notification {
	return l.Add(Error, fmt.Sprintf(format, args...))
}

// Add posts text with the given severity. It panics if text is empty.
func (l *Log) Add(typ Type, text string) Notification {
	if text == "" {
		panic("notify: empty notification message")
	}

	l.mu.Lock()
	now := l.now()
	l.seq++
	n := Notification{
		Seq:     l.seq,
		Text:    text,
		Message: "[" + now.Format(l.layout) + "] " + text,
		Type:    typ,
		Time:    now,
	}
	l.entries = append(l.entries, n)
	if l.capacity > 0 && len(l.entries) > l.capacity {
		// Drop the oldest in place.
		drop := len(l.entries) - l.capacity
		copy(l.entries, l.entries[drop:])
		l.entries = l.entries[:l.capacity]
	}
	l.mu.Unlock()

	switch typ {
	case Warning:
		l.log.Warn("Notification", zap.String("message", n.Message))
	case Error:
		l.log.Error("Notification", zap.String("message", n.Message))
	default:
		l.log.Info("Notification", zap.String("message", n.Message))
	}
	return n
}

// All returns a copy of the history, oldest first.
func (l *Log) All() []Notification {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Notification, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of stored notifications.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Last returns the most recent notification, if any.
func (l *Log) Last() (Notification, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return Notification{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Clear drops every stored notification. Sequence numbers keep counting.
func (l *Log) Clear() {
	l.mu.Lock()
	l.entries = l.entries[:0]
	l.mu.Unlock()
}
