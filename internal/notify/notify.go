// Package notify keeps the transient notifications (toasts) raised by workflows.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Kind classifies a notification.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Warning Kind = "warning"
	Info    Kind = "info"
)

// DefaultDuration is how long a toast stays visible.
const DefaultDuration = 4 * time.Second

// Toast is a single notification.
type Toast struct {
	ID        string
	Kind      Kind
	Message   string
	Duration  time.Duration
	CreatedAt time.Time
}

// Expired reports whether the toast is no longer visible at now.
func (t Toast) Expired(now time.Time) bool {
	return !now.Before(t.CreatedAt.Add(t.Duration))
}

// Notifier is what workflows use to report outcomes.
type Notifier interface {
	Show(kind Kind, message string)
}

// Sink receives every toast as it is raised.
type Sink interface {
	Deliver(Toast)
}

// Center records toasts and fans them out to sinks.
type Center struct {
	mu       sync.Mutex
	toasts   []Toast
	sinks    []Sink
	duration time.Duration
	now      func() time.Time
	logger   zerolog.Logger
}

// NewCenter creates a notification center delivering to sinks.
func NewCenter(logger zerolog.Logger, sinks ...Sink) *Center {
	return &Center{
		sinks:    sinks,
		duration: DefaultDuration,
		now:      time.Now,
		logger:   logger,
	}
}

// Show raises a toast with the default duration.
func (c *Center) Show(kind Kind, message string) {
	c.ShowFor(kind, message, c.duration)
}

// ShowFor raises a toast visible for d.
func (c *Center) ShowFor(kind Kind, message string, d time.Duration) Toast {
	t := Toast{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		Duration:  d,
		CreatedAt: c.now(),
	}

	c.mu.Lock()
	c.toasts = append(c.toasts, t)
	sinks := c.sinks
	c.mu.Unlock()

	c.logger.Debug().Str("kind", string(kind)).Str("toast_id", t.ID).Msg(message)
	for _, s := range sinks {
		s.Deliver(t)
	}
	return t
}

// Active returns the toasts still visible, oldest first.
func (c *Center) Active() []Toast {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	active := make([]Toast, 0, len(c.toasts))
	for _, t := range c.toasts {
		if !t.Expired(now) {
			active = append(active, t)
		}
	}
	return active
}

// History returns every toast raised so far.
func (c *Center) History() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Toast(nil), c.toasts...)
}

// Last returns the most recent toast.
func (c *Center) Last() (Toast, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.toasts) == 0 {
		return Toast{}, false
	}
	return c.toasts[len(c.toasts)-1], true
}

// Remove dismisses a toast before it expires.
func (c *Center) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, t := range c.toasts {
		if t.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return
		}
	}
}

// Prune drops expired toasts.
func (c *Center) Prune() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
}

var icons = map[Kind]string{
	Success: "✔",
	Error:   "✖",
	Warning: "⚠",
	Info:    "ℹ",
}

// WriterSink prints each toast on its own line.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Deliver implements Sink.
func (s *WriterSink) Deliver(t Toast) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s %s\n", icons[t.Kind], t.Message)
}
