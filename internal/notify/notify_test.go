package notify

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestCenter(now *time.Time, sinks ...Sink) *Center {
	c := NewCenter(zerolog.Nop(), sinks...)
	c.now = func() time.Time { return *now }
	return c
}

func TestCenter_ShowAndExpire(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	c := newTestCenter(&now)

	c.Show(Success, "saved")
	c.ShowFor(Error, "failed", 10*time.Second)

	if got := len(c.Active()); got != 2 {
		t.Fatalf("Active = %d, want 2", got)
	}

	now = now.Add(DefaultDuration)
	active := c.Active()
	if len(active) != 1 || active[0].Message != "failed" {
		t.Fatalf("Active after default duration = %+v, want only the long toast", active)
	}

	c.Prune()
	if got := len(c.History()); got != 1 {
		t.Errorf("History after Prune = %d, want 1", got)
	}
}

func TestCenter_Remove(t *testing.T) {
	now := time.Now()
	c := newTestCenter(&now)
	toast := c.ShowFor(Info, "hello", time.Minute)
	c.Show(Warning, "careful")

	c.Remove(toast.ID)

	last, ok := c.Last()
	if !ok || last.Message != "careful" {
		t.Errorf("Last = %+v, want careful", last)
	}
	if got := len(c.History()); got != 1 {
		t.Errorf("History = %d, want 1", got)
	}
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	now := time.Now()
	c := newTestCenter(&now, NewWriterSink(&buf))

	c.Show(Error, "Slot already taken")

	if !strings.Contains(buf.String(), "Slot already taken") {
		t.Errorf("sink output = %q", buf.String())
	}
	if !strings.HasPrefix(buf.String(), icons[Error]) {
		t.Errorf("sink output %q missing error icon", buf.String())
	}
}
