// Package progress reports coarse completion percentages for long flash
// operations. Reporting is purely informational: engines work the same
// with the Discard reporter.
package progress

import (
	"fmt"
	"io"
	"time"
)

// Reporter receives updates around one long running operation. Start and
// End always pair; Update may be called any number of times in between
// with the count of bytes finished so far.
type Reporter interface {
	Start(op string, total int64)
	Update(done int64)
	End()
}

// Discard is a Reporter that does nothing.
type Discard struct{}

func (Discard) Start(string, int64) {}
func (Discard) Update(int64)        {}
func (Discard) End()                {}

// Meter writes rate limited percentage lines to an io.Writer.
type Meter struct {
	w        io.Writer
	interval time.Duration

	op       string
	total    int64
	done     int64
	lastTick time.Time
}

// NewMeter returns a Meter printing to w at most once per interval. A zero
// interval defaults to one second.
func NewMeter(w io.Writer, interval time.Duration) *Meter {
	if interval <= 0 {
		interval = time.Second
	}
	return &Meter{w: w, interval: interval}
}

func (m *Meter) Start(op string, total int64) {
	m.op = op
	m.total = total
	m.done = 0
	m.lastTick = time.Now()
}

func (m *Meter) Update(done int64) {
	m.done = done
	if time.Since(m.lastTick) < m.interval {
		return
	}
	m.lastTick = time.Now()
	m.print()
}

func (m *Meter) End() {
	m.print()
	fmt.Fprintln(m.w)
}

func (m *Meter) print() {
	if m.total <= 0 {
		return
	}
	fmt.Fprintf(m.w, "\r%s %d%% [%d] of [%d] bytes      ", m.op, 100*m.done/m.total, m.done, m.total)
}
