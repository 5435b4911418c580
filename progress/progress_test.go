package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestMeterPrintsPercentage(t *testing.T) {
	var out bytes.Buffer
	m := NewMeter(&out, time.Nanosecond)

	m.Start("erase", 200)
	time.Sleep(time.Millisecond)
	m.Update(50)
	time.Sleep(time.Millisecond)
	m.Update(200)
	m.End()

	s := out.String()
	if !strings.Contains(s, "erase 25%") {
		t.Errorf("missing 25%% line in %q", s)
	}
	if !strings.Contains(s, "erase 100%") {
		t.Errorf("missing 100%% line in %q", s)
	}
}

func TestMeterRateLimits(t *testing.T) {
	var out bytes.Buffer
	m := NewMeter(&out, time.Hour)

	m.Start("read", 100)
	for i := int64(1); i <= 99; i++ {
		m.Update(i)
	}

	if out.Len() != 0 {
		t.Errorf("meter printed %q before the interval elapsed", out.String())
	}
}

func TestDiscardDoesNothing(t *testing.T) {
	var d Discard
	d.Start("write", 100)
	d.Update(50)
	d.End()
}
