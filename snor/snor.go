package snor

import (
	"fmt"
	"time"

	"github.com/bigbigmdm/SNANDer-VCC/progress"
)

// Speed selects the transfer lane grade for a bus read. Dual and quad are
// declared for controllers that support them, but the engine only ever
// issues single lane transfers.
type Speed int

const (
	SpeedSingle Speed = iota
	SpeedDual
	SpeedQuad
)

// Controller is the raw SPI transport the engine drives. Select and
// Deselect bracket one chip select session; Write and Read move bytes
// within it. Write is io.Writer shaped so the page program engine can
// observe short transfers; a short Read is always a failure, so Read
// reports error only.
type Controller interface {
	Select() error
	Deselect() error
	Write(p []byte) (int, error)
	Read(p []byte, speed Speed) error
}

// SNOR is a session with one identified flash device. It is created by
// Probe and is not safe for concurrent use: every operation is a sequence
// of blocking bus transactions that must not interleave.
type SNOR struct {
	c    Controller
	chip Chip

	pollInterval    time.Duration
	maxPollAttempts int
	reporter        progress.Reporter

	LogFunc func(format string, params ...any)
}

type config struct {
	pollInterval    time.Duration
	maxPollAttempts int
	reporter        progress.Reporter
	logFunc         func(format string, params ...any)
	extraParts      []Chip
}

// Option configures a session created by Probe.
type Option func(*config)

// WithLogger sets a diagnostic log function. The engine works fine
// without one.
func WithLogger(logFunc func(format string, params ...any)) Option {
	return func(c *config) {
		c.logFunc = logFunc
	}
}

// WithProgress sets a reporter that receives coarse completion updates
// during erase, read and write loops.
func WithProgress(r progress.Reporter) Option {
	return func(c *config) {
		c.reporter = r
	}
}

// WithPollInterval sets the sleep between status register polls while
// waiting for the device to go idle. Default 500µs.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithMaxPollAttempts caps the number of status polls per wait regardless
// of the per operation budget. Zero means no cap.
func WithMaxPollAttempts(n int) Option {
	return func(c *config) {
		c.maxPollAttempts = n
	}
}

// WithParts adds user supplied part descriptors to the registry consulted
// by Probe. Builtin parts keep scan priority.
func WithParts(parts []Chip) Option {
	return func(c *config) {
		c.extraParts = append(c.extraParts, parts...)
	}
}

// Probe reads the JEDEC id from the bus and selects the best matching
// registry entry. It returns ErrNoDevice when no entry shares the probed
// manufacturer id.
func Probe(c Controller, opts ...Option) (*SNOR, error) {
	cfg := config{
		pollInterval: 500 * time.Microsecond,
		reporter:     progress.Discard{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &SNOR{
		c:               c,
		pollInterval:    cfg.pollInterval,
		maxPollAttempts: cfg.maxPollAttempts,
		reporter:        cfg.reporter,
		LogFunc:         cfg.logFunc,
	}

	var id [5]byte
	if err := s.command([]byte{opReadJedecID}, id[:]); err != nil {
		return nil, fmt.Errorf("read device id: %w", err)
	}

	jedec := uint32(id[1])<<24 | uint32(id[2])<<16 | uint32(id[3])<<8 | uint32(id[4])
	s.log("device id: %02x %02x %02x %02x %02x (%08x)", id[0], id[1], id[2], id[3], id[4], jedec)

	chip, ok := NewRegistry(cfg.extraParts).identify(id[0], jedec)
	if !ok {
		return nil, ErrNoDevice
	}

	s.chip = chip
	s.log("detected %s, %d MiB, VCC %.2f..%.2fV", chip.Name, chip.Capacity()>>20, chip.VccMin, chip.VccMax)

	return s, nil
}

// Chip returns the descriptor selected at probe time.
func (s *SNOR) Chip() Chip {
	return s.chip
}

// Capacity returns the total device size in bytes.
func (s *SNOR) Capacity() int64 {
	return s.chip.Capacity()
}

// SectorSize returns the erase granularity in bytes.
func (s *SNOR) SectorSize() uint32 {
	return s.chip.SectorSize
}

func (s *SNOR) log(format string, params ...any) {
	if s.LogFunc != nil {
		s.LogFunc(format, params...)
	}
}

// command runs one bracketed chip select session: send out, then read
// len(in) bytes if in is not empty.
func (s *SNOR) command(out []byte, in []byte) error {
	if err := s.c.Select(); err != nil {
		return err
	}
	if _, err := s.c.Write(out); err != nil {
		s.c.Deselect()
		return err
	}
	if len(in) > 0 {
		if err := s.c.Read(in, SpeedSingle); err != nil {
			s.c.Deselect()
			return err
		}
	}
	return s.c.Deselect()
}

// addrCommand builds an opcode followed by the device address, most
// significant byte first, 4 address bytes in 4-byte mode and 3 otherwise.
func (s *SNOR) addrCommand(op byte, addr uint32) []byte {
	if s.chip.Addr4B {
		return []byte{op, byte(addr >> 24), byte(addr >> 16), byte(addr >> 8), byte(addr)}
	}
	return []byte{op, byte(addr >> 16), byte(addr >> 8), byte(addr)}
}
