package snor

import (
	"fmt"
	"time"
)

func (s *SNOR) readRegister(op byte) (byte, error) {
	var val [1]byte
	if err := s.command([]byte{op}, val[:]); err != nil {
		return 0, err
	}
	return val[0], nil
}

func (s *SNOR) writeRegister(op byte, val byte) error {
	return s.command([]byte{op, val}, nil)
}

func (s *SNOR) readStatus() (byte, error) {
	return s.readRegister(opReadStatus)
}

func (s *SNOR) writeStatus(val byte) error {
	return s.writeRegister(opWriteStatus, val)
}

func (s *SNOR) writeEnable() error {
	return s.command([]byte{opWriteEnable}, nil)
}

func (s *SNOR) writeDisable() error {
	return s.command([]byte{opWriteDisable}, nil)
}

// unprotect clears the block protect bits if any of them is set. Calling
// it on an unprotected device does nothing.
func (s *SNOR) unprotect() error {
	sr, err := s.readStatus()
	if err != nil {
		return fmt.Errorf("unprotect: %w", err)
	}

	if sr&(srBP0|srBP1|srBP2) != 0 {
		s.log("clearing block protection, status %02x", sr)
		return s.writeStatus(0)
	}
	return nil
}

// pollAttempts converts an operation budget into a poll count. The
// envelope is deliberately generous: one chip guarantees a few ms after
// page writes but potentially seconds after an erase, so the budget is a
// tuning knob, not a literal deadline.
func pollAttempts(budget int) int {
	return (budget + 1) * 1000
}

// waitReady polls the status register until WIP, WEL and EPE are all
// clear. It fails on a transport error mid poll or once the attempt
// budget is exhausted.
func (s *SNOR) waitReady(budget int) error {
	attempts := pollAttempts(budget)
	if s.maxPollAttempts > 0 && attempts > s.maxPollAttempts {
		attempts = s.maxPollAttempts
	}

	var sr byte
	for i := 0; i < attempts; i++ {
		var err error
		if sr, err = s.readStatus(); err != nil {
			return fmt.Errorf("wait ready: %w", err)
		}
		if sr&(srWIP|srWEL|srEPE) == 0 {
			return nil
		}
		time.Sleep(s.pollInterval)
	}

	s.log("wait ready: status stuck at %02x", sr)
	return ErrTimeout
}
