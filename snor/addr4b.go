package snor

import "fmt"

// set4ByteMode switches the device in or out of 4-byte addressing. It is
// bracketed around every erase, read and write touching a part whose
// descriptor declares Addr4B.
//
// Spansion parts use the bank address register and confirm by readback; a
// mismatch fails the call. Everything else takes a single enter/exit
// opcode, and Winbond parts additionally clear the extended address
// register on exit.
func (s *SNOR) set4ByteMode(enable bool) error {
	if err := s.waitReady(1); err != nil {
		return err
	}

	if s.chip.ManufacturerID == vendorSpansion {
		var br byte
		if enable {
			br = 0x81
		}
		if err := s.writeRegister(opBankWrite, br); err != nil {
			return err
		}
		got, err := s.readRegister(opBankRead)
		if err != nil {
			return err
		}
		if got != br {
			return fmt.Errorf("%w: wrote %02x, read back %02x", ErrAddressMode, br, got)
		}
		return nil
	}

	op := byte(opEnter4B)
	if !enable {
		op = opExit4B
	}
	if err := s.command([]byte{op}, nil); err != nil {
		return err
	}

	if !enable && s.chip.ManufacturerID == vendorWinbond {
		if err := s.writeEnable(); err != nil {
			return err
		}
		return s.writeRegister(opWriteEAR, 0)
	}
	return nil
}
