package snor

import "fmt"

// eraseSector erases the sector containing offset.
func (s *SNOR) eraseSector(offset uint32) error {
	if err := s.waitReady(950); err != nil {
		return err
	}

	if s.chip.Addr4B {
		if err := s.set4ByteMode(true); err != nil {
			return err
		}
	}

	if err := s.writeEnable(); err != nil {
		return err
	}

	if err := s.command(s.addrCommand(opSectorErase, offset), nil); err != nil {
		return err
	}

	if err := s.waitReady(950); err != nil {
		return err
	}

	if s.chip.Addr4B {
		return s.set4ByteMode(false)
	}
	return nil
}

// eraseChip erases the whole device with a single bulk erase command.
func (s *SNOR) eraseChip() error {
	if err := s.waitReady(3); err != nil {
		return err
	}

	if err := s.writeEnable(); err != nil {
		return err
	}
	if err := s.unprotect(); err != nil {
		return err
	}

	if err := s.command([]byte{opBulkEraseAlt}, nil); err != nil {
		return err
	}

	if err := s.waitReady(950); err != nil {
		return err
	}
	return s.writeDisable()
}

// Erase erases length bytes starting at offset. A zero length fails.
// Erasing the full device takes the bulk erase path; anything else erases
// one sector at a time, so a range that is not sector aligned still wipes
// every sector it touches. Any failure aborts the whole call.
func (s *SNOR) Erase(offset uint32, length int64) error {
	if length == 0 {
		return fmt.Errorf("erase: %w: zero length", ErrOutOfRange)
	}

	s.reporter.Start("erase", length)
	defer s.reporter.End()

	if offset == 0 && length == s.Capacity() {
		s.log("bulk erasing %s", s.chip.Name)
		return s.eraseChip()
	}

	if err := s.unprotect(); err != nil {
		return err
	}

	total := length
	for remain := length; remain > 0; remain -= int64(s.chip.SectorSize) {
		if err := s.eraseSector(offset); err != nil {
			return fmt.Errorf("erase sector at %08x: %w", offset, err)
		}

		offset += s.chip.SectorSize
		s.reporter.Update(total - max(remain-int64(s.chip.SectorSize), 0))
	}

	return nil
}
