package snor

import "fmt"

// Read fills p with device contents starting at offset and returns the
// number of bytes read. The transfer is chunked at sector boundaries and
// re-issues the read command for every chunk. A transfer failure aborts
// the whole call: no partial count is reported.
func (s *SNOR) Read(offset uint32, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	// Wait until a previous write or erase is done.
	if err := s.waitReady(1); err != nil {
		return 0, err
	}

	s.reporter.Start("read", int64(len(p)))
	defer s.reporter.End()

	addr := offset
	remain := len(p)

	for remain > 0 {
		sectorOffset := addr % s.chip.SectorSize
		chunk := int(s.chip.SectorSize - sectorOffset)
		if chunk > remain {
			chunk = remain
		}

		if s.chip.Addr4B {
			if err := s.set4ByteMode(true); err != nil {
				return 0, err
			}
		}

		err := s.command(s.addrCommand(opRead, addr), p[len(p)-remain:len(p)-remain+chunk])
		if err != nil {
			if s.chip.Addr4B {
				s.set4ByteMode(false)
			}
			return 0, fmt.Errorf("read at %08x: %w", addr, err)
		}

		remain -= chunk
		addr += uint32(chunk)
		s.reporter.Update(int64(len(p) - remain))

		if s.chip.Addr4B {
			if err := s.set4ByteMode(false); err != nil {
				return 0, err
			}
		}
	}

	return len(p), nil
}
