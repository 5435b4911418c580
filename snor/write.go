package snor

import "fmt"

// programPage runs one page program session for chunk at addr and returns
// how many payload bytes the transport accepted. Command phase failures
// are reported as errors; payload shortfalls show up in the count.
func (s *SNOR) programPage(addr uint32, chunk []byte) (int, error) {
	if err := s.c.Select(); err != nil {
		return 0, err
	}
	if _, err := s.c.Write(s.addrCommand(opPageProgram, addr)); err != nil {
		s.c.Deselect()
		return 0, fmt.Errorf("page program command: %w", err)
	}

	n, err := s.c.Write(chunk)
	if err != nil {
		s.log("page program payload at %08x: %v", addr, err)
	}
	if derr := s.c.Deselect(); derr != nil && n == len(chunk) {
		return n, derr
	}
	return n, nil
}

// Write programs p into the device starting at offset and returns the
// number of bytes written. The data is split at 256 byte page boundaries:
// the first chunk runs to the next boundary, later chunks are full pages
// with a shorter remainder at the end.
//
// A short payload transfer stops the call immediately; the returned count
// holds only the fully completed prior chunks and the error is nil (a
// short write contract, callers compare the count against len(p)). Every
// other failure aborts with an error and no partial count.
func (s *SNOR) Write(offset uint32, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if int64(offset)+int64(len(p)) > s.Capacity() {
		return 0, fmt.Errorf("write %d bytes at %08x: %w", len(p), offset, ErrOutOfRange)
	}

	if err := s.waitReady(2); err != nil {
		return 0, err
	}

	s.reporter.Start("write", int64(len(p)))
	defer s.reporter.End()

	// 4-byte mode brackets the whole call, not each chunk.
	if s.chip.Addr4B {
		if err := s.set4ByteMode(true); err != nil {
			return 0, err
		}
	}

	exit4B := func() {
		if !s.chip.Addr4B {
			return
		}
		if err := s.set4ByteMode(false); err != nil {
			s.log("leaving 4-byte mode: %v", err)
		}
	}

	pageOffset := int(offset % pageSize)
	written := 0

	for written < len(p) {
		chunk := pageSize - pageOffset
		pageOffset = 0
		if chunk > len(p)-written {
			chunk = len(p) - written
		}

		if err := s.waitReady(3); err != nil {
			exit4B()
			return written, err
		}
		if err := s.writeEnable(); err != nil {
			exit4B()
			return written, err
		}
		if err := s.unprotect(); err != nil {
			exit4B()
			return written, err
		}

		n, err := s.programPage(offset, p[written:written+chunk])
		if err != nil {
			exit4B()
			return written, fmt.Errorf("page program at %08x: %w", offset, err)
		}
		if n < chunk {
			s.log("short page program at %08x: %d of %d bytes", offset, n, chunk)
			exit4B()
			s.writeDisable()
			return written, nil
		}

		written += chunk
		offset += uint32(chunk)
		s.reporter.Update(int64(written))
	}

	if s.chip.Addr4B {
		if err := s.set4ByteMode(false); err != nil {
			return written, err
		}
	}

	return written, s.writeDisable()
}
