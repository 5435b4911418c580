// Package flasher implements the file level tasks on top of the snor
// engine: dumping device contents, programming an image with optional
// read back verification, and ranged erases.
package flasher

import (
	"errors"
	"fmt"
	"io"

	"github.com/snksoft/crc"
)

// Device is the slice of the snor engine the tasks need.
type Device interface {
	Capacity() int64
	SectorSize() uint32
	Erase(offset uint32, length int64) error
	Read(offset uint32, p []byte) (int, error)
	Write(offset uint32, p []byte) (int, error)
}

var (
	ErrShortWrite   = errors.New("device accepted fewer bytes than requested")
	ErrVerifyFailed = errors.New("read back data does not match written image")
)

// dumpChunkSize is the read granularity for Dump. One sector of the
// common 64 KiB geometry.
const dumpChunkSize = 64 * 1024

type Flasher struct {
	dev Device

	LogFunc func(format string, params ...any)
}

func New(dev Device) *Flasher {
	return &Flasher{dev: dev}
}

func (f *Flasher) log(format string, params ...any) {
	if f.LogFunc != nil {
		f.LogFunc(format, params...)
	}
}

// Dump copies length bytes starting at offset into w. A negative length
// means everything from offset to the end of the device.
func (f *Flasher) Dump(w io.Writer, offset uint32, length int64) error {
	if length < 0 {
		length = f.dev.Capacity() - int64(offset)
	}
	if int64(offset)+length > f.dev.Capacity() {
		return fmt.Errorf("dump %d bytes at %08x: past end of device", length, offset)
	}

	buf := make([]byte, dumpChunkSize)
	for length > 0 {
		chunk := int64(len(buf))
		if chunk > length {
			chunk = length
		}

		if _, err := f.dev.Read(offset, buf[:chunk]); err != nil {
			return err
		}
		if _, err := w.Write(buf[:chunk]); err != nil {
			return err
		}

		offset += uint32(chunk)
		length -= chunk
	}

	return nil
}

// Program erases the sectors covered by data, writes it at offset, and
// optionally verifies by reading back and comparing CRC32 checksums.
func (f *Flasher) Program(data []byte, offset uint32, verify bool) error {
	if len(data) == 0 {
		return nil
	}
	if int64(offset)+int64(len(data)) > f.dev.Capacity() {
		return fmt.Errorf("program %d bytes at %08x: past end of device", len(data), offset)
	}

	if err := f.dev.Erase(offset, int64(len(data))); err != nil {
		return fmt.Errorf("erase before program: %w", err)
	}

	n, err := f.dev.Write(offset, data)
	if err != nil {
		return err
	}
	if n < len(data) {
		return fmt.Errorf("%w: %d of %d", ErrShortWrite, n, len(data))
	}

	if !verify {
		return nil
	}
	return f.verify(data, offset)
}

func (f *Flasher) verify(data []byte, offset uint32) error {
	want := crc.CalculateCRC(crc.CRC32, data)

	readBack := make([]byte, len(data))
	if _, err := f.dev.Read(offset, readBack); err != nil {
		return fmt.Errorf("verify read back: %w", err)
	}

	got := crc.CalculateCRC(crc.CRC32, readBack)
	if got != want {
		return fmt.Errorf("%w: crc %08x, want %08x", ErrVerifyFailed, got, want)
	}

	f.log("verify ok, crc %08x over %d bytes", want, len(data))
	return nil
}

// Erase wipes length bytes starting at offset. The engine rounds the
// range up to whole sectors.
func (f *Flasher) Erase(offset uint32, length int64) error {
	return f.dev.Erase(offset, length)
}
