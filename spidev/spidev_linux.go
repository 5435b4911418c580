// Package spidev drives a flash chip through the Linux spidev userspace
// interface. See Linux "include/uapi/linux/spi/spidev.h" and
// "Documentation/spi/spidev.rst".
//
// The kernel asserts chip select for the duration of one SPI_IOC_MESSAGE
// ioctl, so a Select/Deselect bracket maps onto a single message: writes
// are buffered while selected, a read flushes them as a write-then-read
// message with chip select held, and Deselect flushes a pending
// write-only command.
package spidev

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/bigbigmdm/SNANDer-VCC/snor"
)

const (
	iocWrMode       = 0x40016b01
	iocWrMaxSpeedHz = 0x40046b04
)

// iocMessage is the ioctl number for n chained transfers.
func iocMessage(n int) uintptr {
	size := uintptr(n) * unsafe.Sizeof(iocTransfer{})
	return 0x40006b00 | (size&0x3fff)<<16
}

// iocTransfer is the kernel's spi_ioc_transfer layout.
type iocTransfer struct {
	txBuf          uint64
	rxBuf          uint64
	length         uint32
	speedHz        uint32
	delayUsecs     uint16
	bitsPerWord    uint8
	csChange       uint8
	txNBits        uint8
	rxNBits        uint8
	wordDelayUsecs uint8
	pad            uint8
}

var (
	ErrNotSelected     = errors.New("spidev: transfer outside chip select bracket")
	ErrSpeedNotWired   = errors.New("spidev: multi lane transfer not wired")
	errAlreadySelected = errors.New("spidev: chip select already asserted")
)

// Device is a snor.Controller backed by /dev/spidevB.C.
type Device struct {
	f       *os.File
	speedHz uint32

	selected bool
	tx       []byte
}

// Open opens a spidev node and configures SPI mode 0 and the given maximum
// transfer speed. A zero speedHz keeps the driver default.
func Open(path string, speedHz uint32) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	d := &Device{f: f, speedHz: speedHz}

	var mode uint8
	if err := d.ioctl(iocWrMode, unsafe.Pointer(&mode)); err != nil {
		f.Close()
		return nil, fmt.Errorf("set spi mode: %w", err)
	}
	if speedHz > 0 {
		if err := d.ioctl(iocWrMaxSpeedHz, unsafe.Pointer(&d.speedHz)); err != nil {
			f.Close()
			return nil, fmt.Errorf("set spi speed: %w", err)
		}
	}

	return d, nil
}

// Close releases the device node.
func (d *Device) Close() error {
	return d.f.Close()
}

func (d *Device) ioctl(req uintptr, arg unsafe.Pointer) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, d.f.Fd(), req, uintptr(arg)); errno != 0 {
		return errno
	}
	return nil
}

// Select starts a chip select bracket.
func (d *Device) Select() error {
	if d.selected {
		return errAlreadySelected
	}
	d.selected = true
	d.tx = d.tx[:0]
	return nil
}

// Write queues p for transmission within the current bracket.
func (d *Device) Write(p []byte) (int, error) {
	if !d.selected {
		return 0, ErrNotSelected
	}
	d.tx = append(d.tx, p...)
	return len(p), nil
}

// Read flushes the queued command bytes and reads len(p) bytes while chip
// select stays asserted.
func (d *Device) Read(p []byte, speed snor.Speed) error {
	if !d.selected {
		return ErrNotSelected
	}
	if speed != snor.SpeedSingle {
		return ErrSpeedNotWired
	}

	transfers := []iocTransfer{
		{
			txBuf:   uint64(uintptr(unsafe.Pointer(&d.tx[0]))),
			length:  uint32(len(d.tx)),
			speedHz: d.speedHz,
		},
		{
			rxBuf:   uint64(uintptr(unsafe.Pointer(&p[0]))),
			length:  uint32(len(p)),
			speedHz: d.speedHz,
		},
	}
	if len(d.tx) == 0 {
		transfers = transfers[1:]
	}

	err := d.message(transfers)
	d.tx = d.tx[:0]
	return err
}

// Deselect ends the bracket, flushing a pending write-only command.
func (d *Device) Deselect() error {
	if !d.selected {
		return nil
	}
	d.selected = false

	if len(d.tx) == 0 {
		return nil
	}

	transfers := []iocTransfer{{
		txBuf:   uint64(uintptr(unsafe.Pointer(&d.tx[0]))),
		length:  uint32(len(d.tx)),
		speedHz: d.speedHz,
	}}
	err := d.message(transfers)
	d.tx = d.tx[:0]
	return err
}

func (d *Device) message(transfers []iocTransfer) error {
	return d.ioctl(iocMessage(len(transfers)), unsafe.Pointer(&transfers[0]))
}
