package snor

import "errors"

var (
	// ErrNoDevice means no registry entry shares the probed manufacturer id.
	ErrNoDevice = errors.New("no supported flash device detected")

	// ErrTimeout means the device stayed busy for the whole polling budget,
	// or reported an erase/program error that never cleared.
	ErrTimeout = errors.New("device not ready within polling budget")

	// ErrAddressMode means a bank register readback did not confirm the
	// requested 4-byte addressing mode.
	ErrAddressMode = errors.New("4-byte address mode switch not confirmed")

	// ErrOutOfRange means the requested range does not fit the device.
	ErrOutOfRange = errors.New("range outside device capacity")
)
