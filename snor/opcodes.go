package snor

// Flash opcodes.
const (
	opWriteEnable   = 0x06
	opWriteDisable  = 0x04
	opReadStatus    = 0x05
	opWriteStatus   = 0x01
	opRead          = 0x03
	opPageProgram   = 0x02
	opSectorErase   = 0xD8
	opReadSignature = 0xAB
	opReadJedecID   = 0x9F

	opEnter4B = 0xB7
	opExit4B  = 0xE9

	// Spansion bank address register access.
	opBankWrite = 0x17
	opBankRead  = 0x16

	// Winbond extended address register write.
	opWriteEAR = 0xC5

	opBulkErase    = 0x60
	opBulkEraseAlt = 0xC7

	// Multi-lane opcodes, reserved for controllers that can run dual or
	// quad transfers. Never issued; see Speed.
	opFastRead        = 0x0B
	opDualOutputRead  = 0x3B
	opQuadOutputRead  = 0x6B
	opDualIORead      = 0xBB
	opQuadIORead      = 0xEB
	opQuadPageProgram = 0x32
)

// Status register bits.
const (
	srWIP  = 1 << 0 // write in progress
	srWEL  = 1 << 1 // write enable latch
	srBP0  = 1 << 2 // block protect 0
	srBP1  = 1 << 3 // block protect 1
	srBP2  = 1 << 4 // block protect 2
	srEPE  = 1 << 5 // erase/program error
	srSRWD = 1 << 7 // status register write protect
)

// Manufacturer ids with vendor specific 4-byte addressing behaviour.
const (
	vendorSpansion = 0x01
	vendorWinbond  = 0xEF
)

// pageSize is the page program granularity.
const pageSize = 256
