package flasher

import (
	"bytes"
	"errors"
	"testing"
)

// fakeDevice is an in-memory flash with injectable faults.
type fakeDevice struct {
	memory     []byte
	sectorSize uint32

	erases   []eraseCall
	readErr  error
	shortAt  int // cap on total bytes a Write accepts, 0 disables
	corrupt  bool
	eraseErr error
}

type eraseCall struct {
	offset uint32
	length int64
}

func newFakeDevice(size int) *fakeDevice {
	return &fakeDevice{
		memory:     bytes.Repeat([]byte{0xFF}, size),
		sectorSize: 4096,
	}
}

func (d *fakeDevice) Capacity() int64    { return int64(len(d.memory)) }
func (d *fakeDevice) SectorSize() uint32 { return d.sectorSize }

func (d *fakeDevice) Erase(offset uint32, length int64) error {
	if d.eraseErr != nil {
		return d.eraseErr
	}
	d.erases = append(d.erases, eraseCall{offset, length})
	for i := int64(offset); i < int64(offset)+length; i++ {
		d.memory[i] = 0xFF
	}
	return nil
}

func (d *fakeDevice) Read(offset uint32, p []byte) (int, error) {
	if d.readErr != nil {
		return 0, d.readErr
	}
	copy(p, d.memory[offset:])
	if d.corrupt && len(p) > 0 {
		p[0] ^= 0xFF
	}
	return len(p), nil
}

func (d *fakeDevice) Write(offset uint32, p []byte) (int, error) {
	if d.shortAt > 0 && len(p) > d.shortAt {
		p = p[:d.shortAt]
	}
	copy(d.memory[offset:], p)
	return len(p), nil
}

func TestProgramAndVerify(t *testing.T) {
	dev := newFakeDevice(64 * 1024)
	data := make([]byte, 5000)
	for i := range data {
		data[i] = byte(i)
	}

	if err := New(dev).Program(data, 0x1000, true); err != nil {
		t.Fatalf("program failed: %v", err)
	}

	if !bytes.Equal(dev.memory[0x1000:0x1000+5000], data) {
		t.Error("device contents do not match image")
	}
	if len(dev.erases) != 1 || dev.erases[0] != (eraseCall{0x1000, 5000}) {
		t.Errorf("erase calls: %+v", dev.erases)
	}
}

func TestProgramDetectsCorruption(t *testing.T) {
	dev := newFakeDevice(64 * 1024)
	dev.corrupt = true

	err := New(dev).Program(make([]byte, 100), 0, true)
	if !errors.Is(err, ErrVerifyFailed) {
		t.Errorf("program returned %v, want ErrVerifyFailed", err)
	}
}

func TestProgramSkipsVerifyWhenDisabled(t *testing.T) {
	dev := newFakeDevice(64 * 1024)
	dev.corrupt = true

	if err := New(dev).Program(make([]byte, 100), 0, false); err != nil {
		t.Errorf("unverified program failed: %v", err)
	}
}

func TestProgramReportsShortWrite(t *testing.T) {
	dev := newFakeDevice(64 * 1024)
	dev.shortAt = 100

	err := New(dev).Program(make([]byte, 500), 0, false)
	if !errors.Is(err, ErrShortWrite) {
		t.Errorf("program returned %v, want ErrShortWrite", err)
	}
}

func TestProgramOutOfRange(t *testing.T) {
	dev := newFakeDevice(4096)

	if err := New(dev).Program(make([]byte, 100), 4000, false); err == nil {
		t.Error("out of range program did not fail")
	}
}

func TestDump(t *testing.T) {
	dev := newFakeDevice(256 * 1024)
	for i := range dev.memory {
		dev.memory[i] = byte(i * 3)
	}

	var out bytes.Buffer
	if err := New(dev).Dump(&out, 100, 200000); err != nil {
		t.Fatalf("dump failed: %v", err)
	}

	if !bytes.Equal(out.Bytes(), dev.memory[100:100+200000]) {
		t.Error("dumped data does not match device contents")
	}
}

func TestDumpToEndOfDevice(t *testing.T) {
	dev := newFakeDevice(8192)

	var out bytes.Buffer
	if err := New(dev).Dump(&out, 4096, -1); err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	if out.Len() != 4096 {
		t.Errorf("dumped %d bytes, want 4096", out.Len())
	}
}

func TestDumpOutOfRange(t *testing.T) {
	dev := newFakeDevice(4096)

	var out bytes.Buffer
	if err := New(dev).Dump(&out, 0, 5000); err == nil {
		t.Error("out of range dump did not fail")
	}
}
