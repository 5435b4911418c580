package snor

import (
	"strings"
	"testing"
)

func TestLoadParts(t *testing.T) {
	doc := `
parts:
  - name: W25Q512ZZ
    manufacturer_id: 0xef
    jedec_id: 0x99200000
    sector_size: 65536
    sectors: 1024
    addr4b: true
    vcc_min: 2.7
    vcc_max: 3.6
  - name: TINY25
    manufacturer_id: 0x5e
    jedec_id: 0x10110000
    sector_size: 4096
    sectors: 32
`

	parts, err := LoadParts(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("loaded %d parts, want 2", len(parts))
	}

	p := parts[0]
	if p.Name != "W25Q512ZZ" || p.ManufacturerID != 0xef || p.JedecID != 0x99200000 {
		t.Errorf("first part parsed wrong: %+v", p)
	}
	if !p.Addr4B {
		t.Error("addr4b flag lost")
	}
	if p.Capacity() != 64*1024*1024 {
		t.Errorf("capacity %d, want 64 MiB", p.Capacity())
	}

	if parts[1].Addr4B {
		t.Error("addr4b defaulted to true")
	}
}

func TestLoadPartsRejectsBadEntries(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing name", "parts:\n  - manufacturer_id: 0xef\n    sector_size: 4096\n    sectors: 16\n"},
		{"zero geometry", "parts:\n  - name: X\n    manufacturer_id: 0xef\n    sector_size: 0\n    sectors: 16\n"},
		{"not yaml", "{{{"},
	}

	for _, tc := range cases {
		if _, err := LoadParts(strings.NewReader(tc.doc)); err == nil {
			t.Errorf("%s: load did not fail", tc.name)
		}
	}
}
