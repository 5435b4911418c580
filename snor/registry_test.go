package snor

import "testing"

func TestIdentifyExactMatch(t *testing.T) {
	c, ok := DefaultRegistry().identify(0xc8, 0x4018c840)
	if !ok {
		t.Fatal("known part not identified")
	}
	if c.Name != "GD25Q128CSIG" {
		t.Errorf("identified %s, want GD25Q128CSIG", c.Name)
	}
}

func TestIdentifyFamilyMatchOnHigh16(t *testing.T) {
	// Low 16 bits differ from the table entry, high 16 match.
	c, ok := DefaultRegistry().identify(0xc8, 0x4018beef)
	if !ok {
		t.Fatal("family variant not identified")
	}
	if c.JedecID&0xffff0000 != 0x40180000 {
		t.Errorf("identified %s (%08x), want a 0x4018xxxx part", c.Name, c.JedecID)
	}
}

func TestIdentifyExactBeatsFuzzy(t *testing.T) {
	r := &Registry{chips: []Chip{
		// XOR distance 1 to the probed id, but no exact or family match.
		{Name: "near", ManufacturerID: 0xAA, JedecID: 0x12345679, SectorSize: 64 * 1024, Sectors: 1},
		// Exact match, much later in XOR terms irrelevant.
		{Name: "exact", ManufacturerID: 0xAA, JedecID: 0x12345678, SectorSize: 64 * 1024, Sectors: 1},
	}}

	// "near" shares the high 16 bits with the probed id, so it wins by the
	// family rule before "exact" is ever reached: first match in table
	// order. Use ids in distinct families to test exact-beats-fuzzy.
	r2 := &Registry{chips: []Chip{
		{Name: "near", ManufacturerID: 0xAA, JedecID: 0x55345678, SectorSize: 64 * 1024, Sectors: 1},
		{Name: "exact", ManufacturerID: 0xAA, JedecID: 0x12345678, SectorSize: 64 * 1024, Sectors: 1},
	}}

	c, ok := r.identify(0xAA, 0x12345678)
	if !ok || c.Name != "near" {
		t.Errorf("family rule: identified %v, want near", c.Name)
	}

	c, ok = r2.identify(0xAA, 0x12345678)
	if !ok || c.Name != "exact" {
		t.Errorf("identified %v, want exact", c.Name)
	}
}

func TestIdentifyFuzzyFallback(t *testing.T) {
	r := &Registry{chips: []Chip{
		{Name: "far", ManufacturerID: 0xAA, JedecID: 0xF0000000, SectorSize: 64 * 1024, Sectors: 1},
		{Name: "close", ManufacturerID: 0xAA, JedecID: 0x13000000, SectorSize: 64 * 1024, Sectors: 1},
		{Name: "close-too", ManufacturerID: 0xAA, JedecID: 0x13000000, SectorSize: 64 * 1024, Sectors: 2},
	}}

	c, ok := r.identify(0xAA, 0x12000000)
	if !ok {
		t.Fatal("fuzzy fallback returned not detected")
	}
	// First entry with the smallest XOR distance wins ties.
	if c.Name != "close" {
		t.Errorf("identified %s, want close", c.Name)
	}
}

func TestIdentifyUnknownManufacturerFailsClosed(t *testing.T) {
	if c, ok := DefaultRegistry().identify(0x77, 0x40180000); ok {
		t.Errorf("unknown manufacturer identified as %s, want not detected", c.Name)
	}
}

func TestRegistryTableSane(t *testing.T) {
	r := DefaultRegistry()
	if r.Len() < 300 {
		t.Fatalf("builtin table has %d parts, expected the full catalog", r.Len())
	}

	for _, c := range chips {
		if c.Name == "" {
			t.Fatal("part with empty name")
		}
		if c.SectorSize == 0 || c.Sectors == 0 {
			t.Errorf("%s: zero geometry", c.Name)
		}
		if c.Capacity() != int64(c.SectorSize)*int64(c.Sectors) {
			t.Errorf("%s: capacity mismatch", c.Name)
		}
		if c.VccMin <= 0 || c.VccMax < c.VccMin {
			t.Errorf("%s: bad voltage range %.2f..%.2f", c.Name, c.VccMin, c.VccMax)
		}
	}
}

func TestRegistryExtrasKeepBuiltinPriority(t *testing.T) {
	extra := Chip{Name: "CUSTOM1", ManufacturerID: 0xAA, JedecID: 0x01020304, SectorSize: 4096, Sectors: 16}
	r := NewRegistry([]Chip{extra})

	if r.Len() != DefaultRegistry().Len()+1 {
		t.Fatalf("registry length %d", r.Len())
	}

	names := r.Names()
	if names[len(names)-1] != "CUSTOM1" {
		t.Error("extra part not appended after builtins")
	}

	c, ok := r.identify(0xAA, 0x01020304)
	if !ok || c.Name != "CUSTOM1" {
		t.Errorf("extra part not identified: %v %v", c.Name, ok)
	}
}
