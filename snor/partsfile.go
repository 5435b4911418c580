package snor

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type partsFile struct {
	Parts []partEntry `yaml:"parts"`
}

type partEntry struct {
	Name           string  `yaml:"name"`
	ManufacturerID uint8   `yaml:"manufacturer_id"`
	JedecID        uint32  `yaml:"jedec_id"`
	SectorSize     uint32  `yaml:"sector_size"`
	Sectors        uint32  `yaml:"sectors"`
	Addr4B         bool    `yaml:"addr4b"`
	VccMin         float32 `yaml:"vcc_min"`
	VccMax         float32 `yaml:"vcc_max"`
}

// LoadParts reads user supplied part descriptors from a YAML document:
//
//	parts:
//	  - name: W25Q512ZZ
//	    manufacturer_id: 0xef
//	    jedec_id: 0x99200000
//	    sector_size: 65536
//	    sectors: 1024
//	    addr4b: true
//	    vcc_min: 2.7
//	    vcc_max: 3.6
//
// The result is passed to Probe via WithParts. Builtin parts keep scan
// priority over loaded ones.
func LoadParts(r io.Reader) ([]Chip, error) {
	var file partsFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("parse parts file: %w", err)
	}

	parts := make([]Chip, 0, len(file.Parts))
	for i, p := range file.Parts {
		if p.Name == "" {
			return nil, fmt.Errorf("parts file entry %d: missing name", i)
		}
		if p.SectorSize == 0 || p.Sectors == 0 {
			return nil, fmt.Errorf("parts file entry %q: sector_size and sectors must be set", p.Name)
		}

		parts = append(parts, Chip{
			Name:           p.Name,
			ManufacturerID: p.ManufacturerID,
			JedecID:        p.JedecID,
			SectorSize:     p.SectorSize,
			Sectors:        p.Sectors,
			Addr4B:         p.Addr4B,
			VccMin:         p.VccMin,
			VccMax:         p.VccMax,
		})
	}

	return parts, nil
}
