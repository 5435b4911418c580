package snor

// Registry is a read-only catalog of known parts. It is populated once when
// constructed and never mutated afterwards.
type Registry struct {
	chips []Chip
}

// DefaultRegistry returns a registry holding only the builtin part table.
func DefaultRegistry() *Registry {
	return &Registry{chips: chips}
}

// NewRegistry returns a registry holding the builtin table followed by the
// given extra parts. Builtins come first so the identification scan order
// is stable regardless of user additions.
func NewRegistry(extra []Chip) *Registry {
	if len(extra) == 0 {
		return DefaultRegistry()
	}
	all := make([]Chip, 0, len(chips)+len(extra))
	all = append(all, chips...)
	all = append(all, extra...)
	return &Registry{chips: all}
}

// Names lists the names of all parts in the registry, in table order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.chips))
	for i, c := range r.chips {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of parts in the registry.
func (r *Registry) Len() int {
	return len(r.chips)
}

// identify selects the best registry entry for a probed manufacturer byte
// and 32-bit JEDEC id. An entry matching the id exactly, or in its high 16
// bits, wins immediately. Failing that, the manufacturer-matching entry with
// the smallest XOR distance to the probed id is returned as a fuzzy
// fallback. If no entry shares the manufacturer id at all the result is
// "not detected": there is no default entry.
func (r *Registry) identify(manufacturer uint8, jedec uint32) (Chip, bool) {
	var (
		best      Chip
		bestFound bool
		weight    = uint32(0xffffffff)
	)

	strip := jedec & 0xffff0000

	for _, c := range r.chips {
		if c.ManufacturerID != manufacturer {
			continue
		}

		if c.JedecID == jedec || c.JedecID&0xffff0000 == strip {
			return c, true
		}

		if d := c.JedecID ^ jedec; d < weight {
			weight = d
			best = c
			bestFound = true
		}
	}

	return best, bestFound
}
