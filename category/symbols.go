package category

import (
	"fmt"
	"sort"

	"github.com/nexar-aero/asterix/internal/symtab"
	"github.com/nexar-aero/asterix/item"
)

// internUAP interns every non-spare bitfield name reachable from uap
// into reg, assigning each a dense code. It walks Fixed's one slab,
// Variable/Repetitive/Explicit's slab sequence, and Compound's
// subitems, recursively, visiting FSPEC bits in ascending order so
// the assigned codes are reproducible across runs rather than an
// artifact of Go's randomized map iteration.
func internUAP(reg *symtab.Registry, uap map[uint8]Slot) error {
	bits := make([]uint8, 0, len(uap))
	for bit := range uap {
		bits = append(bits, bit)
	}

	sort.Slice(bits, func(i, j int) bool { return bits[i] < bits[j] })

	for _, bit := range bits {
		if err := internItem(reg, uap[bit].Item); err != nil {
			return err
		}
	}

	return nil
}

func internItem(reg *symtab.Registry, it *item.Descriptor) error {
	if it == nil {
		return nil
	}

	switch it.Kind {
	case item.Fixed:
		return internSlab(reg, it.FixedSlab())
	case item.Variable, item.Repetitive, item.Explicit:
		for _, slab := range it.Slabs() {
			if err := internSlab(reg, slab); err != nil {
				return err
			}
		}

		return nil
	case item.Compound:
		for _, sub := range it.Subitems() {
			if err := internItem(reg, sub); err != nil {
				return err
			}
		}

		return nil
	default:
		return nil
	}
}

func internSlab(reg *symtab.Registry, slab item.Slab) error {
	for _, f := range slab.Fields {
		if f.IsSpare() {
			continue
		}

		if _, err := reg.Intern(f.Name); err != nil {
			return fmt.Errorf("intern field %q: %w", f.Name, err)
		}
	}

	return nil
}
