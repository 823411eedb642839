// Package category describes one ASTERIX category-and-version: its
// FSPEC-bit to item mapping (the UAP), and the runtime policy a
// decoder call applies while walking it.
package category

import (
	"fmt"

	"github.com/nexar-aero/asterix/errs"
	"github.com/nexar-aero/asterix/internal/symtab"
	"github.com/nexar-aero/asterix/item"
)

// Slot pairs a UAP item with whether its presence is mandatory.
type Slot struct {
	Item      *item.Descriptor
	Mandatory bool
}

// Codec is the immutable, ordered FSPEC-bit→Slot mapping for one
// category-and-version. Constructed once at startup by the (out of
// scope) XML pipeline, or by hand via New for tests; read-only
// thereafter.
type Codec struct {
	cat     uint8
	uap     map[uint8]Slot
	symbols *symtab.Registry
}

// New validates and constructs a Codec. uap keys are 0-based FSPEC bit
// indices; FX positions (7, 15, 23, ...) must not appear as keys.
//
// New also interns every non-spare bitfield name reachable from uap
// into a dense name→code registry, available via Symbols. The
// registry assigns its own codes and does not set or read
// bitfield.BitField.Code, so a field's Code and its registry code
// match only when the caller assigned them to.
func New(cat uint8, uap map[uint8]Slot) (*Codec, error) {
	for bit := range uap {
		if bit%8 == 7 {
			return nil, fmt.Errorf("category %d bit %d: %w", cat, bit, errs.ErrReservedUapBit)
		}
	}

	cp := make(map[uint8]Slot, len(uap))
	for k, v := range uap {
		cp[k] = v
	}

	symbols := symtab.New()
	if err := internUAP(symbols, cp); err != nil {
		return nil, fmt.Errorf("category %d: %w", cat, err)
	}

	return &Codec{cat: cat, uap: cp, symbols: symbols}, nil
}

// Category returns the ASTERIX category number this codec describes.
func (c *Codec) Category() uint8 { return c.cat }

// Symbols returns the dense name→code registry built by interning
// every bitfield name reachable from this codec's UAP at construction
// time.
func (c *Codec) Symbols() *symtab.Registry { return c.symbols }

// Slot looks up the UAP entry for a 0-based FSPEC bit index.
func (c *Codec) Slot(bit uint8) (Slot, bool) {
	s, ok := c.uap[bit]
	return s, ok
}

// UAPItems returns the full FSPEC-bit→Slot mapping. The returned map
// is a defensive copy; mutating it has no effect on the Codec.
func (c *Codec) UAPItems() map[uint8]Slot {
	cp := make(map[uint8]Slot, len(c.uap))
	for k, v := range c.uap {
		cp[k] = v
	}

	return cp
}
