// Package item describes the five ASTERIX item formats: Fixed,
// Variable, Repetitive, Compound, and Explicit.
//
// A Descriptor is a tagged variant dispatched on Kind rather than on
// interface method calls, so the decoder's format handlers can switch
// on it directly instead of paying for a virtual call per recursion
// level.
package item

import (
	"fmt"

	"github.com/nexar-aero/asterix/bitfield"
	"github.com/nexar-aero/asterix/errs"
)

// Kind tags which of the five ASTERIX item formats a Descriptor holds.
type Kind uint8

const (
	Fixed Kind = iota + 1
	Variable
	Repetitive
	Compound
	Explicit
)

func (k Kind) String() string {
	switch k {
	case Fixed:
		return "Fixed"
	case Variable:
		return "Variable"
	case Repetitive:
		return "Repetitive"
	case Compound:
		return "Compound"
	case Explicit:
		return "Explicit"
	default:
		return "Unknown"
	}
}

// Slab is a byte-aligned, fixed-length tile of bitfields. Its
// bitfields must exactly cover Length*8 bits with no overlap; spare
// bits carry the reserved name "spare" or "FX" and are discarded by
// the sink.
type Slab struct {
	Fields []bitfield.BitField
	Length uint8
}

// NewSlab validates and constructs a Slab. Length must be in [1, 24]
// and the union of field positions must exactly tile Length*8 bits
// without overlap.
func NewSlab(length uint8, fields []bitfield.BitField) (Slab, error) {
	if length < 1 || length > 24 {
		return Slab{}, fmt.Errorf("slab length %d: %w", length, errs.ErrInvalidSlabLength)
	}

	totalBits := int(length) * 8
	covered := make([]bool, totalBits)
	for _, f := range fields {
		width := int(f.EffectiveWidth())
		low := int(f.LowBit())
		high := low + width - 1
		if low < 0 || high >= totalBits {
			return Slab{}, fmt.Errorf("field %q spans bits [%d,%d], slab has %d bits: %w", f.Name, low, high, totalBits, errs.ErrSlabCoverage)
		}
		for bit := low; bit <= high; bit++ {
			if covered[bit] {
				return Slab{}, fmt.Errorf("field %q overlaps another field at bit %d: %w", f.Name, bit, errs.ErrSlabCoverage)
			}
			covered[bit] = true
		}
	}

	for bit, ok := range covered {
		if !ok {
			return Slab{}, fmt.Errorf("slab bit %d uncovered (declare it as spare): %w", bit, errs.ErrSlabCoverage)
		}
	}

	return Slab{Fields: fields, Length: length}, nil
}

// Descriptor is one UAP item, in one of the five ASTERIX formats.
//
// Zero value is not meaningful; construct with NewFixed, NewVariable,
// NewRepetitive, NewExplicit, or NewCompound.
type Descriptor struct {
	Kind Kind

	// Id is the dotted item identifier (e.g. "I048/010"), used only
	// for logging and error messages.
	Id string

	fixedSlab Slab   // Fixed
	slabs     []Slab // Variable, Repetitive, Explicit

	subitems []*Descriptor // Compound, selected in FSPEC-bit order
}

// WithId attaches the dotted identifier used in trace logging and
// error messages. It does not affect decoding.
func WithId(id string) func(*Descriptor) {
	return func(d *Descriptor) { d.Id = id }
}

// NewFixed constructs a Fixed item of exactly slab.Length bytes.
func NewFixed(slab Slab, opts ...func(*Descriptor)) *Descriptor {
	d := &Descriptor{Kind: Fixed, fixedSlab: slab}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// NewVariable constructs an FX-chained Variable item. slabs is drawn
// from cyclically as long as each emitted slab's FX bit is set;
// typical cardinality is one.
func NewVariable(slabs []Slab, opts ...func(*Descriptor)) (*Descriptor, error) {
	if len(slabs) == 0 {
		return nil, fmt.Errorf("variable item: %w", errs.ErrEmptySlabSequence)
	}

	d := &Descriptor{Kind: Variable, slabs: slabs}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// NewRepetitive constructs a Repetitive item: one leading count byte,
// then that many concatenated copies of slabs.
func NewRepetitive(slabs []Slab, opts ...func(*Descriptor)) (*Descriptor, error) {
	if len(slabs) == 0 {
		return nil, fmt.Errorf("repetitive item: %w", errs.ErrEmptySlabSequence)
	}

	d := &Descriptor{Kind: Repetitive, slabs: slabs}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// NewExplicit constructs an Explicit item: one leading length byte M
// giving the item's total size including that byte; the (M-1)-byte
// payload is interpreted as repeated copies of slabs.
func NewExplicit(slabs []Slab, opts ...func(*Descriptor)) (*Descriptor, error) {
	if len(slabs) == 0 {
		return nil, fmt.Errorf("explicit item: %w", errs.ErrEmptySlabSequence)
	}

	d := &Descriptor{Kind: Explicit, slabs: slabs}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// NewCompound constructs a Compound item: an FX-chained presence
// bitmap followed by the subitems it selects, in document order.
// subitems follows the wire's 1-based field-reference numbering:
// subitems[0] is an unused placeholder (conventionally nil) and
// subitems[1] corresponds to the first selectable presence bit (the
// high bit of the first presence byte). Every non-nil subitem must be
// Fixed, Variable, or Repetitive, since the wire format disallows
// nesting a Compound inside a Compound.
func NewCompound(subitems []*Descriptor, opts ...func(*Descriptor)) (*Descriptor, error) {
	for i, sub := range subitems {
		if sub == nil {
			continue
		}
		switch sub.Kind {
		case Fixed, Variable, Repetitive:
			// allowed
		case Compound:
			return nil, fmt.Errorf("compound subitem %d: %w", i, errs.ErrNestedCompound)
		default:
			return nil, fmt.Errorf("compound subitem %d: %w", i, errs.ErrBadCompoundChild)
		}
	}

	d := &Descriptor{Kind: Compound, subitems: subitems}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// FixedSlab returns the slab of a Fixed item. Only meaningful when
// Kind == Fixed.
func (d *Descriptor) FixedSlab() Slab { return d.fixedSlab }

// Slabs returns the slab sequence of a Variable, Repetitive, or
// Explicit item. Only meaningful for those kinds.
func (d *Descriptor) Slabs() []Slab { return d.slabs }

// Subitems returns the ordered subitem list of a Compound item, index
// 1 corresponding to the first selectable presence bit and index 0
// being the unused placeholder described on NewCompound. Only
// meaningful when Kind == Compound. A nil entry marks a presence bit
// reserved for future extension with no assigned subitem yet.
func (d *Descriptor) Subitems() []*Descriptor { return d.subitems }
