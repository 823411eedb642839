// Package bitfield describes a single named, bit-packed field within an
// ASTERIX slab.
//
// A BitField never appears on its own on the wire: it is always one
// member of an item.Slab, which in turn belongs to one of the five
// item.Descriptor formats. This package only models the immutable
// shape of a field (its position, encoding, scaling, and enumeration);
// extracting one from a live buffer is the decoder package's job.
package bitfield

import (
	"fmt"
	"math"

	"github.com/nexar-aero/asterix/errs"
)

// Encoding identifies how the raw bits of a BitField are interpreted.
type Encoding uint8

const (
	// Unsigned interprets the raw bits as an unsigned integer.
	Unsigned Encoding = iota + 1
	// Signed interprets the raw bits as a two's-complement integer,
	// sign-extended on the field's effective width.
	Signed
	// Octal interprets the raw bits as an unsigned integer conventionally
	// rendered in octal (e.g. Mode-3/A codes).
	Octal
	// Ascii packs one 8-bit character per byte of the slab.
	Ascii
	// SixBitsChar packs one ICAO six-bit character per six bits of the
	// slab, left to right.
	SixBitsChar
	// Hex interprets the raw bits as an unsigned integer conventionally
	// rendered in hexadecimal (e.g. 24-bit aircraft addresses).
	Hex
	// OctalDigits interprets the raw bits as a sequence of packed octal
	// digits rather than a single octal-rendered integer.
	OctalDigits
	// Raw passes the extracted bits through with no further
	// interpretation.
	Raw
)

func (e Encoding) String() string {
	switch e {
	case Unsigned:
		return "Unsigned"
	case Signed:
		return "Signed"
	case Octal:
		return "Octal"
	case Ascii:
		return "Ascii"
	case SixBitsChar:
		return "SixBitsChar"
	case Hex:
		return "Hex"
	case OctalDigits:
		return "OctalDigits"
	case Raw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Unit identifies the physical unit a scaled numeric field is
// expressed in.
type Unit uint8

const (
	// UnitNone marks a field with no physical unit.
	UnitNone Unit = iota
	UnitM          // meters
	UnitNM         // nautical miles
	UnitFL         // flight level
	UnitFT         // feet
	UnitKT         // knots
	UnitDeg        // degrees
	UnitMS         // meters per second
	UnitSec        // seconds
	UnitKG         // kilograms
)

func (u Unit) String() string {
	switch u {
	case UnitNone:
		return "None"
	case UnitM:
		return "M"
	case UnitNM:
		return "NM"
	case UnitFL:
		return "FL"
	case UnitFT:
		return "FT"
	case UnitKT:
		return "KT"
	case UnitDeg:
		return "DEG"
	case UnitMS:
		return "MS"
	case UnitSec:
		return "S"
	case UnitKG:
		return "KG"
	default:
		return "Unknown"
	}
}

// ParseUnit maps a unit token from a descriptor source (e.g. the XML
// pipeline) onto a Unit. The caller decides, via
// category.Policy.FailOnUnknownUnit, whether an unrecognised token is
// fatal or silently folds to UnitNone.
func ParseUnit(token string) (Unit, bool) {
	switch token {
	case "M":
		return UnitM, true
	case "NM":
		return UnitNM, true
	case "FL":
		return UnitFL, true
	case "FT":
		return UnitFT, true
	case "KT":
		return UnitKT, true
	case "DEG":
		return UnitDeg, true
	case "MS":
		return UnitMS, true
	case "S":
		return UnitSec, true
	case "KG":
		return UnitKG, true
	case "", "None":
		return UnitNone, true
	default:
		return UnitNone, false
	}
}

// EnumEntry is one code/label pair of a BitField's enumeration table.
// A slice, not a map, preserves the document order the XML pipeline
// declares the codes in.
type EnumEntry struct {
	Code  int64
	Label string
}

// BitField is the immutable descriptor of one named run of bits inside
// a slab.
//
// Zero value is not meaningful; construct with NewSingleBit or
// NewRange.
type BitField struct {
	Name string

	// Position, single-bit case (used when rangeMode is false).
	bit uint8
	fx  bool

	// Position, range case. Invariant: from >= to when rangeMode.
	from, to  uint8
	rangeMode bool

	Encoding Encoding
	Scale    float64
	Min, Max *float64
	Units    Unit
	Enum     []EnumEntry

	Repeat bool
	Code   uint16
}

// Option configures an optional attribute of a BitField at construction
// time.
type Option func(*BitField)

// WithScale sets a non-default scale factor. A scale other than 1.0
// routes the field to the sink's decode_real convenience callback.
func WithScale(scale float64) Option {
	return func(b *BitField) { b.Scale = scale }
}

// WithRange sets the field's declared valid range, used by callers
// that validate decoded values; the decoder itself does not enforce
// it.
func WithRange(min, max float64) Option {
	return func(b *BitField) {
		b.Min = &min
		b.Max = &max
	}
}

// WithUnits sets the field's physical unit.
func WithUnits(u Unit) Option {
	return func(b *BitField) { b.Units = u }
}

// WithEnum attaches an ordered code→label enumeration table.
func WithEnum(entries ...EnumEntry) Option {
	return func(b *BitField) { b.Enum = entries }
}

// WithRepeat marks the field as appearing inside a Repetitive or
// Explicit item, so the sink should expect an array.
func WithRepeat() Option {
	return func(b *BitField) { b.Repeat = true }
}

// WithCode assigns the field's dense small-integer identifier. Callers
// that do not pre-assign one can use internal/symtab to intern the
// field's Name into a Code instead.
func WithCode(code uint16) Option {
	return func(b *BitField) { b.Code = code }
}

// NewSingleBit constructs a one-bit BitField at 1-based position bit
// within its slab. fx marks the bit as a structural FX continuation
// marker rather than data; FX bits are suppressed by the sink's typed
// convenience layer.
func NewSingleBit(name string, bit uint8, fx bool, encoding Encoding, opts ...Option) (BitField, error) {
	if bit == 0 {
		return BitField{}, fmt.Errorf("bitfield %q: bit position must be >= 1: %w", name, errs.ErrInvalidPosition)
	}

	b := BitField{
		Name:     name,
		bit:      bit,
		fx:       fx,
		Encoding: encoding,
		Scale:    1.0,
	}
	for _, opt := range opts {
		opt(&b)
	}

	return b, nil
}

// NewRange constructs a multi-bit BitField spanning [to, from] within
// its slab, both 1-based and inclusive, with from >= to (high bit
// first, low bit last) per the wire convention in spec §3.
func NewRange(name string, from, to uint8, encoding Encoding, opts ...Option) (BitField, error) {
	if from == 0 || to == 0 || from < to {
		return BitField{}, fmt.Errorf("bitfield %q: from=%d to=%d: %w", name, from, to, errs.ErrInvalidPosition)
	}

	b := BitField{
		Name:      name,
		from:      from,
		to:        to,
		rangeMode: true,
		Encoding:  encoding,
		Scale:     1.0,
	}
	for _, opt := range opts {
		opt(&b)
	}

	width := b.EffectiveWidth()
	if width < 1 || width > 64 {
		return BitField{}, fmt.Errorf("bitfield %q: width=%d: %w", name, width, errs.ErrInvalidWidth)
	}

	return b, nil
}

// IsRange reports whether the field was constructed with NewRange
// (true) rather than NewSingleBit (false).
func (b BitField) IsRange() bool { return b.rangeMode }

// IsFX reports whether this single-bit field is a structural FX
// continuation marker.
func (b BitField) IsFX() bool { return !b.rangeMode && b.fx }

// IsSpare reports whether the field carries one of the two reserved
// names that mark discarded padding bits.
func (b BitField) IsSpare() bool { return b.Name == "spare" || b.Name == "FX" }

// EffectiveWidth returns the number of bits the field occupies: 1 for
// the single-bit case, (from - to + 1) for the range case.
func (b BitField) EffectiveWidth() uint8 {
	if !b.rangeMode {
		return 1
	}

	return b.from - b.to + 1
}

// BitMask returns (1 << EffectiveWidth) - 1, the mask that isolates
// exactly the field's bits once right-aligned.
func (b BitField) BitMask() uint64 {
	width := b.EffectiveWidth()
	if width >= 64 {
		return math.MaxUint64
	}

	return (uint64(1) << width) - 1
}

// LowBit returns the 0-based bit offset, counted from the low-order
// bit of the slab's composed words, of the field's least-significant
// bit. This is the value extract.go shifts by.
func (b BitField) LowBit() uint8 {
	if !b.rangeMode {
		return b.bit - 1
	}

	return b.to - 1
}

// EnumLabel looks up the label for a decoded value, if the field
// declares an enumeration and the value matches one of its codes.
func (b BitField) EnumLabel(value int64) (string, bool) {
	for _, e := range b.Enum {
		if e.Code == value {
			return e.Label, true
		}
	}

	return "", false
}
