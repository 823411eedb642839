package sink

import (
	"github.com/nexar-aero/asterix/bitfield"
	"github.com/nexar-aero/asterix/item"
)

// TypedSink is the typed convenience layer described in spec.md
// §4.1: a sink that wants bool/int64/uint64/float64/string values
// instead of raw bit patterns implements this instead of Sink, and
// wraps itself with Typed to get a Sink.
type TypedSink interface {
	Begin(cat uint8)
	End()
	BeginItem(it *item.Descriptor)
	BeginRepetitive(count uint32)
	RepetitiveItem(index uint32)
	EndRepetitive()
	BeginArray(code uint16, size uint32)

	// DecodeBoolean receives a single-bit field; FX and spare bits are
	// suppressed before reaching here.
	DecodeBoolean(name string, value bool, index int32)
	// DecodeSigned receives a Signed field as a sign-extended int64.
	DecodeSigned(name string, value int64, index int32)
	// DecodeUnsigned receives an Unsigned, Octal, Hex, OctalDigits or
	// Raw field.
	DecodeUnsigned(name string, value uint64, index int32)
	// DecodeReal receives any field with a scale other than 1.0, as
	// sign_extend(raw, width) * scale.
	DecodeReal(name string, value float64, index int32)
	// DecodeString receives an Ascii or SixBitsChar field.
	DecodeString(name string, value string, index int32)
}

// Typed adapts a TypedSink into a Sink, performing the dispatch
// spec.md §4.1 describes: width 1 → boolean (unless fx/spare), scale
// != 1.0 → real, Signed → signed, Unsigned/Octal/Hex/OctalDigits/Raw
// → unsigned, Ascii/SixBitsChar → string. Multi-bit spare fields are
// suppressed as well.
func Typed(ts TypedSink) Sink {
	return &typedBridge{ts: ts}
}

type typedBridge struct{ ts TypedSink }

func (b *typedBridge) Begin(cat uint8)                     { b.ts.Begin(cat) }
func (b *typedBridge) End()                                { b.ts.End() }
func (b *typedBridge) BeginItem(it *item.Descriptor)       { b.ts.BeginItem(it) }
func (b *typedBridge) BeginRepetitive(count uint32)        { b.ts.BeginRepetitive(count) }
func (b *typedBridge) RepetitiveItem(index uint32)         { b.ts.RepetitiveItem(index) }
func (b *typedBridge) EndRepetitive()                      { b.ts.EndRepetitive() }
func (b *typedBridge) BeginArray(code uint16, size uint32) { b.ts.BeginArray(code, size) }

func (b *typedBridge) Decode(ctx Context, raw uint64, index int32) {
	f := ctx.Field
	width := f.EffectiveWidth()

	if width == 1 {
		if f.IsFX() || f.IsSpare() {
			return
		}
		b.ts.DecodeBoolean(f.Name, raw&1 != 0, index)

		return
	}

	if f.IsSpare() {
		return
	}

	if f.Scale != 0 && f.Scale != 1.0 {
		signed := signExtend(raw, width)
		b.ts.DecodeReal(f.Name, float64(signed)*f.Scale, index)

		return
	}

	switch f.Encoding {
	case bitfield.Signed:
		b.ts.DecodeSigned(f.Name, signExtend(raw, width), index)
	case bitfield.Unsigned, bitfield.Octal, bitfield.Hex, bitfield.OctalDigits, bitfield.Raw:
		b.ts.DecodeUnsigned(f.Name, raw, index)
	case bitfield.Ascii:
		b.ts.DecodeString(f.Name, decodeAscii(raw, width), index)
	case bitfield.SixBitsChar:
		b.ts.DecodeString(f.Name, decodeSixBitsChar(raw, width), index)
	default:
		b.ts.DecodeUnsigned(f.Name, raw, index)
	}
}

// signExtend sign-extends the low width bits of raw to a full int64.
func signExtend(raw uint64, width uint8) int64 {
	if width >= 64 {
		return int64(raw)
	}

	shift := 64 - width
	return int64(raw<<shift) >> shift
}

// sixBitAlphabet is the ICAO six-bit character set used by the
// SixBitsChar encoding (IA-5 subset, space-padded).
const sixBitAlphabet = "?ABCDEFGHIJKLMNOPQRSTUVWXYZ????? ???????????????0123456789??????"

// decodeAscii unpacks one 8-bit character per byte of a big-endian
// raw value spanning the given bit width.
func decodeAscii(raw uint64, width uint8) string {
	nbytes := int(width) / 8
	out := make([]byte, 0, nbytes)
	for i := nbytes - 1; i >= 0; i-- {
		out = append(out, byte(raw>>(uint(i)*8)))
	}

	return string(out)
}

// decodeSixBitsChar unpacks one six-bit ICAO character per six bits of
// a big-endian raw value spanning the given bit width, left to right.
func decodeSixBitsChar(raw uint64, width uint8) string {
	nchars := int(width) / 6
	out := make([]byte, 0, nchars)
	for i := nchars - 1; i >= 0; i-- {
		code := (raw >> (uint(i) * 6)) & 0x3F
		out = append(out, sixBitAlphabet[code])
	}

	for len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
	}

	return string(out)
}
