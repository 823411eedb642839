package decoder

import (
	"github.com/nexar-aero/asterix/category"
	"github.com/nexar-aero/asterix/item"
	"github.com/nexar-aero/asterix/sink"
)

// extractSlab composes a slab's bytes into up to three 64-bit words
// and extracts each declared bitfield, dispatching it to the sink.
// index is -1 for a scalar (Fixed/Variable) context, else the
// 0-based element index of a Repetitive/Explicit expansion;
// arraySize is only meaningful in the latter case.
func extractSlab(it *item.Descriptor, slab item.Slab, data []byte, s sink.Sink, depth, index, arraySize int, policy category.Policy) {
	var d0, d1, d2 uint64

	for i := 0; i < int(slab.Length); i++ {
		d2 = (d2 << 8) | ((d1 >> 56) & 0xFF)
		d1 = (d1 << 8) | ((d0 >> 56) & 0xFF)
		d0 = (d0 << 8) | uint64(data[i])
	}

	for _, f := range slab.Fields {
		width := int(f.EffectiveWidth())

		if width == 1 && f.IsFX() {
			continue
		}

		lowBit := int(f.LowBit())
		mask := f.BitMask()

		var value uint64

		switch {
		case lowBit+width <= 64:
			value = (d0 >> uint(lowBit)) & mask
		case lowBit >= 128:
			value = (d2 >> uint(lowBit-128)) & mask
		case lowBit >= 64 && lowBit+width <= 128:
			value = (d1 >> uint(lowBit-64)) & mask
		case lowBit < 64:
			// straddles the d0/d1 boundary
			shift1 := lowBit
			shift2 := 64 - lowBit
			aux1 := (d0 & (mask << uint(shift1))) >> uint(shift1)
			aux2 := (d1 << uint(shift2)) & mask
			value = (aux1 | aux2) & mask
		default:
			// straddles the d1/d2 boundary
			shift1 := lowBit - 64
			shift2 := 128 - lowBit
			aux1 := (d1 & (mask << uint(shift1))) >> uint(shift1)
			aux2 := (d2 << uint(shift2)) & mask
			value = (aux1 | aux2) & mask
		}

		if index == 0 && f.Repeat {
			s.BeginArray(f.Code, uint32(arraySize))
		}

		s.Decode(sink.Context{Item: it, Field: f, Depth: depth, Policy: policy}, value, int32(index))
	}
}
