package decoder

import (
	"fmt"

	"github.com/nexar-aero/asterix/category"
	"github.com/nexar-aero/asterix/errs"
	"github.com/nexar-aero/asterix/item"
	"github.com/nexar-aero/asterix/sink"
)

// decodeFixed extracts a single fixed-length slab and returns its
// length.
func decodeFixed(it *item.Descriptor, policy category.Policy, s sink.Sink, data []byte, depth int) (int, error) {
	slab := it.FixedSlab()
	if len(data) < int(slab.Length) {
		return 0, fmt.Errorf("decoder: fixed item %s needs %d bytes, have %d: %w", it.Id, slab.Length, len(data), errs.ErrTooShort)
	}

	extractSlab(it, slab, data, s, depth, -1, 0, policy)

	return int(slab.Length), nil
}

// decodeVariable walks the FX chain of a Variable item: slabs are
// drawn cyclically until a slab's last byte has its FX bit clear.
func decodeVariable(it *item.Descriptor, policy category.Policy, s sink.Sink, data []byte, depth int) (int, error) {
	slabs := it.Slabs()

	cursor := 0
	fx := byte(1)

	for i := 0; fx != 0; i++ {
		slab := slabs[i%len(slabs)]
		length := int(slab.Length)

		if len(data[cursor:]) < length {
			return 0, fmt.Errorf("decoder: variable item %s needs %d bytes, have %d: %w", it.Id, length, len(data[cursor:]), errs.ErrTooShort)
		}

		chunk := data[cursor : cursor+length]
		fx = chunk[length-1] & 0x01

		extractSlab(it, slab, chunk, s, depth, -1, 0, policy)

		cursor += length
	}

	return cursor, nil
}

// decodeRepetitive reads a leading count byte and extracts that many
// copies of the item's slab sequence.
func decodeRepetitive(it *item.Descriptor, policy category.Policy, s sink.Sink, data []byte, depth int) (int, error) {
	if len(data) < 1 {
		return 0, fmt.Errorf("decoder: repetitive item %s missing count byte: %w", it.Id, errs.ErrTooShort)
	}

	n := int(data[0])
	slabs := it.Slabs()

	cursor := 1

	s.BeginRepetitive(uint32(n))

	for j := 0; j < n; j++ {
		s.RepetitiveItem(uint32(j))

		for _, slab := range slabs {
			length := int(slab.Length)
			if len(data[cursor:]) < length {
				return 0, fmt.Errorf("decoder: repetitive item %s element %d needs %d bytes: %w", it.Id, j, length, errs.ErrTooShort)
			}

			extractSlab(it, slab, data[cursor:cursor+length], s, depth, j, n, policy)
			cursor += length
		}
	}

	s.EndRepetitive()

	return cursor, nil
}

// decodeExplicit reads a leading total-length byte M and interprets
// the (M-1)-byte payload as repeated copies of the item's slab
// sequence, inheriting the source decoder's count = *data - 1
// convention.
func decodeExplicit(it *item.Descriptor, policy category.Policy, s sink.Sink, data []byte, depth int) (int, error) {
	if len(data) < 1 {
		return 0, fmt.Errorf("decoder: explicit item %s missing length byte: %w", it.Id, errs.ErrTooShort)
	}

	m := int(data[0])
	payloadLen := m - 1

	slabs := it.Slabs()

	slabSeqLen := 0
	for _, slab := range slabs {
		slabSeqLen += int(slab.Length)
	}

	if slabSeqLen == 0 || payloadLen < 0 || payloadLen%slabSeqLen != 0 {
		return 0, fmt.Errorf("decoder: explicit item %s length %d not a multiple of %d: %w", it.Id, payloadLen, slabSeqLen, errs.ErrBadExplicitLength)
	}

	n := payloadLen / slabSeqLen

	cursor := 1

	s.BeginRepetitive(uint32(n))

	for j := 0; j < n; j++ {
		s.RepetitiveItem(uint32(j))

		for _, slab := range slabs {
			length := int(slab.Length)
			if len(data[cursor:]) < length {
				return 0, fmt.Errorf("decoder: explicit item %s element %d needs %d bytes: %w", it.Id, j, length, errs.ErrTooShort)
			}

			extractSlab(it, slab, data[cursor:cursor+length], s, depth, j, n, policy)
			cursor += length
		}
	}

	s.EndRepetitive()

	return cursor, nil
}

// decodeCompound reads a Variable-shaped presence bitmap selecting
// subitems from it.Subitems()[1:] in document order, then decodes
// each selected subitem in turn. Only Fixed, Variable and Repetitive
// subitems are permitted.
func decodeCompound(it *item.Descriptor, policy category.Policy, s sink.Sink, data []byte, depth int) (int, error) {
	subitems := it.Subitems()
	if len(subitems) == 0 {
		return 0, fmt.Errorf("decoder: compound item %s has no subitems: %w", it.Id, errs.ErrBadCompoundChild)
	}

	var used []*item.Descriptor

	cursor := 0
	subitemIndex := 1

	for {
		if cursor >= len(data) {
			return 0, fmt.Errorf("decoder: compound item %s presence map truncated: %w", it.Id, errs.ErrTooShort)
		}

		fspec := data[cursor]
		mask := byte(0x80)

		for j := 0; j < 7; j++ {
			if fspec&mask != 0 {
				if subitemIndex >= len(subitems) || subitems[subitemIndex] == nil {
					return 0, fmt.Errorf("decoder: compound item %s subitem %d undefined: %w", it.Id, subitemIndex, errs.ErrBadCompoundChild)
				}

				used = append(used, subitems[subitemIndex])
			}

			mask >>= 1
			subitemIndex++
		}

		cursor++

		if fspec&0x01 == 0 {
			break
		}
	}

	for _, sub := range used {
		var (
			n   int
			err error
		)

		switch sub.Kind {
		case item.Fixed:
			n, err = decodeFixed(sub, policy, s, data[cursor:], depth)
		case item.Variable:
			n, err = decodeVariable(sub, policy, s, data[cursor:], depth)
		case item.Repetitive:
			n, err = decodeRepetitive(sub, policy, s, data[cursor:], depth)
		default:
			err = fmt.Errorf("decoder: compound item %s subitem kind %s: %w", it.Id, sub.Kind, errs.ErrBadCompoundChild)
		}

		if err != nil {
			return 0, err
		}

		cursor += n
	}

	return cursor, nil
}
