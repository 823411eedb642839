// Package decoder walks a binary ASTERIX datagram bit by bit, driving
// a sink.Sink according to a category.Codec's UAP. It is the state
// machine at the center of this module: everything else describes the
// shape of a category; this package interprets bytes against that
// shape.
package decoder

import (
	"encoding/binary"
	"fmt"

	"github.com/nexar-aero/asterix/category"
	"github.com/nexar-aero/asterix/errs"
	"github.com/nexar-aero/asterix/internal/log"
	"github.com/nexar-aero/asterix/item"
	"github.com/nexar-aero/asterix/sink"
)

// MaxPacketSize bounds the announced length of one datagram. It is
// the caller's job to enforce wall-clock budgets; this is purely a
// sanity bound against a corrupt length field.
const MaxPacketSize = 8192

// maxDepth bounds Compound recursion. ASTERIX categories
// never nest more than a handful of levels deep; this guards against a
// malformed or adversarial descriptor producing unbounded recursion.
const maxDepth = 8

// Decode processes one outermost datagram: category byte, big-endian
// length, then one or more records back to back until length bytes
// are consumed. It returns the number of bytes consumed from buf.
func Decode(codec *category.Codec, policy category.Policy, s sink.Sink, buf []byte) (int, error) {
	if len(buf) < 6 {
		return 0, fmt.Errorf("decoder: message is %d bytes, need at least 6: %w", len(buf), errs.ErrTooShort)
	}

	length := int(binary.BigEndian.Uint16(buf[1:3]))
	remaining := length - 3

	if remaining < 2 || length > MaxPacketSize || length > len(buf) {
		return 0, fmt.Errorf("decoder: announced length %d for a %d-byte buffer: %w", length, len(buf), errs.ErrBadLength)
	}

	if policy.Verbose {
		log.Debug("decode datagram", log.F("category", buf[0]), log.F("length", length))
	}

	index := 3
	for remaining > 0 {
		n, err := decodeRecord(codec, policy, s, buf[index:])
		if err != nil {
			return index, err
		}

		if n <= 0 {
			return index, fmt.Errorf("decoder: record consumed %d bytes: %w", n, errs.ErrUnderflow)
		}

		index += n
		remaining -= n

		if remaining < 0 || index > len(buf) {
			return index, fmt.Errorf("decoder: consumption overruns announced length %d: %w", length, errs.ErrOverflow)
		}
	}

	return index, nil
}

// decodeRecord consumes one fspec||payload record and returns the
// number of bytes consumed.
func decodeRecord(codec *category.Codec, policy category.Policy, s sink.Sink, data []byte) (int, error) {
	fspecLen, err := scanFspec(data)
	if err != nil {
		return 0, err
	}

	if data[0] == 0 {
		return 0, fmt.Errorf("decoder: fspec[0] is zero: %w", errs.ErrBadFspec)
	}

	cursor := fspecLen
	bitIndex := uint8(0)
	fspecByte := 0
	mask := byte(0x80)

	s.Begin(codec.Category())

walk:
	for i := 0; i < fspecLen; i++ {
		for j := 0; j < 8; j++ {
			bitPresent := data[fspecByte]&mask != 0

			if mask == 0x01 {
				mask = 0x80
				fspecByte++

				if !bitPresent {
					break walk
				}

				bitIndex++

				continue
			}

			slot, known := codec.Slot(bitIndex)
			if !known && bitPresent {
				return 0, fmt.Errorf("decoder: fspec bit %d: %w", bitIndex, errs.ErrUndefinedUapBit)
			}

			if bitPresent {
				if policy.Verbose {
					log.Debug("decode item", log.F("category", codec.Category()), log.F("bit", bitIndex), log.F("mandatory", slot.Mandatory))
				}

				s.BeginItem(slot.Item)

				n, err := dispatch(slot.Item, policy, s, data[cursor:], 0)
				if err != nil {
					return 0, err
				}

				cursor += n
			} else if known && slot.Mandatory && policy.FailOnMissingMandatory {
				return 0, fmt.Errorf("decoder: fspec bit %d: %w", bitIndex, errs.ErrMissingMandatory)
			}

			bitIndex++
			mask >>= 1
		}
	}

	s.End()

	return cursor, nil
}

// dispatch routes one present UAP item to its format handler.
func dispatch(it *item.Descriptor, policy category.Policy, s sink.Sink, data []byte, depth int) (int, error) {
	if depth > maxDepth {
		return 0, fmt.Errorf("decoder: recursion depth %d: %w", depth, errs.ErrUnknownItemFormat)
	}

	switch it.Kind {
	case item.Fixed:
		return decodeFixed(it, policy, s, data, depth)
	case item.Variable:
		return decodeVariable(it, policy, s, data, depth)
	case item.Repetitive:
		return decodeRepetitive(it, policy, s, data, depth)
	case item.Compound:
		return decodeCompound(it, policy, s, data, depth+1)
	case item.Explicit:
		return decodeExplicit(it, policy, s, data, depth)
	default:
		return 0, fmt.Errorf("decoder: item kind %v: %w", it.Kind, errs.ErrUnknownItemFormat)
	}
}
