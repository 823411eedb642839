// Package sink defines the value sink (visitor) contract the decoder
// drives while walking a record, plus a typed convenience layer built
// on top of it.
package sink

import (
	"github.com/nexar-aero/asterix/bitfield"
	"github.com/nexar-aero/asterix/category"
	"github.com/nexar-aero/asterix/item"
)

// Context carries everything a Sink needs to interpret a raw decode
// call without re-inspecting descriptors itself.
type Context struct {
	Item   *item.Descriptor
	Field  bitfield.BitField
	Depth  int
	Policy category.Policy
}

// Sink receives the stream of events one decode call produces. All
// operations are infallible from the decoder's perspective; a sink
// that wants to report an error records it out of band and lets the
// decoder continue to the next callback.
//
// A single decode call drives its Sink strictly sequentially: items
// arrive in UAP-bit order and array elements in ascending index
// order. No reentrancy from within a callback is required or
// permitted.
type Sink interface {
	// Begin brackets the start of one record.
	Begin(cat uint8)
	// End brackets the end of one record.
	End()

	// BeginItem fires when a present UAP slot starts decoding.
	BeginItem(it *item.Descriptor)

	// BeginRepetitive and EndRepetitive bracket a Repetitive or
	// Explicit item's expansion. RepetitiveItem fires once per
	// element, index in [0, count).
	BeginRepetitive(count uint32)
	RepetitiveItem(index uint32)
	EndRepetitive()

	// BeginArray fires exactly once per repeating bitfield, when
	// index == 0 of a repetitive expansion enters that field, so a
	// sink may preallocate.
	BeginArray(code uint16, size uint32)

	// Decode delivers one extracted bitfield. index is -1 for scalar
	// context, else the array index.
	Decode(ctx Context, raw uint64, index int32)
}
