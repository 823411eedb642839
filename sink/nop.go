package sink

import "github.com/nexar-aero/asterix/item"

// Nop is a Sink that discards every callback. Useful for benchmarking
// the decoder's walk in isolation from any consumer.
var Nop Sink = nopSink{}

type nopSink struct{}

func (nopSink) Begin(cat uint8)                     {}
func (nopSink) End()                                {}
func (nopSink) BeginItem(it *item.Descriptor)       {}
func (nopSink) BeginRepetitive(count uint32)        {}
func (nopSink) RepetitiveItem(index uint32)         {}
func (nopSink) EndRepetitive()                      {}
func (nopSink) BeginArray(code uint16, size uint32) {}
func (nopSink) Decode(ctx Context, raw uint64, index int32) {}
