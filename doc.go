// Package asterix decodes EUROCONTROL ASTERIX binary surveillance
// messages: category byte, big-endian length, one or more
// FSPEC-prefixed records, each record's present items walked against
// a category's UAP and streamed field by field to a sink.Sink.
//
// # Core Features
//
//   - Bit-level FSPEC walking with correct FX-chain handling
//   - All five ASTERIX item formats: Fixed, Variable, Repetitive,
//     Compound, Explicit
//   - A Sink/TypedSink visitor pair so callers can consume decoded
//     fields without allocating an intermediate tree
//   - Dense sequential name→code interning of every field reachable
//     from a category's UAP, with an xxHash64 fingerprint guarding
//     against two distinct names colliding (category.Codec.Symbols)
//   - Pluggable structured logging (internal/log) and YAML-driven
//     decode policy (LoadPolicy/ParsePolicy, backed by internal/config)
//
// # Basic Usage
//
// Building a small category and decoding one datagram:
//
//	f, _ := bitfield.NewRange("sac", 8, 1, bitfield.Unsigned)
//	slab, _ := item.NewSlab(1, []bitfield.BitField{f})
//	sac := item.NewFixed(slab, item.WithId("I048/010"))
//
//	codec, _ := asterix.NewCodec(48, map[uint8]category.Slot{
//	    0: {Item: sac, Mandatory: true},
//	})
//
//	policy, _ := asterix.LoadPolicy("decode-policy.yaml")
//	n, err := asterix.Decode(codec, policy, asterix.Typed(myTypedSink), buf)
//
// # Package Structure
//
// This package is a thin convenience wrapper around decoder.Decode and
// sink.Typed. For building categories from an external UAP source, or
// for a custom Sink implementation, use the bitfield, item, category,
// decoder and sink packages directly.
package asterix
