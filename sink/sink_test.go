package sink_test

import (
	"testing"

	"github.com/nexar-aero/asterix/bitfield"
	"github.com/nexar-aero/asterix/item"
	"github.com/nexar-aero/asterix/sink"
	"github.com/stretchr/testify/require"
)

type recordingTypedSink struct {
	bools   map[string]bool
	signed  map[string]int64
	uns     map[string]uint64
	reals   map[string]float64
	strings map[string]string
}

func newRecordingTypedSink() *recordingTypedSink {
	return &recordingTypedSink{
		bools:   map[string]bool{},
		signed:  map[string]int64{},
		uns:     map[string]uint64{},
		reals:   map[string]float64{},
		strings: map[string]string{},
	}
}

func (r *recordingTypedSink) Begin(cat uint8)               {}
func (r *recordingTypedSink) End()                          {}
func (r *recordingTypedSink) BeginItem(it *item.Descriptor) {}
func (r *recordingTypedSink) BeginRepetitive(count uint32)  {}
func (r *recordingTypedSink) RepetitiveItem(index uint32)   {}
func (r *recordingTypedSink) EndRepetitive()                {}
func (r *recordingTypedSink) BeginArray(code uint16, size uint32) {}

func (r *recordingTypedSink) DecodeBoolean(name string, value bool, index int32) {
	r.bools[name] = value
}

func (r *recordingTypedSink) DecodeSigned(name string, value int64, index int32) {
	r.signed[name] = value
}

func (r *recordingTypedSink) DecodeUnsigned(name string, value uint64, index int32) {
	r.uns[name] = value
}

func (r *recordingTypedSink) DecodeReal(name string, value float64, index int32) {
	r.reals[name] = value
}

func (r *recordingTypedSink) DecodeString(name string, value string, index int32) {
	r.strings[name] = value
}

func TestTypedDispatchBoolean(t *testing.T) {
	f, err := bitfield.NewSingleBit("track-valid", 1, false, bitfield.Unsigned)
	require.NoError(t, err)

	rec := newRecordingTypedSink()
	s := sink.Typed(rec)
	s.Decode(sink.Context{Field: f}, 1, -1)

	require.True(t, rec.bools["track-valid"])
}

func TestTypedDispatchSuppressesFXAndSpare(t *testing.T) {
	fx, err := bitfield.NewSingleBit("FX", 8, true, bitfield.Unsigned)
	require.NoError(t, err)
	spare, err := bitfield.NewSingleBit("spare", 1, false, bitfield.Unsigned)
	require.NoError(t, err)

	rec := newRecordingTypedSink()
	s := sink.Typed(rec)
	s.Decode(sink.Context{Field: fx}, 1, -1)
	s.Decode(sink.Context{Field: spare}, 1, -1)

	require.Empty(t, rec.bools)
}

func TestTypedDispatchReal(t *testing.T) {
	f, err := bitfield.NewRange("range", 16, 1, bitfield.Unsigned, bitfield.WithScale(1.0/256.0))
	require.NoError(t, err)

	rec := newRecordingTypedSink()
	s := sink.Typed(rec)
	s.Decode(sink.Context{Field: f}, 256, -1)

	require.InDelta(t, 1.0, rec.reals["range"], 1e-9)
}

func TestTypedDispatchSigned(t *testing.T) {
	f, err := bitfield.NewRange("flight-level", 16, 1, bitfield.Signed)
	require.NoError(t, err)

	rec := newRecordingTypedSink()
	s := sink.Typed(rec)
	s.Decode(sink.Context{Field: f}, 0xFFFF, -1)

	require.Equal(t, int64(-1), rec.signed["flight-level"])
}

func TestTypedDispatchUnsignedAndOctal(t *testing.T) {
	unsigned, err := bitfield.NewRange("sac", 16, 9, bitfield.Unsigned)
	require.NoError(t, err)
	octal, err := bitfield.NewRange("mode3a", 12, 1, bitfield.Octal)
	require.NoError(t, err)

	rec := newRecordingTypedSink()
	s := sink.Typed(rec)
	s.Decode(sink.Context{Field: unsigned}, 42, -1)
	s.Decode(sink.Context{Field: octal}, 0o1234, -1)

	require.Equal(t, uint64(42), rec.uns["sac"])
	require.Equal(t, uint64(0o1234), rec.uns["mode3a"])
}

func TestTypedDispatchStrings(t *testing.T) {
	ascii, err := bitfield.NewRange("ascii-field", 16, 1, bitfield.Ascii)
	require.NoError(t, err)
	sixbit, err := bitfield.NewRange("callsign", 48, 1, bitfield.SixBitsChar)
	require.NoError(t, err)

	rec := newRecordingTypedSink()
	s := sink.Typed(rec)
	s.Decode(sink.Context{Field: ascii}, uint64('H')<<8|uint64('I'), -1)
	// "KLM1" packed as eight six-bit ICAO characters, space-padded.
	s.Decode(sink.Context{Field: sixbit}, 49217934592032, -1)

	require.Equal(t, "HI", rec.strings["ascii-field"])
	require.Equal(t, "KLM1", rec.strings["callsign"])
}

func TestNopSinkDiscardsEverything(t *testing.T) {
	require.NotPanics(t, func() {
		sink.Nop.Begin(48)
		sink.Nop.Decode(sink.Context{}, 0, -1)
		sink.Nop.End()
	})
}
