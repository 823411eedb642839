package asterix

import (
	"github.com/nexar-aero/asterix/category"
	"github.com/nexar-aero/asterix/decoder"
	"github.com/nexar-aero/asterix/internal/config"
	"github.com/nexar-aero/asterix/sink"
)

// Decode decodes one outermost ASTERIX datagram from buf against
// codec under policy, streaming decoded fields to s, and returns the
// number of bytes consumed. It is a direct forward to decoder.Decode.
func Decode(codec *category.Codec, policy category.Policy, s sink.Sink, buf []byte) (int, error) {
	return decoder.Decode(codec, policy, s, buf)
}

// NewCodec builds a category Codec from a FSPEC-bit-to-Slot UAP
// mapping. It is a direct forward to category.New.
func NewCodec(cat uint8, uap map[uint8]category.Slot) (*category.Codec, error) {
	return category.New(cat, uap)
}

// NewPolicy builds a decode Policy from options. It is a direct
// forward to category.PolicyWith.
func NewPolicy(opts ...category.PolicyOption) category.Policy {
	return category.PolicyWith(opts...)
}

// Typed adapts a TypedSink into a Sink. It is a direct forward to
// sink.Typed, provided here so callers need not import the sink
// package for the common case.
func Typed(ts sink.TypedSink) sink.Sink {
	return sink.Typed(ts)
}

// LoadPolicy reads and parses a YAML decode-policy document from
// path, so a deployment can flip tolerant/strict decoding behaviour
// without a rebuild. It is a direct forward to internal/config.Load.
func LoadPolicy(path string) (category.Policy, error) {
	return config.Load(path)
}

// ParsePolicy parses a YAML decode-policy document already held in
// memory. It is a direct forward to internal/config.Parse.
func ParsePolicy(data []byte) (category.Policy, error) {
	return config.Parse(data)
}
