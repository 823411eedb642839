package category

// Policy is the set of runtime-configurable behaviours the decoder
// consults while walking a Codec. It never affects the values
// extracted from the wire, only whether certain conditions are fatal
// and whether trace logging fires.
type Policy struct {
	// Verbose enables per-item structured trace logging via
	// internal/log. Observability only; does not affect decoded
	// values.
	Verbose bool

	// FailOnMissingMandatory makes a clear FSPEC bit whose UAP slot is
	// mandatory fail with errs.ErrMissingMandatory. When false (the
	// default), the condition is silently tolerated, matching the
	// inherited behaviour of the original decoder.
	FailOnMissingMandatory bool

	// FailOnUnknownUnit records whether a unit token outside
	// bitfield.ParseUnit's recognised set should be fatal rather than
	// folded to bitfield.UnitNone. No constructor or decoder in this
	// module reads it; code that parses unit tokens with ParseUnit
	// applies it itself.
	FailOnUnknownUnit bool
}

// PolicyOption configures one field of a Policy.
type PolicyOption func(*Policy)

// WithVerbose enables or disables per-item trace logging.
func WithVerbose(v bool) PolicyOption {
	return func(p *Policy) { p.Verbose = v }
}

// WithFailOnMissingMandatory toggles strict handling of absent
// mandatory items.
func WithFailOnMissingMandatory(v bool) PolicyOption {
	return func(p *Policy) { p.FailOnMissingMandatory = v }
}

// WithFailOnUnknownUnit toggles strict handling of unrecognised unit
// tokens.
func WithFailOnUnknownUnit(v bool) PolicyOption {
	return func(p *Policy) { p.FailOnUnknownUnit = v }
}

// PolicyWith builds a Policy from zero or more options. Unset fields
// keep their zero value: Verbose=false, FailOnMissingMandatory=false,
// FailOnUnknownUnit=false, i.e. the tolerant defaults spec.md §9's
// Open Questions settle on.
func PolicyWith(opts ...PolicyOption) Policy {
	var p Policy
	for _, opt := range opts {
		opt(&p)
	}

	return p
}
