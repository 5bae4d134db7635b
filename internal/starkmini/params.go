// Package starkmini is the root of the engine: the fixed parameter
// set, the proof wire type, and the typed error vocabulary shared by
// prover and verifier. The algebra itself lives in the sibling
// sub-packages (field17, domain, poly, merkle, channel, constraints,
// fri, prover, verifier).
package starkmini

// Params bundles the fixed constants this instance is compiled
// against, collapsed to the single valid configuration this module
// supports - there is no Validate()/With* builder surface because
// nothing here is meant to vary.
type Params struct {
	FieldModulus   int64
	FieldGenerator int64
	TraceLength    int
	BlowUpFactor   int
	LDEDomainSize  int
	CosetShift     int64
	LDEGenerator   int64
	ChannelSalt    byte
}

// DefaultParams is the sole Params value this module ever constructs.
func DefaultParams() Params {
	return Params{
		FieldModulus:   17,
		FieldGenerator: 3,
		TraceLength:    4,
		BlowUpFactor:   2,
		LDEDomainSize:  8,
		CosetShift:     3,
		LDEGenerator:   9,
		ChannelSalt:    42,
	}
}
