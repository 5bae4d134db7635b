package starkmini

import (
	"fmt"
	"strings"

	"github.com/plafer/stark-102/internal/starkmini/field17"
	"github.com/plafer/stark-102/internal/starkmini/merkle"
)

// Opening is a single (value, Merkle path) pair: the leaf index is
// never carried in the wire value, since prover and verifier each
// derive it independently from the replayed channel.
type Opening struct {
	Value field17.Element
	Path  []merkle.Digest
}

// StarkProof is the self-contained, non-interactive proof object:
// three Merkle roots, the terminal FRI scalar, and the single
// query's openings.
type StarkProof struct {
	TraceLDERoot       merkle.Digest
	CompositionLDERoot merkle.Digest
	FriLayer1Root      merkle.Digest
	FriTerminal        field17.Element

	TraceX            Opening // trace LDE opened at the query index
	TraceGX           Opening // trace LDE opened at g*x (index q+2 mod 8)
	CompositionMinusX Opening // composition LDE opened at -x (negated index)
	FriLayer1MinusX   Opening // FRI layer 1 opened at -(x^2)
}

// String renders a human-readable, %v-friendly structured dump of the
// proof, in place of a logging library.
func (p *StarkProof) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "StarkProof{\n")
	fmt.Fprintf(&b, "  trace_lde_root:       %x\n", p.TraceLDERoot)
	fmt.Fprintf(&b, "  composition_lde_root: %x\n", p.CompositionLDERoot)
	fmt.Fprintf(&b, "  fri_layer1_root:      %x\n", p.FriLayer1Root)
	fmt.Fprintf(&b, "  fri_terminal:         %s\n", p.FriTerminal)
	fmt.Fprintf(&b, "  trace_x:              %s (path len %d)\n", p.TraceX.Value, len(p.TraceX.Path))
	fmt.Fprintf(&b, "  trace_gx:             %s (path len %d)\n", p.TraceGX.Value, len(p.TraceGX.Path))
	fmt.Fprintf(&b, "  composition_minus_x:  %s (path len %d)\n", p.CompositionMinusX.Value, len(p.CompositionMinusX.Path))
	fmt.Fprintf(&b, "  fri_layer1_minus_x:   %s (path len %d)\n", p.FriLayer1MinusX.Value, len(p.FriLayer1MinusX.Path))
	fmt.Fprintf(&b, "}")
	return b.String()
}
