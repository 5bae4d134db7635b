// Package prover implements Generate, the full commit-challenge-fold-
// query sequence for the protocol: commit to the trace LDE, draw
// alpha and commit to the composition LDE, fold twice through FRI
// committing each intermediate layer, then draw a single query index
// and open every value the verifier will need.
package prover

import (
	"github.com/plafer/stark-102/internal/starkmini"
	"github.com/plafer/stark-102/internal/starkmini/channel"
	"github.com/plafer/stark-102/internal/starkmini/constraints"
	"github.com/plafer/stark-102/internal/starkmini/domain"
	"github.com/plafer/stark-102/internal/starkmini/field17"
	"github.com/plafer/stark-102/internal/starkmini/fri"
	"github.com/plafer/stark-102/internal/starkmini/merkle"
	"github.com/plafer/stark-102/internal/starkmini/poly"
	"github.com/plafer/stark-102/internal/starkmini/trace"
)

// Generate runs the prover side of the protocol end to end, producing
// a self-contained StarkProof. It takes no inputs, since the claim
// being proved is hardcoded; every internal failure is an invariant
// violation (bad interpolation points, division by zero) and panics
// via starkmini.MustNotFail/MustBeTrue rather than returning an error,
// since such a failure is a programming error against a fixed
// statement, not a recoverable input problem.
func Generate() *starkmini.StarkProof {
	ch := channel.New()

	// 1. Trace -> interpolate -> evaluate on the LDE -> commit.
	tr := trace.Generate()
	tracePoly, err := poly.LagrangeInterpolate(domain.Trace[:], tr[:])
	starkmini.MustNotFail("interpolating the trace polynomial", err)

	traceLDE := tracePoly.EvaluateDomain(domain.LDE[:])
	traceTree, err := merkle.Commit(traceLDE)
	starkmini.MustNotFail("committing to the trace LDE", err)
	ch.CommitDigest(traceTree.Root())

	// 2. Draw alpha; evaluate the composition polynomial pointwise on
	// the LDE (index i+2 mod 8 gives P_T(g*x) at LDE[i], since the
	// trace-domain generator g=13 equals the LDE generator omega=9
	// squared, so multiplying by g shifts an LDE index by 2).
	alpha := ch.RandomElement()
	compLDE := make([]field17.Element, len(domain.LDE))
	for i, x := range domain.LDE {
		gxIdx := (i + 2) % len(domain.LDE)
		cp, err := constraints.Composition(x, traceLDE[i], traceLDE[gxIdx], alpha)
		starkmini.MustNotFail("evaluating the composition polynomial", err)
		compLDE[i] = cp
	}
	compTree, err := merkle.Commit(compLDE)
	starkmini.MustNotFail("committing to the composition LDE", err)
	ch.CommitDigest(compTree.Root())

	// 3. Fold to FRI layer 1 (size 4) and commit.
	beta0 := ch.RandomElement()
	layer1, err := fri.Fold(compLDE, domain.LDE[:], beta0)
	starkmini.MustNotFail("folding to FRI layer 1", err)
	layer1Tree, err := merkle.Commit(layer1)
	starkmini.MustNotFail("committing to FRI layer 1", err)
	ch.CommitDigest(layer1Tree.Root())

	// 4. Fold to FRI layer 2 (size 2, the constant terminal layer). No
	// Merkle root is committed for it: a tree over two identical
	// leaves is deterministic and adds no soundness, so the scalar is
	// committed to the channel directly instead.
	beta1 := ch.RandomElement()
	layer2, err := fri.Fold(layer1, domain.FRI1[:], beta1)
	starkmini.MustNotFail("folding to FRI layer 2", err)
	starkmini.MustBeTrue(fri.IsConstant(layer2), "FRI terminal layer is not constant: %v", layer2)
	terminal := layer2[0]
	ch.Commit([]byte{terminal.Uint8()})

	// 5. Draw the query index and assemble the openings.
	q := int(ch.RandomInteger(uint64(len(domain.LDE))))
	qG := (q + 2) % len(domain.LDE)
	qNeg := domain.NegatedIndex(q, len(domain.LDE))
	q1 := q % len(domain.FRI1)
	q1Neg := domain.NegatedIndex(q1, len(domain.FRI1))

	traceXPath, err := traceTree.Open(q)
	starkmini.MustNotFail("opening the trace LDE at the query index", err)
	traceGXPath, err := traceTree.Open(qG)
	starkmini.MustNotFail("opening the trace LDE at g times the query point", err)
	compMinusXPath, err := compTree.Open(qNeg)
	starkmini.MustNotFail("opening the composition LDE at the negated query index", err)
	layer1MinusXPath, err := layer1Tree.Open(q1Neg)
	starkmini.MustNotFail("opening FRI layer 1 at its negated index", err)

	return &starkmini.StarkProof{
		TraceLDERoot:       traceTree.Root(),
		CompositionLDERoot: compTree.Root(),
		FriLayer1Root:      layer1Tree.Root(),
		FriTerminal:        terminal,

		TraceX:            starkmini.Opening{Value: traceLDE[q], Path: traceXPath},
		TraceGX:           starkmini.Opening{Value: traceLDE[qG], Path: traceGXPath},
		CompositionMinusX: starkmini.Opening{Value: compLDE[qNeg], Path: compMinusXPath},
		FriLayer1MinusX:   starkmini.Opening{Value: layer1[q1Neg], Path: layer1MinusXPath},
	}
}
