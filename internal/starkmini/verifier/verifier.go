// Package verifier implements Verify, replaying the channel and
// checking Merkle inclusion, the constraint equation, and FRI-fold
// consistency against the single-alpha composition
// constraints.Composition computes.
package verifier

import (
	"github.com/plafer/stark-102/internal/starkmini"
	"github.com/plafer/stark-102/internal/starkmini/channel"
	"github.com/plafer/stark-102/internal/starkmini/constraints"
	"github.com/plafer/stark-102/internal/starkmini/domain"
	"github.com/plafer/stark-102/internal/starkmini/field17"
	"github.com/plafer/stark-102/internal/starkmini/fri"
	"github.com/plafer/stark-102/internal/starkmini/merkle"
)

// Verify replays the channel deterministically from the proof's
// commitments, re-deriving alpha, beta0, beta1, and the query index,
// then checks Merkle inclusion, the constraint equation, FRI-fold
// consistency, and the terminal layer. It returns nil iff every check
// passes; otherwise it returns a *starkmini.VerificationError
// identifying which check failed.
func Verify(proof *starkmini.StarkProof) error {
	ch := channel.New()

	ch.CommitDigest(proof.TraceLDERoot)
	alpha := ch.RandomElement()

	ch.CommitDigest(proof.CompositionLDERoot)
	beta0 := ch.RandomElement()

	ch.CommitDigest(proof.FriLayer1Root)
	beta1 := ch.RandomElement()

	ch.Commit([]byte{proof.FriTerminal.Uint8()})

	q := int(ch.RandomInteger(uint64(len(domain.LDE))))
	qG := (q + 2) % len(domain.LDE)
	qNeg := domain.NegatedIndex(q, len(domain.LDE))
	q1 := q % len(domain.FRI1)
	q1Neg := domain.NegatedIndex(q1, len(domain.FRI1))

	if err := verifyMerkleProofs(proof, q, qG, qNeg, q1Neg); err != nil {
		return err
	}

	return verifyQuery(proof, alpha, beta0, beta1, q)
}

func verifyMerkleProofs(proof *starkmini.StarkProof, q, qG, qNeg, q1Neg int) error {
	checks := []struct {
		layer   int
		index   int
		opening starkmini.Opening
		root    merkle.Digest
	}{
		{0, q, proof.TraceX, proof.TraceLDERoot},
		{0, qG, proof.TraceGX, proof.TraceLDERoot},
		{0, qNeg, proof.CompositionMinusX, proof.CompositionLDERoot},
		{1, q1Neg, proof.FriLayer1MinusX, proof.FriLayer1Root},
	}

	for _, c := range checks {
		if !merkle.Verify(c.root, c.index, c.opening.Value, c.opening.Path) {
			return &starkmini.VerificationError{
				Code:    starkmini.ErrMerkleVerificationFailed,
				Message: "opened value does not hash up to the committed root",
				Layer:   c.layer,
				Index:   c.index,
			}
		}
	}
	return nil
}

func verifyQuery(proof *starkmini.StarkProof, alpha, beta0, beta1 field17.Element, q int) error {
	x := domain.LDE[q]

	cpX, err := constraints.Composition(x, proof.TraceX.Value, proof.TraceGX.Value, alpha)
	if err != nil {
		return &starkmini.VerificationError{
			Code:    starkmini.ErrConstraintEquationMismatch,
			Message: "could not evaluate the composition constraint at the query point",
			Cause:   err,
		}
	}

	// FRI fold 0->1: fold {cp(x), cp(-x)} with beta0 to get layer1(x^2).
	// The proof carries no layer-1 opening at x^2, so this value is not
	// compared with a committed one; it is fed into the next fold, whose
	// result is checked against the terminal scalar.
	layer1X, err := fri.Fold(
		[]field17.Element{cpX, proof.CompositionMinusX.Value},
		[]field17.Element{x, x.Neg()},
		beta0,
	)
	if err != nil {
		return &starkmini.VerificationError{
			Code:    starkmini.ErrFriFoldMismatch,
			Message: "could not fold the composition polynomial to layer 1",
			Layer:   0,
			Cause:   err,
		}
	}

	// FRI fold 1->2: fold {layer1(x), layer1(-x)} with beta1 and check
	// it equals the received terminal scalar.
	x1 := x.Square()
	layer2X, err := fri.Fold(
		[]field17.Element{layer1X[0], proof.FriLayer1MinusX.Value},
		[]field17.Element{x1, x1.Neg()},
		beta1,
	)
	if err != nil {
		return &starkmini.VerificationError{
			Code:    starkmini.ErrFriFoldMismatch,
			Message: "could not fold FRI layer 1 to the terminal layer",
			Layer:   1,
			Cause:   err,
		}
	}

	if !layer2X[0].Equal(proof.FriTerminal) {
		return &starkmini.VerificationError{
			Code:    starkmini.ErrTerminalMismatch,
			Message: "folded terminal value does not match the received terminal scalar",
		}
	}

	return nil
}
