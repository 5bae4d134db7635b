package stark102

import (
	"fmt"

	"github.com/plafer/stark-102/internal/starkmini"
	"github.com/plafer/stark-102/internal/starkmini/prover"
	"github.com/plafer/stark-102/internal/starkmini/verifier"
)

// StarkProof is the wire-shaped, self-contained proof object
// generated by GenerateProof and consumed by Verify. It re-exports
// the internal engine's type directly rather than re-declaring a
// type that needs no translation.
type StarkProof = starkmini.StarkProof

// Opening is a single (value, Merkle path) pair embedded in a
// StarkProof's query phase.
type Opening = starkmini.Opening

// Error is returned by Verify when a proof is rejected. It wraps the
// internal engine's *starkmini.VerificationError, which Unwrap returns;
// Error itself exposes no error code of its own.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("stark102: %v", e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// GenerateProof runs the prover and returns a self-contained proof of
// the hardcoded statement. The statement is fixed, so this takes no
// arguments; it only returns an error to satisfy callers that want a
// uniform (T, error) signature across the package's public surface -
// the underlying engine treats its own internal failures as fatal
// (see internal/starkmini/assert.go) and panics rather than returning
// one, since they are programming errors rather than recoverable
// input problems.
func GenerateProof() (*StarkProof, error) {
	return prover.Generate(), nil
}

// Verify checks proof against the hardcoded statement and returns nil
// if and only if it is valid. A non-nil return is always a *Error
// wrapping a *starkmini.VerificationError describing which check
// failed.
func Verify(proof *StarkProof) error {
	if err := verifier.Verify(proof); err != nil {
		return &Error{cause: err}
	}
	return nil
}
