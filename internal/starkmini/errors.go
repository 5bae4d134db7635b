package starkmini

import "fmt"

// ErrorCode classifies a verifier rejection or prover fault.
type ErrorCode int

const (
	// ErrUnknown is the zero value and should never be produced.
	ErrUnknown ErrorCode = iota

	// ErrMerkleVerificationFailed means an opened (value, path) pair
	// did not hash up to its claimed root.
	ErrMerkleVerificationFailed

	// ErrConstraintEquationMismatch means C1(x)+alpha*C2(x) could not be
	// evaluated from the opened trace values at the query point. The
	// proof carries no composition opening at x, so a composition LDE
	// that disagrees with the constraints is not reported under this
	// code; it surfaces as ErrTerminalMismatch.
	ErrConstraintEquationMismatch

	// ErrFriFoldMismatch means a fold step could not be computed at the
	// query point. Folded values are not compared with next-layer
	// openings at the same point (none are carried in the proof); a
	// wrong fold surfaces as ErrTerminalMismatch.
	ErrFriFoldMismatch

	// ErrTerminalMismatch means the final fold did not match the
	// received terminal scalar.
	ErrTerminalMismatch

	// ErrProverFault marks an internal prover invariant violation
	// (inconsistent interpolation points, inversion of zero) - a
	// programming error, not a malicious input.
	ErrProverFault
)

func (c ErrorCode) String() string {
	switch c {
	case ErrMerkleVerificationFailed:
		return "MerkleVerificationFailed"
	case ErrConstraintEquationMismatch:
		return "ConstraintEquationMismatch"
	case ErrFriFoldMismatch:
		return "FriFoldMismatch"
	case ErrTerminalMismatch:
		return "TerminalMismatch"
	case ErrProverFault:
		return "ProverFault"
	default:
		return "Unknown"
	}
}

// VerificationError is the structured rejection reason a failed
// Verify call returns: a Code/Message/Cause triple plus the extra
// Layer/Index fields the Merkle- and FRI-fold failures need to be
// diagnosable.
type VerificationError struct {
	Code    ErrorCode
	Message string
	Layer   int // meaningful for ErrMerkleVerificationFailed, ErrFriFoldMismatch
	Index   int // meaningful for ErrMerkleVerificationFailed
	Cause   error
}

// Error renders a human-readable description of the failure.
func (e *VerificationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("stark-102: %s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("stark-102: %s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *VerificationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *VerificationError with the same
// Code.
func (e *VerificationError) Is(target error) bool {
	t, ok := target.(*VerificationError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ProverError wraps an internal prover invariant violation. These are
// programming errors against a hardcoded statement, not malicious
// input: callers are expected to treat them as bugs, not as
// conditions to recover from.
type ProverError struct {
	Message string
	Cause   error
}

func (e *ProverError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("stark-102: prover fault: %s (caused by: %v)", e.Message, e.Cause)
	}
	return fmt.Sprintf("stark-102: prover fault: %s", e.Message)
}

func (e *ProverError) Unwrap() error {
	return e.Cause
}
