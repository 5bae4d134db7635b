package starkmini

import "fmt"

// MustNotFail panics with a *ProverError if err is non-nil.
// Prover-side failures (inconsistent interpolation points, inversion
// of zero) are programming errors against a hardcoded statement, not
// malicious input - there is nothing a caller can do to recover from
// them, so the prover package uses this in place of threading an
// error return through every internal step. It is never called from
// exported Verify-side code, which always returns errors instead of
// panicking.
func MustNotFail(context string, err error) {
	if err != nil {
		panic(&ProverError{Message: context, Cause: err})
	}
}

// MustBeTrue panics with a *ProverError if cond is false, for
// invariants that have no accompanying error value (e.g. "the
// terminal FRI layer must be constant").
func MustBeTrue(cond bool, format string, args ...any) {
	if !cond {
		panic(&ProverError{Message: fmt.Sprintf(format, args...)})
	}
}
