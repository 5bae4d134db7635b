// Package stark102 provides a complete, hardcoded zkSTARK prover and
// verifier for a single statement: "I know a0,a1,a2,a3 in F17 with
// a0=3 and a_{i+1}=a_i^2 for i in {0,1,2}."
//
// # Quick start
//
//	proof, err := stark102.GenerateProof()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := stark102.Verify(proof); err != nil {
//		log.Fatal("proof rejected:", err)
//	}
//
// # Architecture
//
// This package is a thin public surface over internal/starkmini: the
// field, domain, polynomial, Merkle, channel, constraints, FRI,
// prover and verifier subsystems all live under internal/ and are not
// importable outside this module. Verify wraps that engine's errors in
// this package's own error type; GenerateProof always returns a nil
// error, since the engine panics on its own internal failures.
//
// There is exactly one valid statement and one valid parameter set:
// this package takes no configuration and accepts no inputs, by
// design.
package stark102
