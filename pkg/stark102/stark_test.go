package stark102

import (
	"errors"
	"testing"

	"github.com/plafer/stark-102/internal/starkmini/field17"
)

func TestEndToEndRoundTrip(t *testing.T) {
	proof, err := GenerateProof()
	if err != nil {
		t.Fatalf("GenerateProof failed: %v", err)
	}

	if err := Verify(proof); err != nil {
		t.Fatalf("Verify rejected an honestly generated proof: %v", err)
	}
}

func TestVerifyRejectsTamperedProofs(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(p *StarkProof)
	}{
		{
			name: "tampered trace LDE root",
			tamper: func(p *StarkProof) {
				p.TraceLDERoot[0] ^= 0xFF
			},
		},
		{
			name: "tampered composition LDE root",
			tamper: func(p *StarkProof) {
				p.CompositionLDERoot[0] ^= 0xFF
			},
		},
		{
			name: "tampered FRI layer 1 root",
			tamper: func(p *StarkProof) {
				p.FriLayer1Root[0] ^= 0xFF
			},
		},
		{
			name: "tampered opened trace value",
			tamper: func(p *StarkProof) {
				p.TraceX.Value = p.TraceX.Value.Add(field17.New(1))
			},
		},
		{
			name: "malicious prover sends the wrong terminal value",
			tamper: func(p *StarkProof) {
				p.FriTerminal = p.FriTerminal.Add(field17.New(1))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			proof, err := GenerateProof()
			if err != nil {
				t.Fatalf("GenerateProof failed: %v", err)
			}
			tc.tamper(proof)

			if err := Verify(proof); err == nil {
				t.Fatal("expected Verify to reject the tampered proof, got nil")
			}
		})
	}
}

func TestVerifyErrorUnwrapsToVerificationError(t *testing.T) {
	proof, err := GenerateProof()
	if err != nil {
		t.Fatalf("GenerateProof failed: %v", err)
	}
	proof.TraceLDERoot[0] ^= 0xFF

	err = Verify(proof)
	if err == nil {
		t.Fatal("expected a rejection error")
	}

	var wrapped *Error
	if !errors.As(err, &wrapped) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if wrapped.Unwrap() == nil {
		t.Error("expected Error to unwrap to the underlying verification error")
	}
}
