// Package domain exposes the hardcoded evaluation domains this STARK
// instance operates over: the trace domain, the low-degree-extension
// (LDE) domain, and the two FRI sub-domains folding collapses it to.
//
// Every domain here is a coset of a cyclic subgroup of F_17*, fixed at
// compile time: this instance never generalizes to other trace
// lengths or blow-up factors.
package domain

import "github.com/plafer/stark-102/internal/starkmini/field17"

// Trace is the size-4 subgroup generated by 13, the trace domain D_T.
// Invariant: Trace[i] + Trace[(i+2)%4] == 0 (additive inverses sit
// half a period apart).
var Trace = [4]field17.Element{
	field17.New(1),
	field17.New(13),
	field17.New(16),
	field17.New(4),
}

// TraceGenerator is the generator of Trace, g = 13.
var TraceGenerator = field17.New(13)

// LDE is the size-8 coset h*<omega>, the low-degree-extension domain
// D_LDE, with blow-up factor 2 over Trace. Invariant:
// LDE[i] + LDE[(i+4)%8] == 0.
var LDE = [8]field17.Element{
	field17.New(3),
	field17.New(10),
	field17.New(5),
	field17.New(11),
	field17.New(14),
	field17.New(7),
	field17.New(12),
	field17.New(6),
}

// LDEGenerator is omega, the generator of the size-8 subgroup LDE is
// a coset of.
var LDEGenerator = field17.New(9)

// CosetShift is h, the coset shift applied to LDEGenerator's subgroup
// to build LDE (and, by squaring, FRI1/FRI2).
var CosetShift = field17.New(3)

// FRI1 is the size-4 domain the first FRI fold collapses LDE onto,
// obtained by squaring LDE's first half. Invariant:
// FRI1[i] + FRI1[(i+2)%4] == 0.
var FRI1 = [4]field17.Element{
	field17.New(9),
	field17.New(15),
	field17.New(8),
	field17.New(2),
}

// FRI1Generator is the generator of the subgroup FRI1 is a coset of.
var FRI1Generator = field17.New(13)

// FRI2 is the size-2 domain the second FRI fold collapses FRI1 onto.
// A degree-0 polynomial evaluates identically on both its elements.
var FRI2 = [2]field17.Element{
	field17.New(13),
	field17.New(4),
}

// IndexOf returns the position of value within domain via linear
// scan, failing if value is not present.
func IndexOf(value field17.Element, dom []field17.Element) (int, bool) {
	for i, d := range dom {
		if d.Equal(value) {
			return i, true
		}
	}
	return 0, false
}

// NegatedIndex returns the index of -domain[i] within a domain of
// size n, exploiting the "half a period apart" invariant that holds
// for every domain in this package: (i + n/2) % n.
func NegatedIndex(i, n int) int {
	return (i + n/2) % n
}
