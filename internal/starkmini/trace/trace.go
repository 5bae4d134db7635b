// Package trace generates the single execution trace this STARK
// instance proves knowledge of. The recurrence is computed here
// rather than hardcoded as a literal, so the claim "a0=3,
// a_{i+1}=a_i^2" is exercised, not just its fixed output.
package trace

import "github.com/plafer/stark-102/internal/starkmini/field17"

// FirstElement is a0, fixed by the statement being proved.
var FirstElement = field17.New(3)

// Length is the number of elements in the trace: one initial value
// plus three squarings.
const Length = 4

// Generate computes T = [a0, a0^2, a0^4, a0^8] = [3, 9, 13, 16].
func Generate() [Length]field17.Element {
	var out [Length]field17.Element
	out[0] = FirstElement
	for i := 1; i < Length; i++ {
		out[i] = out[i-1].Square()
	}
	return out
}
