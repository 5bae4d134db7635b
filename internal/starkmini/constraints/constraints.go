// Package constraints evaluates the boundary and transition
// constraints of the statement, and combines them into the
// composition polynomial's pointwise evaluation. Quotients are never
// formed symbolically: numerator and denominator are each evaluated
// at a point and combined via field17.Element.Div, relying on FRI to
// detect the case where the quotient is not actually a polynomial.
package constraints

import (
	"fmt"

	"github.com/plafer/stark-102/internal/starkmini/domain"
	"github.com/plafer/stark-102/internal/starkmini/field17"
	"github.com/plafer/stark-102/internal/starkmini/trace"
)

// Boundary evaluates C1(x) = (P_T(x) - 3) / (x - D_T[0]) at x, given
// the trace polynomial's value at x. It encodes the claim a0=3.
func Boundary(x, pTx field17.Element) (field17.Element, error) {
	numerator := pTx.Sub(trace.FirstElement)
	denominator := x.Sub(domain.Trace[0])
	quotient, err := numerator.Div(denominator)
	if err != nil {
		return field17.Element{}, fmt.Errorf("constraints: boundary constraint at x=%s: %w", x, err)
	}
	return quotient, nil
}

// Transition evaluates C2(x) = (P_T(g*x) - P_T(x)^2) /
// ((x-D_T[0])(x-D_T[1])(x-D_T[2])) at x, given the trace polynomial's
// values at x and at g*x. It encodes the claim a_{i+1}=a_i^2 for the
// first three consecutive pairs; D_T[3] is deliberately excluded from
// the denominator since the relation is not enforced past index 2.
func Transition(x, pTx, pTgx field17.Element) (field17.Element, error) {
	numerator := pTgx.Sub(pTx.Square())
	denominator := x.Sub(domain.Trace[0]).
		Mul(x.Sub(domain.Trace[1])).
		Mul(x.Sub(domain.Trace[2]))
	quotient, err := numerator.Div(denominator)
	if err != nil {
		return field17.Element{}, fmt.Errorf("constraints: transition constraint at x=%s: %w", x, err)
	}
	return quotient, nil
}

// Composition evaluates CP(x) = C1(x) + alpha*C2(x), the channel-
// randomized linear combination committed to once.
func Composition(x, pTx, pTgx, alpha field17.Element) (field17.Element, error) {
	c1, err := Boundary(x, pTx)
	if err != nil {
		return field17.Element{}, err
	}
	c2, err := Transition(x, pTx, pTgx)
	if err != nil {
		return field17.Element{}, err
	}
	return c1.Add(alpha.Mul(c2)), nil
}
