// Package poly implements dense-coefficient polynomial arithmetic
// over F_17: evaluation, addition, scalar multiplication, and
// Lagrange interpolation. There is deliberately no polynomial
// division - constraint quotients are evaluated pointwise on the LDE
// instead, relying on FRI to detect non-polynomiality.
package poly

import (
	"fmt"

	"github.com/plafer/stark-102/internal/starkmini/field17"
)

// Polynomial is a dense coefficient vector, lowest degree first:
// Polynomial{1, 2, 3} represents 1 + 2x + 3x^2. The zero polynomial
// built by Zero (or by New with no coefficients) is Polynomial{0}.
// Coefficients are kept as given: New, Add and ScalarMul do not trim
// trailing zero coefficients, so the stored trailing coefficient can
// be zero and Degree then exceeds the true degree.
type Polynomial struct {
	coeffs []field17.Element
}

// New builds a Polynomial from its coefficients, lowest degree first.
// An empty slice is treated as the zero polynomial.
func New(coeffs ...field17.Element) Polynomial {
	if len(coeffs) == 0 {
		return Zero()
	}
	return Polynomial{coeffs: coeffs}
}

// Zero is the zero polynomial.
func Zero() Polynomial {
	return Polynomial{coeffs: []field17.Element{field17.Zero()}}
}

// Degree returns the polynomial's degree (len(coeffs)-1).
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coeffs returns the polynomial's coefficients, lowest degree first.
func (p Polynomial) Coeffs() []field17.Element {
	return append([]field17.Element(nil), p.coeffs...)
}

// Evaluate computes p(x) using Horner's method.
func (p Polynomial) Evaluate(x field17.Element) field17.Element {
	result := field17.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coeffs[i])
	}
	return result
}

// EvaluateDomain evaluates p at every point of dom, in order.
func (p Polynomial) EvaluateDomain(dom []field17.Element) []field17.Element {
	out := make([]field17.Element, len(dom))
	for i, x := range dom {
		out[i] = p.Evaluate(x)
	}
	return out
}

// Add returns p + q, coefficient-wise, with length normalization to
// the longer of the two operands.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	sum := make([]field17.Element, n)
	for i := 0; i < n; i++ {
		a, b := field17.Zero(), field17.Zero()
		if i < len(p.coeffs) {
			a = p.coeffs[i]
		}
		if i < len(q.coeffs) {
			b = q.coeffs[i]
		}
		sum[i] = a.Add(b)
	}
	return Polynomial{coeffs: sum}
}

// ScalarMul returns p with every coefficient multiplied by s.
func (p Polynomial) ScalarMul(s field17.Element) Polynomial {
	out := make([]field17.Element, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.Mul(s)
	}
	return Polynomial{coeffs: out}
}

// LagrangeInterpolate returns the unique polynomial of degree < n
// passing through (xs[i], ys[i]) for every i, computed as
// Σ_i y_i * L_i(x) where L_i(x) = Π_{j≠i} (x-x_j)*(x_i-x_j)^-1.
// Fails if any two x-coordinates coincide (a zero denominator).
func LagrangeInterpolate(xs, ys []field17.Element) (Polynomial, error) {
	if len(xs) != len(ys) {
		return Polynomial{}, fmt.Errorf("poly: domain and evaluations have different lengths (%d vs %d)", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return Zero(), nil
	}

	result := Zero()
	for i := range xs {
		basis, err := lagrangeBasis(i, xs)
		if err != nil {
			return Polynomial{}, err
		}
		result = result.Add(basis.ScalarMul(ys[i]))
	}
	return result, nil
}

// lagrangeBasis computes L_i(x) = Π_{j≠i} (x-x_j) / (x_i-x_j).
func lagrangeBasis(i int, xs []field17.Element) (Polynomial, error) {
	numerator := New(field17.One())
	denominator := field17.One()

	for j, xj := range xs {
		if j == i {
			continue
		}
		if xs[i].Equal(xj) {
			return Polynomial{}, fmt.Errorf("poly: duplicate interpolation point %s", xj)
		}
		// (x - x_j)
		numerator = numerator.mulLinear(xj.Neg())
		denominator = denominator.Mul(xs[i].Sub(xj))
	}

	denomInv, err := denominator.Inv()
	if err != nil {
		return Polynomial{}, fmt.Errorf("poly: %w", err)
	}
	return numerator.ScalarMul(denomInv), nil
}

// mulLinear multiplies p by the monic linear polynomial (x + c),
// i.e. New(c, 1). Used only to build Lagrange numerators, where the
// running product always has exactly this shape.
func (p Polynomial) mulLinear(c field17.Element) Polynomial {
	out := make([]field17.Element, len(p.coeffs)+1)
	for i := range out {
		out[i] = field17.Zero()
	}
	for i, coeff := range p.coeffs {
		out[i] = out[i].Add(coeff.Mul(c))
		out[i+1] = out[i+1].Add(coeff)
	}
	return Polynomial{coeffs: out}
}
