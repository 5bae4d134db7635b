// Package fri implements the folding step of the FRI low-degree
// test. This package only provides the single fold operation shared
// by every transition; the prover and verifier each thread it through
// the three layers (layer 0 = composition evaluations, layer 1,
// layer 2 = terminal) themselves, as separately named local values
// rather than a list.
package fri

import (
	"fmt"

	"github.com/plafer/stark-102/internal/starkmini/field17"
)

// Fold computes one FRI folding step: given evaluations of a
// polynomial P over domain dom (size N, even), and a channel-derived
// challenge beta, it returns the evaluations of the folded polynomial
// P' over the squared first-half domain (size N/2), where
//
//	P'(x^2) = (P(x)+P(-x))/2 + beta*(P(x)-P(-x))/(2x)
//
// for x = dom[j], -x = dom[j+N/2], j = 0..N/2-1.
func Fold(values, dom []field17.Element, beta field17.Element) ([]field17.Element, error) {
	n := len(values)
	if n != len(dom) {
		return nil, fmt.Errorf("fri: values and domain length mismatch (%d vs %d)", n, len(dom))
	}
	if n == 0 || n%2 != 0 {
		return nil, fmt.Errorf("fri: domain size %d must be even and nonzero", n)
	}

	half := n / 2
	two := field17.New(2)
	next := make([]field17.Element, half)

	for j := 0; j < half; j++ {
		x := dom[j]
		px := values[j]
		pMinusX := values[j+half]

		evenPart, err := px.Add(pMinusX).Div(two)
		if err != nil {
			return nil, fmt.Errorf("fri: fold at j=%d: %w", j, err)
		}
		twoX := two.Mul(x)
		oddPart, err := px.Sub(pMinusX).Div(twoX)
		if err != nil {
			return nil, fmt.Errorf("fri: fold at j=%d: %w", j, err)
		}

		next[j] = evenPart.Add(beta.Mul(oddPart))
	}

	return next, nil
}

// IsConstant reports whether every element of values is equal -
// the property the terminal (degree-0) FRI layer must satisfy.
func IsConstant(values []field17.Element) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values[1:] {
		if !v.Equal(values[0]) {
			return false
		}
	}
	return true
}
