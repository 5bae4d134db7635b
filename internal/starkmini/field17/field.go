// Package field17 implements arithmetic in the prime field F_17, the
// only field this STARK instance ever operates over.
package field17

import (
	"fmt"
	"math/big"
)

// Prime is the fixed field modulus. The statement this module proves
// a claim about was chosen specifically so that the trace domain (size
// 4) and the LDE domain (size 8) both divide 17-1=16.
const Prime = 17

// Generator is the fixed multiplicative generator of F_17*, used as
// the base of the discrete-log routine (Log) and nowhere else in this
// package.
var Generator = New(3)

// Element is a normalized member of {0, ..., 16}, backed by a big.Int
// specialized to the single fixed modulus 17.
type Element struct {
	value *big.Int
}

var modulus = big.NewInt(Prime)

// New builds an Element from any integer, reducing it mod 17.
func New(v int64) Element {
	return Element{value: new(big.Int).Mod(big.NewInt(v), modulus)}
}

// Zero is the additive identity.
func Zero() Element { return New(0) }

// One is the multiplicative identity.
func One() Element { return New(1) }

// Big returns the element's value as a big.Int in [0, 17).
func (e Element) Big() *big.Int {
	return new(big.Int).Set(e.value)
}

// Uint8 returns the element's value as a byte in [0, 17).
func (e Element) Uint8() byte {
	return byte(e.value.Uint64())
}

// Add returns e + other mod 17.
func (e Element) Add(other Element) Element {
	return Element{value: new(big.Int).Mod(new(big.Int).Add(e.value, other.value), modulus)}
}

// Sub returns e - other mod 17.
func (e Element) Sub(other Element) Element {
	return Element{value: new(big.Int).Mod(new(big.Int).Sub(e.value, other.value), modulus)}
}

// Neg returns (17 - e) mod 17.
func (e Element) Neg() Element {
	return Element{value: new(big.Int).Mod(new(big.Int).Neg(e.value), modulus)}
}

// Mul returns e * other mod 17.
func (e Element) Mul(other Element) Element {
	return Element{value: new(big.Int).Mod(new(big.Int).Mul(e.value, other.value), modulus)}
}

// Square returns e * e.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Pow returns e raised to a non-negative integer exponent, by
// repeated squaring.
func (e Element) Pow(exp uint64) Element {
	result := One()
	base := e
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// Inv returns the multiplicative inverse of e via Fermat's little
// theorem (e^(p-2)), failing for e = 0.
func (e Element) Inv() (Element, error) {
	if e.IsZero() {
		return Element{}, fmt.Errorf("field17: cannot invert zero")
	}
	return e.Pow(Prime - 2), nil
}

// Div returns e / other, failing if other is zero.
func (e Element) Div(other Element) (Element, error) {
	inv, err := other.Inv()
	if err != nil {
		return Element{}, fmt.Errorf("field17: division failed: %w", err)
	}
	return e.Mul(inv), nil
}

// Log returns the discrete logarithm of e with respect to Generator,
// i.e. the unique k in {0,...,15} with Generator^k == e. It fails for
// e = 0, since 0 has no discrete log. This is a brute-force scan: the
// discrete logarithm problem has no known efficient algorithm in
// general, and this field is too small to care.
func (e Element) Log() (int, error) {
	if e.IsZero() {
		return 0, fmt.Errorf("field17: log(0) is undefined")
	}
	result := One()
	for k := 0; k < Prime-1; k++ {
		if result.Equal(e) {
			return k, nil
		}
		result = result.Mul(Generator)
	}
	return 0, fmt.Errorf("field17: log(%s) base %s does not exist", e, Generator)
}

// Equal reports whether e and other hold the same value.
func (e Element) Equal(other Element) bool {
	return e.value.Cmp(other.value) == 0
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.value.Sign() == 0
}

// String renders the element's value in decimal.
func (e Element) String() string {
	return e.value.String()
}
