// Package field implements the Goldilocks prime field F_p with
// p = 2^64 - 2^32 + 1.
//
// Elements are stored in Montgomery form (x * 2^64 mod P), which turns every
// modular multiplication into a 128-bit product followed by a shift-and-fold
// reduction tuned to the shape of this prime. The canonical integer value of
// an element is always recoverable through Value and lies in [0, P).
package field

import (
	"math/bits"
)

const (
	// P is the Goldilocks prime 2^64 - 2^32 + 1.
	P uint64 = 0xFFFFFFFF00000001

	// Max is the largest canonical value, P - 1.
	Max uint64 = P - 1

	// R2 is 2^128 mod P, the factor used to enter Montgomery form.
	R2 uint64 = 0xFFFFFFFE00000001

	// MinusTwoInverse is -2^-1 mod P in canonical form.
	MinusTwoInverse uint64 = 0x7FFFFFFF80000000

	// epsilon is 2^64 mod P = 2^32 - 1, the wrap-around correction term.
	epsilon uint64 = 0xFFFFFFFF
)

// Element is a field element in Montgomery representation. The zero value is
// the additive identity. Elements are plain data and compare with Equal;
// the Montgomery residue is kept reduced below P, so equality of residues is
// equality of elements.
type Element struct {
	value uint64
}

var (
	// Zero is the additive identity.
	Zero = Element{}

	// One is the multiplicative identity.
	One = New(1)
)

// New returns the field element for an arbitrary uint64. Values at or above
// P are reduced silently; the conversion into Montgomery form performs a full
// reduction either way.
func New(v uint64) Element {
	return Element{value: mulReduce(v, R2)}
}

// TryFromCanonical returns the element for v, or ErrNotCanonical when v is
// not a canonical representative (v >= P).
func TryFromCanonical(v uint64) (Element, error) {
	if v >= P {
		return Zero, ErrNotCanonical
	}
	return New(v), nil
}

// FromMontgomery builds an element directly from a Montgomery residue.
// The residue must already be reduced below P.
func FromMontgomery(raw uint64) Element {
	return Element{value: raw}
}

// Montgomery returns the raw Montgomery residue.
func (e Element) Montgomery() uint64 {
	return e.value
}

// Value returns the canonical representative in [0, P).
func (e Element) Value() uint64 {
	return montyReduce(0, e.value)
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.value == 0
}

// IsOne reports whether e is the multiplicative identity.
func (e Element) IsOne() bool {
	return e == One
}

// Equal reports whether two elements represent the same field value.
func (e Element) Equal(other Element) bool {
	return e.value == other.value
}

// Add returns e + other.
//
// Computed as a - (P - b): the single borrow correction keeps the result
// reduced without comparing against P afterwards.
func (e Element) Add(other Element) Element {
	x, borrow := bits.Sub64(e.value, P-other.value, 0)
	if borrow != 0 {
		x += P
	}
	return Element{value: x}
}

// Sub returns e - other.
func (e Element) Sub(other Element) Element {
	x, borrow := bits.Sub64(e.value, other.value, 0)
	// On borrow the wrap added 2^64; compensate by 2^64 - P.
	return Element{value: x - epsilon*borrow}
}

// Neg returns -e.
func (e Element) Neg() Element {
	if e.value == 0 {
		return Zero
	}
	return Element{value: P - e.value}
}

// Mul returns e * other.
func (e Element) Mul(other Element) Element {
	return Element{value: mulReduce(e.value, other.value)}
}

// MulBase returns e * other. It exists so that base and extension elements
// expose the same multiply-by-base-scalar operation to generic transforms.
func (e Element) MulBase(other Element) Element {
	return e.Mul(other)
}

// Square returns e * e.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Double returns 2 * e.
func (e Element) Double() Element {
	return e.Add(e)
}

// Div returns e / other, failing with ErrInverseOfZero when other is zero.
func (e Element) Div(other Element) (Element, error) {
	inv, err := other.Inverse()
	if err != nil {
		return Zero, err
	}
	return e.Mul(inv), nil
}

// ModPow returns e^exp. By convention 0^0 = 1. The square-and-multiply walk
// runs over the exponent's bit length, most significant bit first.
func (e Element) ModPow(exp uint64) Element {
	acc := One
	for i := bits.Len64(exp) - 1; i >= 0; i-- {
		acc = acc.Square()
		if exp&(1<<uint(i)) != 0 {
			acc = acc.Mul(e)
		}
	}
	return acc
}

// ModPow32 is ModPow with a zero-extended 32-bit exponent.
func (e Element) ModPow32(exp uint32) Element {
	return e.ModPow(uint64(exp))
}

// Generator returns the fixed generator of the multiplicative group, 7.
// Its order is P - 1.
func Generator() Element {
	return New(7)
}

// CyclicGroupElements returns the powers [1, e, e^2, ...] of e, stopping when
// the running power returns to one or, for limit > 0, when limit elements
// have been produced. The zero element yields [0] and one yields [1].
func (e Element) CyclicGroupElements(limit int) []Element {
	if e.IsZero() {
		return []Element{Zero}
	}

	elems := []Element{One}
	acc := e
	for !acc.IsOne() && (limit <= 0 || len(elems) < limit) {
		elems = append(elems, acc)
		acc = acc.Mul(e)
	}
	return elems
}
