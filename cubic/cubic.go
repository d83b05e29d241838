// Package cubic implements the degree-3 extension of the Goldilocks base
// field, B[x]/(x^3 - x + 1).
//
// An element is an ordered coefficient triple (c0, c1, c2) standing for
// c0 + c1*x + c2*x^2. All coefficient arithmetic happens in the base field,
// so the extension inherits the Montgomery representation transparently.
package cubic

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/luxfi/goldilocks/field"
)

// ErrInvalidUnlift is returned when projecting an element with non-zero
// extension coefficients back to the base field.
var ErrInvalidUnlift = errors.New("extension coefficients are non-zero")

// Element is a cubic extension field element. The zero value is the additive
// identity.
type Element struct {
	c0, c1, c2 field.Element
}

var (
	// Zero is the additive identity (0, 0, 0).
	Zero = Element{}

	// One is the multiplicative identity (1, 0, 0).
	One = Element{c0: field.One}
)

// New builds an element from its three coefficients.
func New(c0, c1, c2 field.Element) Element {
	return Element{c0: c0, c1: c1, c2: c2}
}

// NewConst embeds a base field element as the constant polynomial (b, 0, 0).
func NewConst(b field.Element) Element {
	return Element{c0: b}
}

// Coefficients returns the coefficient triple (c0, c1, c2).
func (e Element) Coefficients() (field.Element, field.Element, field.Element) {
	return e.c0, e.c1, e.c2
}

// Unlift projects the element back into the base field. It fails with
// ErrInvalidUnlift unless both extension coefficients are zero.
func (e Element) Unlift() (field.Element, error) {
	if !e.c1.IsZero() || !e.c2.IsZero() {
		return field.Zero, ErrInvalidUnlift
	}
	return e.c0, nil
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.c0.IsZero() && e.c1.IsZero() && e.c2.IsZero()
}

// IsOne reports whether e is the multiplicative identity.
func (e Element) IsOne() bool {
	return e == One
}

// Equal reports whether two elements are equal.
func (e Element) Equal(other Element) bool {
	return e == other
}

// Add returns e + other, componentwise.
func (e Element) Add(other Element) Element {
	return Element{
		c0: e.c0.Add(other.c0),
		c1: e.c1.Add(other.c1),
		c2: e.c2.Add(other.c2),
	}
}

// Sub returns e - other, componentwise.
func (e Element) Sub(other Element) Element {
	return Element{
		c0: e.c0.Sub(other.c0),
		c1: e.c1.Sub(other.c1),
		c2: e.c2.Sub(other.c2),
	}
}

// Neg returns -e.
func (e Element) Neg() Element {
	return Element{c0: e.c0.Neg(), c1: e.c1.Neg(), c2: e.c2.Neg()}
}

// Mul returns e * other: the degree-4 polynomial product reduced by
// x^3 -> x - 1 and x^4 -> x^2 - x.
func (e Element) Mul(other Element) Element {
	a, b, c := e.c2, e.c1, e.c0
	d, f, g := other.c2, other.c1, other.c0

	ad := a.Mul(d)
	af := a.Mul(f)
	bd := b.Mul(d)
	bf := b.Mul(f)

	r0 := c.Mul(g).Sub(af).Sub(bd)
	r1 := b.Mul(g).Add(c.Mul(f)).Sub(ad).Add(af).Add(bd)
	r2 := a.Mul(g).Add(bf).Add(c.Mul(d)).Add(ad)

	return Element{c0: r0, c1: r1, c2: r2}
}

// MulBase returns e scaled by a base field element, coefficient by
// coefficient.
func (e Element) MulBase(s field.Element) Element {
	return Element{
		c0: e.c0.Mul(s),
		c1: e.c1.Mul(s),
		c2: e.c2.Mul(s),
	}
}

// Square returns e * e.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Inverse returns e^-1, failing with field.ErrInverseOfZero on the zero
// element.
//
// The inverse is the adjugate of the multiplication-by-e map scaled by the
// inverse of its determinant N (the field norm of e). For the modulus
// x^3 - x + 1 the adjugate triple works out to
//
//	d0 = c0^2 - c1^2 + c2^2 + 2*c0*c2 + c1*c2
//	d1 = -(c0*c1 + c2^2)
//	d2 = c1^2 - c2^2 - c0*c2
//
// with N = c0*d0 - c2*d1 - c1*d2, which is zero only for the zero element.
func (e Element) Inverse() (Element, error) {
	c0, c1, c2 := e.c0, e.c1, e.c2

	c0c2 := c0.Mul(c2)
	c1sq := c1.Square()
	c2sq := c2.Square()

	d0 := c0.Square().Sub(c1sq).Add(c2sq).Add(c0c2.Double()).Add(c1.Mul(c2))
	d1 := c0.Mul(c1).Add(c2sq).Neg()
	d2 := c1sq.Sub(c2sq).Sub(c0c2)

	norm := c0.Mul(d0).Sub(c2.Mul(d1)).Sub(c1.Mul(d2))
	normInv, err := norm.Inverse()
	if err != nil {
		return Zero, field.ErrInverseOfZero
	}

	return Element{
		c0: d0.Mul(normInv),
		c1: d1.Mul(normInv),
		c2: d2.Mul(normInv),
	}, nil
}

// Div returns e / other, failing with field.ErrInverseOfZero when other is
// zero.
func (e Element) Div(other Element) (Element, error) {
	inv, err := other.Inverse()
	if err != nil {
		return Zero, err
	}
	return e.Mul(inv), nil
}

// ModPow returns e^exp with 0^0 = One, square-and-multiply from the most
// significant exponent bit down.
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

// PrimitiveRootOfUnity lifts the base field primitive n-th root of unity into
// the extension. The supported orders are exactly those of the base table.
func PrimitiveRootOfUnity(n uint64) (Element, error) {
	root, err := field.PrimitiveRootOfUnity(n)
	if err != nil {
		return Zero, err
	}
	return NewConst(root), nil
}

// CyclicGroupElements returns the powers [One, e, e^2, ...] of e, stopping
// when the running power returns to One or, for limit > 0, when limit
// elements have been produced.
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

// String renders the element as its coefficient triple.
func (e Element) String() string {
	return fmt.Sprintf("(%s, %s, %s)", e.c0, e.c1, e.c2)
}

// Lift embeds a base field element into the extension. It is the inverse of
// Unlift on constant polynomials.
func Lift(b field.Element) Element {
	return NewConst(b)
}
