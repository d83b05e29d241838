// Package ntt implements in-place radix-2 Number Theoretic Transforms over
// power-of-two sequences of Goldilocks base or cubic extension elements.
//
// Twiddle factors always live in the base field; the transform is generic
// over any element type exposing base-field addition, subtraction and
// multiplication by a base scalar. The checked entry points validate the
// sequence length and look up the matching primitive root of unity; the
// unchecked and no-swap variants trade validation and the bit-reversal
// permutation for caller-supplied roots and precomputed twiddle tables.
package ntt

import (
	"errors"
	"math/bits"

	"github.com/luxfi/goldilocks/field"
)

// ErrInvalidLength is returned when a sequence length is not a power of two
// or exceeds 2^32.
var ErrInvalidLength = errors.New("sequence length must be a power of two at most 2^32")

// Value is the element contract the transforms need: field addition,
// subtraction and multiplication by a base-field scalar. Both field.Element
// and cubic.Element satisfy it.
type Value[E any] interface {
	Add(E) E
	Sub(E) E
	MulBase(field.Element) E
}

// checkLength validates an NTT sequence length and returns log2(n).
func checkLength(n int) (int, error) {
	if n <= 0 || n&(n-1) != 0 || uint64(n) > 1<<32 {
		return 0, ErrInvalidLength
	}
	return bits.Len64(uint64(n)) - 1, nil
}

// Forward runs the in-place forward transform on x. Empty input is a no-op;
// a length that is not a power of two (or exceeds 2^32) fails with
// ErrInvalidLength.
func Forward[E Value[E]](x []E) error {
	n := len(x)
	if n == 0 {
		return nil
	}
	logN, err := checkLength(n)
	if err != nil {
		return err
	}
	omega, err := field.PrimitiveRootOfUnity(uint64(n))
	if err != nil {
		return err
	}
	ForwardWithRoot(x, omega, logN)
	return nil
}

// Inverse runs the in-place inverse transform on x, undoing Forward: the
// butterflies run with the inverted root and every element is scaled by the
// inverse of the sequence length.
func Inverse[E Value[E]](x []E) error {
	n := len(x)
	if n == 0 {
		return nil
	}
	logN, err := checkLength(n)
	if err != nil {
		return err
	}
	omega, err := field.PrimitiveRootOfUnity(uint64(n))
	if err != nil {
		return err
	}
	omegaInv, err := omega.Inverse()
	if err != nil {
		return err
	}
	ForwardWithRoot(x, omegaInv, logN)
	Unscale(x)
	return nil
}

// ForwardWithRoot runs the decimation-in-time transform with a caller-chosen
// root omega and logN = log2(len(x)). No validation is performed: omega must
// be a primitive 2^logN-th root of unity (or its inverse, for an inverse
// transform without the final unscaling).
func ForwardWithRoot[E Value[E]](x []E, omega field.Element, logN int) {
	n := len(x)
	if n <= 1 {
		return
	}

	BitReverseOrder(x)

	for m := 1; m < n; m <<= 1 {
		// Per-stage twiddle step: omega^(n / 2m).
		wm := omega.ModPow(uint64(n / (2 * m)))
		for k := 0; k < n; k += 2 * m {
			w := field.One
			for j := 0; j < m; j++ {
				u := x[k+j]
				v := x[k+j+m].MulBase(w)
				x[k+j] = u.Add(v)
				x[k+j+m] = u.Sub(v)
				w = w.Mul(wm)
			}
		}
	}
}

// Unscale multiplies every element by the inverse of the sequence length,
// completing an inverse transform run through a variant that skips the
// scaling. Empty input is a no-op.
func Unscale[E Value[E]](x []E) {
	if len(x) == 0 {
		return
	}
	nInv := field.New(uint64(len(x))).InverseOrZero()
	for i := range x {
		x[i] = x[i].MulBase(nInv)
	}
}

// BitReverseOrder permutes x in place, moving the element at index i to the
// index obtained by reversing the low log2(n) bits of i. Callers guarantee a
// power-of-two length.
func BitReverseOrder[E any](x []E) {
	n := len(x)
	if n <= 2 {
		return
	}
	logN := uint(bits.Len64(uint64(n)) - 1)
	for i := 0; i < n; i++ {
		j := int(reverseBits(uint64(i), logN))
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}
}

// reverseBits reverses the low width bits of v.
func reverseBits(v uint64, width uint) uint64 {
	return bits.Reverse64(v) >> (64 - width)
}
