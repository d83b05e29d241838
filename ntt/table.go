package ntt

import (
	"math/bits"

	"github.com/luxfi/goldilocks/field"
)

// Table holds precomputed twiddle factors for the no-swap transform
// variants: n/2 powers of the primitive n-th root of unity, and of its
// inverse, stored in bit-reversed index order of width log2(n) - 1. Build it
// once per transform size and share it freely; a Table is read-only after
// construction.
type Table struct {
	n    int
	logN int

	forward []field.Element
	inverse []field.Element
}

// NewTable precomputes the twiddle tables for sequences of length n.
// n must be a power of two in [2, 2^32].
func NewTable(n int) (*Table, error) {
	logN, err := checkLength(n)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, ErrInvalidLength
	}

	omega, err := field.PrimitiveRootOfUnity(uint64(n))
	if err != nil {
		return nil, err
	}
	omegaInv, err := omega.Inverse()
	if err != nil {
		return nil, err
	}

	t := &Table{
		n:       n,
		logN:    logN,
		forward: make([]field.Element, n/2),
		inverse: make([]field.Element, n/2),
	}

	width := uint(logN - 1)
	wf, wi := field.One, field.One
	for i := 0; i < n/2; i++ {
		j := i
		if width > 0 {
			j = int(reverseBits(uint64(i), width))
		}
		t.forward[j] = wf
		t.inverse[j] = wi
		wf = wf.Mul(omega)
		wi = wi.Mul(omegaInv)
	}
	return t, nil
}

// Size returns the sequence length the table was built for.
func (t *Table) Size() int {
	return t.n
}

// ForwardNoSwap runs the forward transform without the bit-reversal
// permutation, leaving the output in bit-reversed order. Composing it with
// BitReverseOrder is equivalent to Forward. The sequence length must match
// the table.
func ForwardNoSwap[E Value[E]](x []E, t *Table) error {
	if len(x) != t.n {
		return ErrInvalidLength
	}

	// Decimation in frequency: natural-order input, bit-reversed output.
	// Stage half-size m walks n/2 down to 1; the j-th butterfly of a stage
	// multiplies the difference leg by omega^(j * n/2m), which sits at
	// bit-reversed index rev(j) of the table.
	n := t.n
	for m := n / 2; m >= 1; m >>= 1 {
		width := uint(bits.Len64(uint64(m)) - 1)
		for j := 0; j < m; j++ {
			w := t.forward[0]
			if width > 0 {
				w = t.forward[reverseBits(uint64(j), width)]
			}
			for k := 0; k < n; k += 2 * m {
				u := x[k+j]
				v := x[k+j+m]
				x[k+j] = u.Add(v)
				x[k+j+m] = u.Sub(v).MulBase(w)
			}
		}
	}
	return nil
}

// InverseNoSwap runs the inverse butterflies on a sequence already in
// bit-reversed order, producing natural order without the final scaling by
// 1/n. Callers follow it with Unscale for full equivalence with Inverse.
func InverseNoSwap[E Value[E]](x []E, t *Table) error {
	if len(x) != t.n {
		return ErrInvalidLength
	}

	// Decimation in time: bit-reversed input, natural-order output.
	n := t.n
	for m := 1; m < n; m <<= 1 {
		width := uint(bits.Len64(uint64(m)) - 1)
		for j := 0; j < m; j++ {
			w := t.inverse[0]
			if width > 0 {
				w = t.inverse[reverseBits(uint64(j), width)]
			}
			for k := 0; k < n; k += 2 * m {
				u := x[k+j]
				v := x[k+j+m].MulBase(w)
				x[k+j] = u.Add(v)
				x[k+j+m] = u.Sub(v)
			}
		}
	}
	return nil
}
