package field

import (
	"math"
	"math/big"
)

// NewFromInt64 maps a signed integer into the field, sending negatives v to
// P - |v|.
func NewFromInt64(v int64) Element {
	if v < 0 {
		return New(P - uint64(-v)%P)
	}
	return New(uint64(v))
}

// NewFromInt32 is NewFromInt64 on a sign-extended 32-bit input.
func NewFromInt32(v int32) Element {
	return NewFromInt64(int64(v))
}

// NewFromUint32 maps an unsigned 32-bit integer into the field; the value is
// always canonical.
func NewFromUint32(v uint32) Element {
	return New(uint64(v))
}

// FromUint128 reduces the 128-bit value hi*2^64 + lo into the field via the
// direct limb reduction, then enters Montgomery form.
func FromUint128(hi, lo uint64) Element {
	return New(modReduce(hi, lo))
}

// NewFromBigInt reduces an arbitrary-precision integer, negatives included,
// into the field.
func NewFromBigInt(v *big.Int) Element {
	mod := new(big.Int).SetUint64(P)
	reduced := new(big.Int).Mod(v, mod)
	if reduced.Sign() < 0 {
		reduced.Add(reduced, mod)
	}
	return New(reduced.Uint64())
}

// Uint64 returns the canonical value. It never fails.
func (e Element) Uint64() uint64 {
	return e.Value()
}

// Int64 returns the signed interpretation of the canonical value: values
// above P/2 map to v - P. Every field element fits, so this never fails.
func (e Element) Int64() int64 {
	v := e.Value()
	if v > P/2 {
		return -int64(P - v)
	}
	return int64(v)
}

// Uint32 returns the canonical value when it fits 32 bits, otherwise
// ErrOutOfRange.
func (e Element) Uint32() (uint32, error) {
	v := e.Value()
	if v > math.MaxUint32 {
		return 0, ErrOutOfRange
	}
	return uint32(v), nil
}

// Int32 returns the signed interpretation when it fits 32 bits, otherwise
// ErrOutOfRange.
func (e Element) Int32() (int32, error) {
	s := e.Int64()
	if s < math.MinInt32 || s > math.MaxInt32 {
		return 0, ErrOutOfRange
	}
	return int32(s), nil
}

// Uint16 returns the canonical value when it fits 16 bits, otherwise
// ErrOutOfRange.
func (e Element) Uint16() (uint16, error) {
	v := e.Value()
	if v > math.MaxUint16 {
		return 0, ErrOutOfRange
	}
	return uint16(v), nil
}

// Uint8 returns the canonical value when it fits 8 bits, otherwise
// ErrOutOfRange.
func (e Element) Uint8() (uint8, error) {
	v := e.Value()
	if v > math.MaxUint8 {
		return 0, ErrOutOfRange
	}
	return uint8(v), nil
}

// BigInt returns the canonical value as a big.Int.
func (e Element) BigInt() *big.Int {
	return new(big.Int).SetUint64(e.Value())
}
