package cubic

import (
	"fmt"

	"github.com/luxfi/goldilocks/field"
)

// MarshalBinary implements encoding.BinaryMarshaler as the concatenation of
// the three canonical little-endian coefficient encodings, c0 first.
func (e Element) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, 24)
	for _, c := range [3]field.Element{e.c0, e.c1, e.c2} {
		raw := c.RawBytes()
		out = append(out, raw[:]...)
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler with the same range
// discipline as the base field decoder.
func (e *Element) UnmarshalBinary(data []byte) error {
	if len(data) != 24 {
		return fmt.Errorf("extension element needs 24 bytes, got %d: %w", len(data), field.ErrNotCanonical)
	}
	var coeffs [3]field.Element
	for i := range coeffs {
		var raw [8]byte
		copy(raw[:], data[i*8:(i+1)*8])
		c, err := field.FromRawBytes(raw)
		if err != nil {
			return err
		}
		coeffs[i] = c
	}
	*e = Element{c0: coeffs[0], c1: coeffs[1], c2: coeffs[2]}
	return nil
}
