package field

import (
	"encoding/binary"
	"fmt"
)

// RawBytes returns the canonical value as 8 little-endian bytes.
func (e Element) RawBytes() [8]byte {
	var out [8]byte
	binary.LittleEndian.PutUint64(out[:], e.Value())
	return out
}

// FromRawBytes decodes 8 little-endian bytes of a canonical value, rejecting
// any pattern at or above P with ErrNotCanonical.
func FromRawBytes(raw [8]byte) (Element, error) {
	return TryFromCanonical(binary.LittleEndian.Uint64(raw[:]))
}

// RawU16s returns the canonical value as four little-endian 16-bit limbs.
func (e Element) RawU16s() [4]uint16 {
	v := e.Value()
	return [4]uint16{
		uint16(v),
		uint16(v >> 16),
		uint16(v >> 32),
		uint16(v >> 48),
	}
}

// FromRawU16s decodes four little-endian 16-bit limbs of a canonical value,
// with the same range discipline as FromRawBytes.
func FromRawU16s(limbs [4]uint16) (Element, error) {
	v := uint64(limbs[0]) |
		uint64(limbs[1])<<16 |
		uint64(limbs[2])<<32 |
		uint64(limbs[3])<<48
	return TryFromCanonical(v)
}

// MarshalBinary implements encoding.BinaryMarshaler using the canonical
// little-endian byte form.
func (e Element) MarshalBinary() ([]byte, error) {
	raw := e.RawBytes()
	return raw[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (e *Element) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("field element needs 8 bytes, got %d: %w", len(data), ErrNotCanonical)
	}
	var raw [8]byte
	copy(raw[:], data)
	dec, err := FromRawBytes(raw)
	if err != nil {
		return err
	}
	*e = dec
	return nil
}
