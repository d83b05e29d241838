package field

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestRawBytesRoundTrip(t *testing.T) {
	for _, e := range randomElements(t, 32) {
		back, err := FromRawBytes(e.RawBytes())
		if err != nil {
			t.Fatal(err)
		}
		if !back.Equal(e) {
			t.Fatalf("byte round trip lost %v", e)
		}
	}
}

func TestFromRawBytesRejectsNonCanonical(t *testing.T) {
	for _, v := range []uint64{P, P + 1, ^uint64(0)} {
		var raw [8]byte
		binary.LittleEndian.PutUint64(raw[:], v)
		if _, err := FromRawBytes(raw); !errors.Is(err, ErrNotCanonical) {
			t.Errorf("FromRawBytes(%d) error = %v, want ErrNotCanonical", v, err)
		}
	}
}

func TestRawU16sRoundTrip(t *testing.T) {
	e := New(0x1122334455667788)
	limbs := e.RawU16s()
	want := [4]uint16{0x7788, 0x5566, 0x3344, 0x1122}
	if limbs != want {
		t.Fatalf("RawU16s = %v, want %v", limbs, want)
	}
	back, err := FromRawU16s(limbs)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(e) {
		t.Fatal("u16 round trip lost the element")
	}

	for _, e := range randomElements(t, 32) {
		back, err := FromRawU16s(e.RawU16s())
		if err != nil || !back.Equal(e) {
			t.Fatalf("u16 round trip lost %v: %v", e, err)
		}
	}
}

func TestFromRawU16sRejectsNonCanonical(t *testing.T) {
	// 0xFFFF FFFF 0000 0001 little-endian limbs encode exactly P.
	limbs := [4]uint16{0x0001, 0x0000, 0xFFFF, 0xFFFF}
	if _, err := FromRawU16s(limbs); !errors.Is(err, ErrNotCanonical) {
		t.Errorf("error = %v, want ErrNotCanonical", err)
	}
}

func TestBinaryMarshaler(t *testing.T) {
	e := New(123456789123456789)
	data, err := e.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	var back Element
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(e) {
		t.Fatal("binary round trip lost the element")
	}

	if err := back.UnmarshalBinary(data[:7]); err == nil {
		t.Error("short input accepted")
	}
}
