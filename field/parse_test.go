package field

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want uint64
	}{
		{"zero", "0", 0},
		{"plain", "42", 42},
		{"plus sign", "+42", 42},
		{"minus one", "-1", P - 1},
		{"negative", "-1000", P - 1000},
		{"max", "18446744069414584320", P - 1},
		{"whitespace", "  123  ", 123},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got := e.Value(); got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexLiterals(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want uint64
	}{
		{"lowercase prefix", "0x2A", 42},
		{"uppercase prefix", "0X2a", 42},
		{"p minus one", "0xFFFFFFFF00000000", P - 1},
		{"exactly p reduces to zero", "0xFFFFFFFF00000001", 0},
		{"124-bit value reduces", "0x" + strings.Repeat("f", 31), 18446744069146148864},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got := e.Value(); got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}

	// A 127-bit hex literal reduces mod P like FromUint128.
	e, err := ParseHex("7fffffffffffffffffffffffffffffff")
	if err != nil {
		t.Fatal(err)
	}
	want := FromUint128(0x7FFFFFFFFFFFFFFF, ^uint64(0))
	if !e.Equal(want) {
		t.Errorf("127-bit hex = %d, want %d", e.Value(), want.Value())
	}
}

func TestParseRejections(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrInvalidDigit},
		{"sign only", "-", ErrInvalidDigit},
		{"letters", "12a4", ErrInvalidDigit},
		{"exactly p", "18446744069414584321", ErrOutOfRange},
		{"negative p", "-18446744069414584321", ErrOutOfRange},
		{"forty digits", strings.Repeat("9", 40), ErrParseOverflow},
		{"hex junk", "0x12g4", ErrInvalidHexChar},
		{"empty hex", "0x", ErrInvalidHexChar},
		{"128-bit hex", "0x" + strings.Repeat("f", 32), ErrParseOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.in); !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   Element
		want string
	}{
		{"zero", Zero, "0"},
		{"small", New(256), "256"},
		{"negative one", New(P - 1), "-1"},
		{"negative window", New(P - 256), "-256"},
		{"first padded", New(257), "00000000000000000257"},
		{"mid range", New(P / 2), "09223372034707292160"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDisplayRoundTrip(t *testing.T) {
	for _, e := range randomElements(t, 32) {
		back, err := Parse(e.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", e.String(), err)
		}
		if !back.Equal(e) {
			t.Fatalf("display round trip lost %v", e)
		}
	}
}

func TestHex(t *testing.T) {
	if got := New(42).Hex(); got != "2a" {
		t.Errorf("Hex(42) = %q, want %q", got, "2a")
	}
}
