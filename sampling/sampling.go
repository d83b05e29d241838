// Package sampling draws uniformly random Goldilocks field elements, either
// deterministically from a seed plus a domain-separation label or from OS
// entropy.
//
// Seeds are stretched through blake3 into a key for a keyed PRNG, so distinct
// labels over the same seed give independent streams. Draws use rejection
// sampling on 64-bit reads, which keeps the distribution exactly uniform over
// the field.
package sampling

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/luxfi/lattice/v7/utils/sampling"
	"github.com/zeebo/blake3"

	"github.com/luxfi/goldilocks/cubic"
	"github.com/luxfi/goldilocks/field"
)

const keySize = 32

// Source is a stream of uniformly random field elements. It is not safe for
// concurrent use.
type Source struct {
	prng sampling.PRNG
}

// NewSource derives a deterministic element stream from seed and a
// domain-separation label.
func NewSource(seed []byte, domain string) (*Source, error) {
	hasher := blake3.New()
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.BigEndian, seed); err != nil {
		return nil, fmt.Errorf("writing seed: %w", err)
	}
	if _, err := buf.WriteString(domain); err != nil {
		return nil, fmt.Errorf("writing domain: %w", err)
	}
	if _, err := hasher.Write(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("hashing seed material: %w", err)
	}

	key := hasher.Sum(nil)
	prng, err := sampling.NewKeyedPRNG(key[:keySize])
	if err != nil {
		return nil, fmt.Errorf("creating keyed prng: %w", err)
	}
	return &Source{prng: prng}, nil
}

// NewRandomSource builds an element stream keyed from OS entropy.
func NewRandomSource() (*Source, error) {
	prng, err := sampling.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("creating prng: %w", err)
	}
	return &Source{prng: prng}, nil
}

// Element draws one uniformly random base field element.
func (s *Source) Element() (field.Element, error) {
	var raw [8]byte
	for {
		if _, err := s.prng.Read(raw[:]); err != nil {
			return field.Zero, fmt.Errorf("reading prng: %w", err)
		}
		v := binary.LittleEndian.Uint64(raw[:])
		if v < field.P {
			return field.New(v), nil
		}
		// Reject and redraw; at most one in 2^32 draws lands here.
	}
}

// Elements fills a fresh slice with n uniformly random base field elements.
func (s *Source) Elements(n int) ([]field.Element, error) {
	out := make([]field.Element, n)
	for i := range out {
		e, err := s.Element()
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// NonZeroElement draws a uniformly random non-zero base field element.
func (s *Source) NonZeroElement() (field.Element, error) {
	for {
		e, err := s.Element()
		if err != nil {
			return field.Zero, err
		}
		if !e.IsZero() {
			return e, nil
		}
	}
}

// CubicElement draws one uniformly random extension field element.
func (s *Source) CubicElement() (cubic.Element, error) {
	c0, err := s.Element()
	if err != nil {
		return cubic.Zero, err
	}
	c1, err := s.Element()
	if err != nil {
		return cubic.Zero, err
	}
	c2, err := s.Element()
	if err != nil {
		return cubic.Zero, err
	}
	return cubic.New(c0, c1, c2), nil
}

// CubicElements fills a fresh slice with n uniformly random extension
// elements.
func (s *Source) CubicElements(n int) ([]cubic.Element, error) {
	out := make([]cubic.Element, n)
	for i := range out {
		e, err := s.CubicElement()
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
