// Package xorshift is a small 16-bit xorshift generator used to wobble the
// clock face strokes a little on every redraw.
package xorshift

import "time"

// DefaultSeed replaces a zero seed, which would lock the generator at zero.
const DefaultSeed uint16 = 0xace1

// Source is not safe for concurrent use.
type Source struct {
	state uint16
}

func New(seed uint16) *Source {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Source{state: seed}
}

// Next advances the state and returns it. The 7/9/8 triple walks all 65535
// nonzero states before repeating.
func (s *Source) Next() uint16 {
	x := s.state
	x ^= x << 7
	x ^= x >> 9
	x ^= x << 8
	s.state = x
	return x
}

func (s *Source) State() uint16 {
	return s.state
}

// Offset slices a two bit field out of r at shift and maps it to -1, 0 or +1.
func Offset(r uint16, shift uint) int {
	return int((r>>shift)%3) - 1
}

// SeedFromTime folds a wall clock into a nonzero seed.
func SeedFromTime(t time.Time) uint16 {
	n := uint64(t.UnixNano())
	seed := uint16(n) ^ uint16(n>>16) ^ uint16(n>>32) ^ uint16(n>>48)
	if seed == 0 {
		return DefaultSeed
	}
	return seed
}
