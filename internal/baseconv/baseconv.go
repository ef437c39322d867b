// Copyright 2024 The go-passwordmaker Authors
// License: MIT
//

// Package baseconv converts fixed-width big-endian digests into digit streams
// of an arbitrary base, most significant digit first.
//
// The digit count of a stream is fixed up front: a digest of W bits always
// yields E+1 digits, with E the largest exponent such that base^E fits in W
// bits. Leading zero digits are produced explicitly; it is up to the caller to
// skip or keep them.
package baseconv

// A Stream yields the base-b digits of a digest, most significant first.
type Stream struct {
	remaining int
	base      uint64
	big       *bigState
	small     *smallState
}

type bigState struct {
	value nat
	power nat
}

type smallState struct {
	value uint128
	power uint128
}

// New interprets digest as a big-endian unsigned integer and returns its
// digit stream in the given base. 16-byte digests run on a 128-bit fast path;
// wider digests use 32-bit limb arithmetic. The base must be at least 2.
func New(digest []byte, base uint64) *Stream {
	if base < 2 {
		panic("baseconv: base must be at least 2")
	}
	if len(digest) == 16 {
		power, digits := maxPower128(base)
		return &Stream{
			remaining: digits,
			base:      base,
			small:     &smallState{value: u128FromBytes(digest), power: power},
		}
	}
	limbs := len(digest) / 4
	power, digits := maxPower(base, limbs)
	return &Stream{
		remaining: digits,
		base:      base,
		big:       &bigState{value: natFromBytes(digest), power: power},
	}
}

// Len returns the number of digits not yet emitted.
func (s *Stream) Len() int {
	return s.remaining
}

// Next emits the next digit, dividing the running value by the current power
// of the base and stepping the power down. It returns false once all digits
// have been emitted.
func (s *Stream) Next() (uint64, bool) {
	if s.remaining == 0 {
		return 0, false
	}
	s.remaining--
	if s.small != nil {
		q, r := s.small.value.quoRem(s.small.power)
		s.small.value = r
		s.small.power, _ = s.small.power.quoRem64(s.base)
		return q.lo, true
	}
	q, r := s.big.value.divMod(s.big.power)
	s.big.value = r
	s.big.power.divWord(s.base)
	digit, _ := q.word()
	return digit, true
}
