// Copyright 2024 The go-passwordmaker Authors
// License: MIT
//

package baseconv

import (
	"encoding/binary"
	"math/bits"
)

// nat is an unsigned integer stored as 32-bit limbs in big-endian limb order.
// Leading zero limbs are allowed and carry no meaning. The two widths used by
// the conversion code are 5 limbs (20-byte digests) and 8 limbs (32-byte
// digests); 16-byte digests take the uint128 fast path instead.
type nat []uint32

func natFromBytes(b []byte) nat {
	x := make(nat, len(b)/4)
	for i := range x {
		x[i] = binary.BigEndian.Uint32(b[i*4:])
	}
	return x
}

func natFromWord(w uint64, n int) nat {
	x := make(nat, n)
	x[n-2] = uint32(w >> 32)
	x[n-1] = uint32(w)
	return x
}

func (x nat) clone() nat {
	y := make(nat, len(x))
	copy(y, x)
	return y
}

func (x nat) isZero() bool {
	for _, l := range x {
		if l != 0 {
			return false
		}
	}
	return true
}

// cmp compares two equal-width values.
func (x nat) cmp(y nat) int {
	for i := range x {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// word reports the value of x if it fits in a uint64.
func (x nat) word() (uint64, bool) {
	for _, l := range x[:len(x)-2] {
		if l != 0 {
			return 0, false
		}
	}
	return uint64(x[len(x)-2])<<32 | uint64(x[len(x)-1]), true
}

// leadingZeros counts the leading zero limbs.
func (x nat) leadingZeros() int {
	for i, l := range x {
		if l != 0 {
			return i
		}
	}
	return len(x)
}

func (x nat) digitFromRight(i int) uint32 {
	return x[len(x)-1-i]
}

func (x nat) setDigitFromRight(v uint32, i int) {
	x[len(x)-1-i] = v
}

// divWord replaces x with x/d and returns the remainder. Plain long division,
// streaming limbs MSB to LSB with the running remainder as the high part of a
// two-limb dividend. d must be nonzero.
func (x nat) divWord(d uint64) uint64 {
	var rem uint64
	for i := range x {
		hi := rem >> 32
		lo := rem<<32 | uint64(x[i])
		q, r := bits.Div64(hi, lo, d)
		x[i] = uint32(q)
		rem = r
	}
	return rem
}

// mulWord returns x*k, or false if the product does not fit in len(x) limbs.
func (x nat) mulWord(k uint64) (nat, bool) {
	out := make(nat, len(x))
	var carry uint64
	for i := len(x) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(uint64(x[i]), k)
		lo, c := bits.Add64(lo, carry, 0)
		hi += c
		out[i] = uint32(lo)
		carry = hi<<32 | lo>>32
	}
	return out, carry == 0
}

// shiftLeft returns x<<s widened by one limb. s must be below 32.
func (x nat) shiftLeft(s uint) nat {
	out := make(nat, len(x)+1)
	if s == 0 {
		copy(out[1:], x)
		return out
	}
	out[0] = x[0] >> (32 - s)
	for i := 1; i <= len(x); i++ {
		var next uint32
		if i < len(x) {
			next = x[i]
		}
		out[i] = x[i-1]<<s | next>>(32-s)
	}
	return out
}

// shiftRight shifts x in place and returns it. s must be below 32.
func (x nat) shiftRight(s uint) nat {
	if s != 0 {
		var carry uint32
		for i := range x {
			c := x[i] << (32 - s)
			x[i] = x[i]>>s | carry
			carry = c
		}
	}
	return x
}

// subAssign computes a -= b limbwise and reports whether the subtraction
// wrapped. Slices must have equal length.
func subAssign(a, b []uint32) bool {
	var borrow uint32
	for i := len(a) - 1; i >= 0; i-- {
		bb, c1 := bits.Add32(b[i], borrow, 0)
		d, c2 := bits.Sub32(a[i], bb, 0)
		a[i] = d
		borrow = c1 | c2
	}
	return borrow != 0
}

// addAssign computes a += b limbwise and reports whether the addition wrapped.
func addAssign(a, b []uint32) bool {
	var carry uint32
	for i := len(a) - 1; i >= 0; i-- {
		bb, c1 := bits.Add32(b[i], carry, 0)
		s, c2 := bits.Add32(a[i], bb, 0)
		a[i] = s
		carry = c1 | c2
	}
	return carry != 0
}

// divMod returns the quotient and remainder of x/d. Both results have the
// width of x; neither input is modified. d must be nonzero.
func (x nat) divMod(d nat) (q, r nat) {
	switch x.cmp(d) {
	case -1:
		return make(nat, len(x)), x.clone()
	case 0:
		return natFromWord(1, len(x)), make(nat, len(x))
	}
	if w, ok := d.word(); ok {
		q = x.clone()
		rem := q.divWord(w)
		return q, natFromWord(rem, len(x))
	}
	return x.divModKnuth(d)
}

// divModKnuth is Knuth, The Art of Computer Programming Volume 2, Section
// 4.3.1, Algorithm D. Only reached when the divisor spans three or more limbs,
// so the two-limb guess digits below always exist.
func (x nat) divModKnuth(d nat) (nat, nat) {
	n := len(d) - d.leadingZeros()
	m := len(x) - x.leadingZeros() - n

	// D1: normalize so the divisor's most significant limb has its top bit
	// set. That bounds the per-digit guess error to at most 2. The dividend
	// widens by one limb.
	shift := uint(bits.LeadingZeros32(d.digitFromRight(n - 1)))
	u := x.shiftLeft(shift)
	v := d.shiftLeft(shift)

	q := make(nat, len(x))
	vHigh := uint64(v.digitFromRight(n - 1))
	vNext := uint64(v.digitFromRight(n - 2))
	padded := len(u)
	sStart := padded - 1 - n

	// D2..D7: one quotient digit per round, MSB to LSB.
	for j := m; j >= 0; j-- {
		// D3: guess a digit from the top two dividend limbs, then refine
		// against the third limb until the error is 0 or +1.
		guessDividend := uint64(u.digitFromRight(j+n))<<32 | uint64(u.digitFromRight(j+n-1))
		qhat := guessDividend / vHigh
		rhat := guessDividend % vHigh
		for rhat <= 0xffffffff &&
			(qhat > 0xffffffff ||
				vNext*qhat > rhat<<32|uint64(u.digitFromRight(j+n-2))) {
			qhat--
			rhat += vHigh
		}

		// D4: subtract qhat*divisor from the active dividend window.
		s, _ := v.mulWord(qhat)
		wrapped := subAssign(u[sStart-j:padded-j], s[sStart:padded])
		if wrapped {
			// D6: the guess was one too large. Add one divisor back; the
			// second wrap cancels the first.
			qhat--
			addAssign(u[sStart-j:padded-j], v[sStart:padded])
		}
		q.setDigitFromRight(uint32(qhat), j)
	}

	// D8: denormalize the remainder.
	r := u.shiftRight(shift)[1:]
	return q, r
}
