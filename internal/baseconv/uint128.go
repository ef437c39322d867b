// Copyright 2024 The go-passwordmaker Authors
// License: MIT
//

package baseconv

import (
	"encoding/binary"
	"math/bits"
)

// uint128 is the specialization used for 16-byte digests. It behaves exactly
// like the limb-based representation, just over native words.
type uint128 struct {
	hi, lo uint64
}

func u128FromBytes(b []byte) uint128 {
	return uint128{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

func (u uint128) cmp(v uint128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	}
	return 0
}

func (u uint128) sub(v uint128) uint128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return uint128{hi, lo}
}

func (u uint128) shl(n uint) uint128 {
	if n >= 64 {
		return uint128{u.lo << (n - 64), 0}
	}
	return uint128{u.hi<<n | u.lo>>(64-n), u.lo << n}
}

func (u uint128) shr(n uint) uint128 {
	if n >= 64 {
		return uint128{0, u.hi >> (n - 64)}
	}
	return uint128{u.hi >> n, u.lo>>n | u.hi<<(64-n)}
}

// mul64 returns u*k, wrapping on overflow.
func (u uint128) mul64(k uint64) uint128 {
	hi, lo := bits.Mul64(u.lo, k)
	return uint128{hi + u.hi*k, lo}
}

// mulChecked returns u*k, or false if the product does not fit in 128 bits.
func (u uint128) mulChecked(k uint64) (uint128, bool) {
	hi, lo := bits.Mul64(u.lo, k)
	hi2, lo2 := bits.Mul64(u.hi, k)
	if hi2 != 0 {
		return uint128{}, false
	}
	sum, carry := bits.Add64(hi, lo2, 0)
	if carry != 0 {
		return uint128{}, false
	}
	return uint128{sum, lo}, true
}

// quoRem64 returns u/d and u%d for a 64-bit divisor.
func (u uint128) quoRem64(d uint64) (uint128, uint64) {
	if u.hi < d {
		lo, r := bits.Div64(u.hi, u.lo, d)
		return uint128{0, lo}, r
	}
	hi := u.hi / d
	lo, r := bits.Div64(u.hi%d, u.lo, d)
	return uint128{hi, lo}, r
}

// quoRem returns u/v and u%v. For wide divisors it forms a trial quotient
// from the normalized high words, guaranteed within one of the true quotient,
// then adjusts.
func (u uint128) quoRem(v uint128) (q, r uint128) {
	if v.hi == 0 {
		q, r64 := u.quoRem64(v.lo)
		return q, uint128{0, r64}
	}
	n := uint(bits.LeadingZeros64(v.hi))
	v1 := v.shl(n)
	u1 := u.shr(1)
	tq, _ := bits.Div64(u1.hi, u1.lo, v1.hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}
	q = uint128{0, tq}
	r = u.sub(v.mul64(tq))
	if r.cmp(v) >= 0 {
		q.lo++
		r = r.sub(v)
	}
	return q, r
}
