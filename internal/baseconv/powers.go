// Copyright 2024 The go-passwordmaker Authors
// License: MIT
//

package baseconv

// The first digit of a conversion is value / base^E, with E the largest
// exponent whose power still fits the digest width. Finding that power costs
// up to ~250 multiplications for small bases, so the common bases are computed
// once up front. Anything outside the cache falls back to the direct
// computation.

const (
	cacheLowestBase = 2
	cacheSize       = 128
)

type cachedPower struct {
	power  nat
	digits int
}

var (
	powerCache5 [cacheSize]cachedPower
	powerCache8 [cacheSize]cachedPower
)

func init() {
	for i := range powerCache5 {
		base := uint64(cacheLowestBase + i)
		p5, d5 := maxPowerCompute(base, 5)
		powerCache5[i] = cachedPower{p5, d5}
		p8, d8 := maxPowerCompute(base, 8)
		powerCache8[i] = cachedPower{p8, d8}
	}
}

// maxPower returns base^E for the largest E such that the power fits in the
// given limb count, along with the digit count E+1 of the full conversion.
// The returned power is freshly allocated and safe to mutate.
func maxPower(base uint64, limbs int) (nat, int) {
	if base >= cacheLowestBase && base < cacheLowestBase+cacheSize {
		var c cachedPower
		switch limbs {
		case 5:
			c = powerCache5[base-cacheLowestBase]
		case 8:
			c = powerCache8[base-cacheLowestBase]
		}
		if c.power != nil {
			return c.power.clone(), c.digits
		}
	}
	return maxPowerCompute(base, limbs)
}

func maxPowerCompute(base uint64, limbs int) (nat, int) {
	p := natFromWord(base, limbs)
	digits := 2
	for {
		next, ok := p.mulWord(base)
		if !ok {
			return p, digits
		}
		p = next
		digits++
	}
}

func maxPower128(base uint64) (uint128, int) {
	p := uint128{0, base}
	digits := 2
	for {
		next, ok := p.mulChecked(base)
		if !ok {
			return p, digits
		}
		p = next
		digits++
	}
}
