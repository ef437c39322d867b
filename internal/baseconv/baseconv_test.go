package baseconv

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(s *Stream) []uint64 {
	out := make([]uint64, 0, s.Len())
	for {
		d, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, d)
	}
}

func skipZeros(digits []uint64) []uint64 {
	for i, d := range digits {
		if d != 0 {
			return digits[i:]
		}
	}
	return nil
}

func u128Digest(v uint64) []byte {
	b := make([]byte, 16)
	for i := 15; v != 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}

func TestStreamHex(t *testing.T) {
	s := New(u128Digest(12345678), 16)
	require.Equal(t, 32, s.Len())
	digits := collect(s)
	assert.Len(t, digits, 32)
	assert.Equal(t, []uint64{0xb, 0xc, 6, 1, 4, 0xe}, skipZeros(digits))
}

func TestStreamBase17(t *testing.T) {
	s := New(u128Digest(1234567890123456789), 17)
	require.Equal(t, 32, s.Len())
	digits := collect(s)
	assert.Equal(t, []uint64{7, 5, 0xa, 0x10, 0xc, 0xc, 3, 0xd, 3, 0xa, 3, 8, 4, 8, 3}, skipZeros(digits))
}

// The streamed digits, read back as a number, must reproduce the digest for
// every width and base.
func TestStreamRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	bases := []uint64{2, 3, 16, 52, 94, 129, 130, 1000003}
	for _, width := range []int{16, 20, 32} {
		for _, base := range bases {
			for round := 0; round < 50; round++ {
				digest := make([]byte, width)
				rng.Read(digest)
				if round == 0 {
					digest[0] = 0 // a leading zero digit for all but the largest bases
				}

				s := New(digest, base)
				total := s.Len()
				digits := collect(s)
				require.Len(t, digits, total)

				got := new(big.Int)
				bigBase := new(big.Int).SetUint64(base)
				for _, d := range digits {
					require.Less(t, d, base)
					got.Mul(got, bigBase)
					got.Add(got, new(big.Int).SetUint64(d))
				}
				want := new(big.Int).SetBytes(digest)
				require.Equal(t, want.String(), got.String(),
					"width %d base %d digest %x", width, base, digest)
			}
		}
	}
}

// The digit count is fixed by base and digest width alone, never by the value.
func TestStreamLenConstantPerBase(t *testing.T) {
	zero := make([]byte, 20)
	ones := make([]byte, 20)
	for i := range ones {
		ones[i] = 0xff
	}
	for _, base := range []uint64{2, 16, 94} {
		assert.Equal(t, New(zero, base).Len(), New(ones, base).Len(), "base %d", base)
	}
}

func TestPowerCacheMatchesDirect(t *testing.T) {
	for base := uint64(2); base < 200; base++ {
		for _, limbs := range []int{5, 8} {
			gotP, gotD := maxPower(base, limbs)
			wantP, wantD := maxPowerCompute(base, limbs)
			require.Equal(t, wantD, gotD, "base %d limbs %d", base, limbs)
			require.Equal(t, wantP, gotP, "base %d limbs %d", base, limbs)
		}
	}
}

// base^E must fit while base^(E+1) must not, and E+1 is the digit count.
func TestMaxPowerBounds(t *testing.T) {
	for base := uint64(2); base < 2+cacheSize; base++ {
		for _, limbs := range []int{5, 8} {
			power, digits := maxPower(base, limbs)
			_, ok := power.mulWord(base)
			require.False(t, ok, "base %d limbs %d: power*base must overflow", base, limbs)

			// dividing exponent times ends at exactly 1
			p := power.clone()
			for i := 0; i < digits-1; i++ {
				require.Equal(t, uint64(0), p.divWord(base), "base %d limbs %d", base, limbs)
			}
			one, ok := p.word()
			require.True(t, ok)
			require.Equal(t, uint64(1), one, "base %d limbs %d", base, limbs)
		}
	}
}

func TestMaxPower128Bounds(t *testing.T) {
	for _, base := range []uint64{2, 16, 17, 94, 255, 1 << 32} {
		power, digits := maxPower128(base)
		_, ok := power.mulChecked(base)
		assert.False(t, ok, "base %d", base)

		p := power
		for i := 0; i < digits-1; i++ {
			var r uint64
			p, r = p.quoRem64(base)
			require.Equal(t, uint64(0), r, "base %d", base)
		}
		assert.Equal(t, uint128{0, 1}, p, "base %d", base)
	}
}

func TestStreamRejectsTinyBase(t *testing.T) {
	assert.Panics(t, func() { New(make([]byte, 16), 1) })
	assert.Panics(t, func() { New(make([]byte, 20), 0) })
}
