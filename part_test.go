package passwordmaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDerivative(t *testing.T) {
	assert.Equal(t, "master", keyDerivative("master", 0))
	assert.Equal(t, "master\n1", keyDerivative("master", 1))
	assert.Equal(t, "master\n12", keyDerivative("master", 12))
}

func TestYeetUpperBytes(t *testing.T) {
	// BMP characters lose their high byte
	assert.Equal(t, []byte{0xac, 0xe4, 0xdf}, yeetUpperBytes("€äß"))
	// ASCII is untouched
	assert.Equal(t, []byte("a01"), yeetUpperBytes("a01"))
	// astral characters stay two UTF-16 code units: U+1D11E is D834 DD1E
	assert.Equal(t, []byte{0x34, 0x1e}, yeetUpperBytes("\U0001D11E"))
}

// Pre-leet on an HMAC algorithm leets key and data separately; on a plain
// algorithm it leets their concatenation. The two must not be conflated.
func TestPreLeetScope(t *testing.T) {
	settings := Settings{
		Algorithm:      HMACMD5,
		UseLeet:        LeetBefore,
		LeetLevel:      LeetLevelTwo,
		Characters:     "0123456789abcdef",
		PasswordLength: 16,
	}
	hmacPwm, err := New(settings)
	require.NoError(t, err)

	// Leet level two maps s->5 and i->1: hashing key "si" and data "is"
	// must behave as hmac("51", "15"), not as anything concatenated.
	got, err := hmacPwm.Generate("is", "si")
	require.NoError(t, err)

	plain, err := New(Settings{
		Algorithm:      HMACMD5,
		Characters:     "0123456789abcdef",
		PasswordLength: 16,
	})
	require.NoError(t, err)
	want, err := plain.Generate("15", "51")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestV06PartIsAlwaysPadded(t *testing.T) {
	pwm, err := New(Settings{
		Algorithm:      MD5V06,
		Characters:     "ab",
		PasswordLength: 1,
	})
	require.NoError(t, err)

	// md5("a01") starts with a zero byte; the part keeps its leading zeros
	// and is exactly 32 digits long.
	part := pwm.part("01", "a", 0)
	require.Len(t, part, 32)
	assert.Equal(t, []string{"0", "0", "d", "2"}, part[:4])
}

func TestModernPartDropsLeadingZeros(t *testing.T) {
	pwm, err := New(Settings{
		Algorithm:      MD5,
		Characters:     "0123456789abcdef",
		PasswordLength: 1,
	})
	require.NoError(t, err)

	part := pwm.part("01", "a", 0)
	require.NotEmpty(t, part)
	assert.Equal(t, "d", part[0])
	assert.Len(t, part, 30) // two leading zero digits dropped
}

func TestGraphemes(t *testing.T) {
	assert.Nil(t, graphemes(""))
	assert.Equal(t, []string{"a", "b"}, graphemes("ab"))
	// combining mark and emoji modifier sequences stay whole
	assert.Equal(t, []string{"é", "👍🏽"}, graphemes("é👍🏽"))
	assert.Equal(t, 2, graphemeCount("é👍🏽"))
}
