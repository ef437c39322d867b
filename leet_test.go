package passwordmaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The upper case Ö is wrong, but it is there to test a property.
const icelandicInput = "Kæmi ný Öxi hér, ykist þjófum nú bæði víl og ádrepa."

var icelandicLeeted = map[LeetLevel]string{
	LeetLevelOne:   "kæmi ný öxi hér, ykis7 þjófum nú bæði ví1 0g ádr3p4.",
	LeetLevelTwo:   "kæm1 ný öx1 hér, yk157 þjófum nú bæð1 ví1 0g ádr3p4.",
	LeetLevelThree: "kæm' ný öx' hér, '/k'57 þjófum nú 8æð' ví1 06 ádr3p4.",
	LeetLevelFour:  "kæm' ný öx' hér, '/k'57 þjófum nú 8æð' ví1 06 ádr3p@.",
	LeetLevelFive:  "|<æm! ný öx! #é|2, '/|<!$7 þ7ófum nú |3æð! \\/í1 06 ád|23|>@.",
	LeetLevelSix:   "|<æm! ný öx! #é|2, '/|<!$7 þ,|ó|=um nú |3æð! \\/í1 06 á|)|2&|>@.",
	LeetLevelSeven: "|<æ^^! ^/ý ö><! #é|2, '/|<!57 þ,|ó|=(_)^^ ^/ú |3æð! \\/í1 06 á|)|2&|*@.",
	LeetLevelEight: "|(æ|\\/|! |\\|ý ö)(! |-|é|2, '/|(!$| þ_|ó|=|_||\\/| |\\|ú 8æð! \\/í1 ()6 á|)|2&|>@.",
	LeetLevelNine:  "|{æ/\\/\\! |\\|ý ö)(! |-|é|2, '/|{!$| þ_|ó|=|_|/\\/\\ |\\|ú 8æð! \\/í|_ ()6 á|)|2&|>@.",
}

func TestLeetifyIcelandic(t *testing.T) {
	for level, want := range icelandicLeeted {
		table, err := level.table()
		require.NoError(t, err)
		assert.Equal(t, want, table.leetify(icelandicInput), "level %d", level)
	}
}

// Greek text exercises the case folding, including the word-final sigma. No
// level substitutes anything here: the input has no ASCII letters.
func TestLeetifyGreek(t *testing.T) {
	const input = "ΕΤΥΜΟΛΟΓΙΚΌ ΛΕΞΙΚΌ ΤΗΣ ΕΛΛΗΝΙΚΉΣ ΓΛΏΣΣΑΣ"
	const want = "ετυμολογικό λεξικό της ελληνικής γλώσσας"
	for level := LeetLevelOne; level <= LeetLevelNine; level++ {
		table, err := level.table()
		require.NoError(t, err)
		assert.Equal(t, want, table.leetify(input), "level %d", level)
	}
}

func TestLeetifyIdempotentOnASCII(t *testing.T) {
	const input = "Sphinx of black quartz, judge my vow! 0123456789"
	for level := LeetLevelFour; level <= LeetLevelNine; level++ {
		table, err := level.table()
		require.NoError(t, err)
		once := table.leetify(input)
		assert.Equal(t, once, table.leetify(once), "level %d", level)
	}
}

func TestLeetTableShapes(t *testing.T) {
	for i, table := range leetTables {
		for letter, replacement := range table {
			assert.NotEmpty(t, replacement, "level %d letter %c", i+1, 'a'+letter)
			assert.LessOrEqual(t, len(replacement), 4, "level %d letter %c", i+1, 'a'+letter)
		}
	}
}

func TestLeetLevelValidation(t *testing.T) {
	for level := LeetLevelOne; level <= LeetLevelNine; level++ {
		_, err := level.table()
		assert.NoError(t, err)
	}
	_, err := LeetLevel(0).table()
	assert.Error(t, err)
	_, err = LeetLevel(10).table()
	assert.Error(t, err)
}
