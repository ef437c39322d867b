// Copyright 2024 The go-passwordmaker Authors
// License: MIT
//

package passwordmaker

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LeetUsage selects when leet substitution is applied: to the hash input, to
// each hashed part, to both, or not at all. Substitution always works on
// whole password parts: a part ending in an upper-case sigma lower-cases
// differently than the same characters mid-string would.
type LeetUsage int

const (
	LeetNotAtAll LeetUsage = iota
	LeetBefore
	LeetAfter
	LeetBeforeAndAfter
)

// LeetLevel selects the replacement table. The higher the level, the more
// obfuscated the result.
type LeetLevel int

const (
	LeetLevelOne LeetLevel = iota + 1
	LeetLevelTwo
	LeetLevelThree
	LeetLevelFour
	LeetLevelFive
	LeetLevelSix
	LeetLevelSeven
	LeetLevelEight
	LeetLevelNine
)

// leetTable maps the 26 ASCII lower-case letters to their replacements.
type leetTable [26]string

var leetTables = [9]leetTable{
	{"4", "b", "c", "d", "3", "f", "g", "h", "i", "j", "k", "1", "m", "n", "0", "p", "9", "r", "s", "7", "u", "v", "w", "x", "y", "z"},
	{"4", "b", "c", "d", "3", "f", "g", "h", "1", "j", "k", "1", "m", "n", "0", "p", "9", "r", "5", "7", "u", "v", "w", "x", "y", "2"},
	{"4", "8", "c", "d", "3", "f", "6", "h", "'", "j", "k", "1", "m", "n", "0", "p", "9", "r", "5", "7", "u", "v", "w", "x", "'/", "2"},
	{"@", "8", "c", "d", "3", "f", "6", "h", "'", "j", "k", "1", "m", "n", "0", "p", "9", "r", "5", "7", "u", "v", "w", "x", "'/", "2"},
	{"@", "|3", "c", "d", "3", "f", "6", "#", "!", "7", "|<", "1", "m", "n", "0", "|>", "9", "|2", "$", "7", "u", "\\/", "w", "x", "'/", "2"},
	{"@", "|3", "c", "|)", "&", "|=", "6", "#", "!", ",|", "|<", "1", "m", "n", "0", "|>", "9", "|2", "$", "7", "u", "\\/", "w", "x", "'/", "2"},
	{"@", "|3", "[", "|)", "&", "|=", "6", "#", "!", ",|", "|<", "1", "^^", "^/", "0", "|*", "9", "|2", "5", "7", "(_)", "\\/", "\\/\\/", "><", "'/", "2"},
	{"@", "8", "(", "|)", "&", "|=", "6", "|-|", "!", "_|", "|(", "1", "|\\/|", "|\\|", "()", "|>", "(,)", "|2", "$", "|", "|_|", "\\/", "\\^/", ")(", "'/", "\"/_"},
	{"@", "8", "(", "|)", "&", "|=", "6", "|-|", "!", "_|", "|{", "|_", "/\\/\\", "|\\|", "()", "|>", "(,)", "|2", "$", "|", "|_|", "\\/", "\\^/", ")(", "'/", "\"/_"},
}

func (l LeetLevel) table() (*leetTable, error) {
	if l < LeetLevelOne || l > LeetLevelNine {
		return nil, fmt.Errorf("passwordmaker: invalid leet level %d", l)
	}
	return &leetTables[l-1], nil
}

// leetify lower-cases the input and substitutes every ASCII letter with its
// table entry. Lower-casing runs over the whole string with the full Unicode
// mapping: the final-sigma rule must see the character's context, and
// per-character folding would get it wrong.
func (t *leetTable) leetify(input string) string {
	lowered := cases.Lower(language.Und).String(input)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if r >= 'a' && r <= 'z' {
			b.WriteString(t[r-'a'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
