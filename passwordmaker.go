// passwordmaker.go - golang implementation of the PasswordMaker Pro algorithm
//
// Copyright 2024 The go-passwordmaker Authors
// License: MIT
//

// Package passwordmaker implements the PasswordMaker Pro password derivation
// algorithm. It is bit-exact compatible with the JavaScript edition, including
// its historical quirks.
//
// A password is derived deterministically from a piece of text to use
// (typically a URL or part of one), a master password, and a set of settings
// that is validated once and reused for any number of derivations:
//
//	pwm, err := passwordmaker.New(passwordmaker.Settings{
//		Algorithm:      passwordmaker.MD5,
//		Characters:     "abcdefghijklmnopqrstuvwxyz0123456789",
//		PasswordLength: 12,
//	})
//	...
//	password, err := pwm.Generate("example.com", masterPassword)
//
// For each derivation the text, username and modifier are concatenated and
// hashed together with the master password (or fed through an HMAC keyed by
// it). The digest, read as a big-endian unsigned integer, is converted to the
// number system whose base is the size of the output character set; each digit
// selects one character. If one digest does not yield enough characters, the
// hash is repeated with "\n1", "\n2", ... appended to the master password, and
// the resulting parts are concatenated until the requested length is reached.
//
// The character set is a sequence of Unicode extended grapheme clusters, not
// bytes or code points, so multi-code-point characters count as one output
// character. Optional leet speak substitution can be applied to the hash
// inputs, the hashed output, or both; leet lower-cases its input with the full
// Unicode mapping first, so a Greek capital sigma at the end of a password
// part becomes a final sigma, exactly as in the JavaScript edition.
//
// The Version 0.6 algorithm variants reproduce two bugs of that release: the
// hash input is converted to UTF-16 and the upper byte of every code unit is
// discarded, and the output is always hexadecimal regardless of the
// configured character set.
package passwordmaker

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported for unusable inputs. Everything else that can go wrong is a
// settings mistake and is reported by New.
var (
	// ErrMissingTextToUse is returned by Generate when the text to use is
	// empty. Deriving from the master password alone is never intended.
	ErrMissingTextToUse = errors.New("passwordmaker: no text to use")
	// ErrMissingMasterPassword is returned by Generate when the master
	// password is empty.
	ErrMissingMasterPassword = errors.New("passwordmaker: no master password given")
	// ErrInsufficientCharset is returned by New when the character set has
	// fewer than two grapheme clusters. The output is computed by a base
	// conversion, and there is no base-1 or base-0 number system.
	ErrInsufficientCharset = errors.New("passwordmaker: character set needs at least 2 grapheme clusters")
)

// Settings holds the knobs of a password derivation, matching the fields of
// the PasswordMaker Pro account settings.
type Settings struct {
	Algorithm  HashAlgorithm
	UseLeet    LeetUsage
	LeetLevel  LeetLevel // required unless UseLeet is LeetNotAtAll
	Characters string    // output character set; ignored by the V06 variants
	Username   string    // appended to the text to use
	Modifier   string    // appended after the username
	// PasswordLength is the total output length in grapheme clusters,
	// including prefix and suffix.
	PasswordLength int
	Prefix         string
	Suffix         string
}

// PasswordMaker derives passwords for one validated set of settings. It is
// immutable after New and safe for concurrent use.
type PasswordMaker struct {
	algo     algoSelection
	preLeet  *leetTable // applied to hash inputs, nil when unused
	postLeet *leetTable // applied to each hashed part, nil when unused

	alphabet []string // output grapheme clusters, digit value = index
	username string
	modifier string

	passwordLength  int
	prefixGraphemes []string
	suffixGraphemes []string
}

// charactersV06 is the character set the version 0.6 algorithms force,
// whatever the settings say.
const charactersV06 = "0123456789abcdef"

// New validates the settings and returns a PasswordMaker for them.
func New(s Settings) (*PasswordMaker, error) {
	algo, err := s.Algorithm.selection()
	if err != nil {
		return nil, err
	}
	if s.PasswordLength < 0 {
		return nil, fmt.Errorf("passwordmaker: negative password length %d", s.PasswordLength)
	}

	alphabet := graphemes(s.Characters)
	if len(alphabet) < 2 {
		return nil, ErrInsufficientCharset
	}
	if algo.v06 {
		alphabet = graphemes(charactersV06)
	}

	var pre, post *leetTable
	switch s.UseLeet {
	case LeetNotAtAll:
	case LeetBefore, LeetAfter, LeetBeforeAndAfter:
		table, err := s.LeetLevel.table()
		if err != nil {
			return nil, err
		}
		if s.UseLeet != LeetAfter {
			pre = table
		}
		if s.UseLeet != LeetBefore {
			post = table
		}
	default:
		return nil, fmt.Errorf("passwordmaker: invalid leet usage %d", s.UseLeet)
	}

	return &PasswordMaker{
		algo:            algo,
		preLeet:         pre,
		postLeet:        post,
		alphabet:        alphabet,
		username:        s.Username,
		modifier:        s.Modifier,
		passwordLength:  s.PasswordLength,
		prefixGraphemes: graphemes(s.Prefix),
		suffixGraphemes: graphemes(s.Suffix),
	}, nil
}

// Generate derives the password for the given text and master password.
func (p *PasswordMaker) Generate(data, key string) (string, error) {
	if data == "" {
		return "", ErrMissingTextToUse
	}
	if key == "" {
		return "", ErrMissingMasterPassword
	}
	modifiedData := data + p.username + p.modifier
	if p.postLeet == nil {
		return p.generateDirect(modifiedData, key), nil
	}
	return p.generatePostLeet(modifiedData, key), nil
}

// generateDirect concatenates the grapheme output of successive password
// parts straight into the result.
func (p *PasswordMaker) generateDirect(data, key string) string {
	i := 0
	return p.combine(func() ([]string, bool) {
		part := p.part(data, key, i)
		i++
		return part, true
	})
}

// generatePostLeet materializes each part as a string and leets it before
// assembly. Leet lower-cases per part, and lower-casing is context sensitive
// (word-final sigma), so the substitution cannot be moved past the part
// boundary or done per character.
func (p *PasswordMaker) generatePostLeet(data, key string) string {
	needed := p.passwordLength - len(p.prefixGraphemes) - len(p.suffixGraphemes)
	if needed < 0 {
		needed = 0
	}

	var acc strings.Builder
	count := 0
	for i := 0; ; i++ {
		part := p.postLeet.leetify(strings.Join(p.part(data, key, i), ""))
		acc.WriteString(part)
		count += graphemeCount(part)
		if count >= needed {
			break
		}
	}

	body := graphemes(acc.String())
	done := false
	return p.combine(func() ([]string, bool) {
		if done {
			return nil, false
		}
		done = true
		return body, true
	})
}

// combine assembles prefix, password graphemes and suffix within the length
// budget. nextPart yields successive batches of password graphemes; a false
// return means the supply is exhausted. The body is cut so the suffix fits,
// and the total is cut to the password length, which only matters when the
// suffix alone exceeds it.
func (p *PasswordMaker) combine(nextPart func() ([]string, bool)) string {
	budget := p.passwordLength - len(p.suffixGraphemes)
	if budget < 0 {
		budget = 0
	}
	var b strings.Builder
	n := 0
	for _, g := range p.prefixGraphemes {
		if n == budget {
			break
		}
		b.WriteString(g)
		n++
	}
	for n < budget {
		part, ok := nextPart()
		if !ok {
			break
		}
		for _, g := range part {
			if n == budget {
				break
			}
			b.WriteString(g)
			n++
		}
	}
	for _, g := range p.suffixGraphemes {
		if n == p.passwordLength {
			break
		}
		b.WriteString(g)
		n++
	}
	return b.String()
}
