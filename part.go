// Copyright 2024 The go-passwordmaker Authors
// License: MIT
//

package passwordmaker

import (
	"strconv"

	"github.com/tomsons/go-passwordmaker/internal/baseconv"
)

// v06Digits is the digit count the version 0.6 algorithms always print: 32
// hex characters, leading zeros included.
const v06Digits = 32

// keyDerivative returns the master password variant for part i. Part 0 uses
// the password as is; later parts append a line feed and the decimal counter.
// Both the separator and the base-10 format are compatibility requirements.
func keyDerivative(key string, i int) string {
	if i == 0 {
		return key
	}
	return key + "\n" + strconv.Itoa(i)
}

// part returns the grapheme clusters of password part i.
//
// The digit stream always starts at the most significant digit and spans the
// full digest width. The modern family drops the leading zero digits, like the
// reference edition's long division which stops once the quotient runs empty;
// a digest of value zero therefore contributes nothing. The V06 family prints
// every digit and left-pads with zeros to 32, like version 0.6's fixed-width
// hex output.
func (p *PasswordMaker) part(data, key string, i int) []string {
	digest := p.digest(data, keyDerivative(key, i))
	stream := baseconv.New(digest, uint64(len(p.alphabet)))

	out := make([]string, 0, stream.Len())
	if p.algo.v06 {
		for n := stream.Len(); n < v06Digits; n++ {
			out = append(out, p.alphabet[0])
		}
		for {
			digit, ok := stream.Next()
			if !ok {
				return out
			}
			out = append(out, p.alphabet[digit])
		}
	}
	leading := true
	for {
		digit, ok := stream.Next()
		if !ok {
			return out
		}
		if leading && digit == 0 {
			continue
		}
		leading = false
		out = append(out, p.alphabet[digit])
	}
}

// digest hashes one part's input. The four byte-shaping combinations are kept
// explicit because they do not compose: leet(key)+leet(data) differs from
// leet(key+data), and the V06 byte squeeze happens after leet.
func (p *PasswordMaker) digest(data, key string) []byte {
	switch {
	case p.algo.v06 && p.algo.hmac:
		return hmacbyte(p.algo.prim,
			yeetUpperBytes(p.applyPreLeet(key)),
			yeetUpperBytes(p.applyPreLeet(data)))
	case p.algo.v06:
		return hashbyte(p.algo.prim, yeetUpperBytes(p.applyPreLeet(key+data)))
	case p.algo.hmac:
		return hmacbyte(p.algo.prim,
			[]byte(p.applyPreLeet(key)),
			[]byte(p.applyPreLeet(data)))
	default:
		return hashbyte(p.algo.prim, []byte(p.applyPreLeet(key+data)))
	}
}

func (p *PasswordMaker) applyPreLeet(s string) string {
	if p.preLeet == nil {
		return s
	}
	return p.preLeet.leetify(s)
}
