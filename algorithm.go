// Copyright 2024 The go-passwordmaker Authors
// License: MIT
//

package passwordmaker

import (
	"crypto"
	"crypto/hmac"
	"fmt"
	"unicode/utf16"

	// The hash functions are selected through the standard library's crypto
	// registry; these imports register the ones we dispatch on.
	_ "crypto/md5"
	_ "crypto/sha1"
	_ "crypto/sha256"

	_ "golang.org/x/crypto/md4"
	_ "golang.org/x/crypto/ripemd160"
)

// HashAlgorithm selects the hash function, as shown in the GUI of the
// JavaScript edition of PasswordMaker Pro. Most variants hash the input and
// base-convert the digest to indices into the character set. The V06 variants
// exist for compatibility with PasswordMaker Pro 0.6: they convert the input
// to UTF-16 and discard the upper byte of every code unit, and they ignore the
// configured character set in favor of plain hexadecimal output.
type HashAlgorithm int

const (
	MD4 HashAlgorithm = iota
	HMACMD4
	MD5
	MD5V06
	HMACMD5
	HMACMD5V06
	SHA1
	HMACSHA1
	SHA256
	HMACSHA256
	RIPEMD160
	HMACRIPEMD160
)

// algoSelection decomposes a HashAlgorithm into its three orthogonal choices:
// legacy family or not, HMAC or plain, and the digest primitive.
type algoSelection struct {
	v06  bool
	hmac bool
	prim crypto.Hash
}

func (a HashAlgorithm) selection() (algoSelection, error) {
	switch a {
	case MD4:
		return algoSelection{prim: crypto.MD4}, nil
	case HMACMD4:
		return algoSelection{hmac: true, prim: crypto.MD4}, nil
	case MD5:
		return algoSelection{prim: crypto.MD5}, nil
	case MD5V06:
		return algoSelection{v06: true, prim: crypto.MD5}, nil
	case HMACMD5:
		return algoSelection{hmac: true, prim: crypto.MD5}, nil
	case HMACMD5V06:
		return algoSelection{v06: true, hmac: true, prim: crypto.MD5}, nil
	case SHA1:
		return algoSelection{prim: crypto.SHA1}, nil
	case HMACSHA1:
		return algoSelection{hmac: true, prim: crypto.SHA1}, nil
	case SHA256:
		return algoSelection{prim: crypto.SHA256}, nil
	case HMACSHA256:
		return algoSelection{hmac: true, prim: crypto.SHA256}, nil
	case RIPEMD160:
		return algoSelection{prim: crypto.RIPEMD160}, nil
	case HMACRIPEMD160:
		return algoSelection{hmac: true, prim: crypto.RIPEMD160}, nil
	}
	return algoSelection{}, fmt.Errorf("passwordmaker: unknown hash algorithm %d", a)
}

// hashbyte hashes the concatenation of the given byte slices.
func hashbyte(h crypto.Hash, parts ...[]byte) []byte {
	hh := h.New()
	for _, p := range parts {
		hh.Write(p)
	}
	return hh.Sum(nil)
}

// hmacbyte computes the RFC 2104 HMAC of the concatenated data under key. All
// five supported primitives have a 64-byte block, so the standard construction
// applies unchanged.
func hmacbyte(h crypto.Hash, key []byte, data ...[]byte) []byte {
	m := hmac.New(h.New, key)
	for _, d := range data {
		m.Write(d)
	}
	return m.Sum(nil)
}

// yeetUpperBytes interprets the string as UTF-16 code units (surrogate pairs
// stay two units) and keeps only the low byte of each. PasswordMaker Pro 0.6
// built hash input with charCodeAt and a byte mask; the transform is lossy and
// deliberately reproduced bit for bit.
func yeetUpperBytes(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, len(units))
	for i, u := range units {
		out[i] = byte(u)
	}
	return out
}
