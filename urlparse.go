// Copyright 2024 The go-passwordmaker Authors
// License: MIT
//

package passwordmaker

import "strings"

// ProtocolUsageMode controls how the protocol of a URL enters the text to
// use. UsedWithUndefinedIfEmpty substitutes the literal string "undefined"
// when the URL has no protocol; the JavaScript edition reads a missing object
// property there, and the result is part of the compatible behavior.
type ProtocolUsageMode int

const (
	ProtocolIgnored ProtocolUsageMode = iota
	ProtocolUsed
	ProtocolUsedWithUndefinedIfEmpty
)

// URLParsing selects which parts of a URL make up the text to use.
type URLParsing struct {
	UseProtocol   ProtocolUsageMode
	UseUserinfo   bool
	UseSubdomains bool
	UseDomain     bool
	UsePortPath   bool // port, path, query and fragment toggle together
}

// MakeUsedTextFromURL computes the text to use from an input URL. The
// splitting intentionally does not follow the URI standard: users type
// strings like "www.example.com", which have no scheme, and those should
// still come out right. It aims to be compatible with PasswordMaker Pro, not
// with RFC 3986.
func (u URLParsing) MakeUsedTextFromURL(input string) string {
	return parseURL(input).filterBySettings(u).recombine()
}

func (u URLParsing) isProtocolUsed() bool {
	return u.UseProtocol == ProtocolUsed || u.UseProtocol == ProtocolUsedWithUndefinedIfEmpty
}

type urlParts struct {
	protocol          string
	userinfo          string
	subdomain         string // not part of the URI spec, but PasswordMaker Pro uses it
	domain            string
	port              string
	pathQueryFragment string
}

type usedURLParts struct {
	protocol          string
	protocolSeparator string
	userinfo          string
	subdomain         string
	domain            string
	port              string
	pathQueryFragment string
}

func parseURL(input string) urlParts {
	protocol, rest, hasProtocol := strings.Cut(input, ":")
	if !hasProtocol {
		protocol, rest = "", input
	}
	rest, hasAuthority := strings.CutPrefix(rest, "//")

	// The authority stops at the first slash, which itself belongs to the
	// path. With a protocol but no authority marker, everything after the
	// colon is path.
	var authority, pathQueryFragment string
	pathStart := strings.Index(rest, "/")
	if hasProtocol && !hasAuthority {
		pathStart = 0
	}
	if pathStart < 0 {
		authority = rest
	} else {
		authority, pathQueryFragment = rest[:pathStart], rest[pathStart:]
	}

	// Userinfo splits off first; otherwise the port colon is ambiguous.
	userinfo, hostAndPort, hasUserinfo := strings.Cut(authority, "@")
	if !hasUserinfo {
		userinfo, hostAndPort = "", authority
	}
	address, port, _ := strings.Cut(hostAndPort, ":")

	// The subdomain ends at the second dot from the right.
	subdomain, domain := "", address
	if last := strings.LastIndex(address, "."); last >= 0 {
		if sep := strings.LastIndex(address[:last], "."); sep >= 0 {
			subdomain, domain = address[:sep], strings.TrimPrefix(address[sep:], ".")
		}
	}

	return urlParts{
		protocol:          protocol,
		userinfo:          userinfo,
		subdomain:         subdomain,
		domain:            domain,
		port:              port,
		pathQueryFragment: pathQueryFragment,
	}
}

func (parts urlParts) filterBySettings(settings URLParsing) usedURLParts {
	hasProtocol := settings.isProtocolUsed() && parts.protocol != ""
	out := usedURLParts{}
	switch {
	case hasProtocol:
		out.protocol = parts.protocol
		out.protocolSeparator = "://"
	case settings.UseProtocol == ProtocolUsedWithUndefinedIfEmpty:
		out.protocol = "undefined"
	}
	if settings.UseUserinfo {
		out.userinfo = parts.userinfo
	}
	if settings.UseSubdomains {
		out.subdomain = parts.subdomain
	}
	if settings.UseDomain {
		out.domain = parts.domain
	}
	if settings.UsePortPath {
		out.port = parts.port
		out.pathQueryFragment = parts.pathQueryFragment
	}
	return out
}

func (parts usedURLParts) recombine() string {
	hasUserinfo := parts.userinfo != ""
	hasSubdomain := parts.subdomain != ""
	hasDomain := parts.domain != ""
	hasPort := parts.port != ""
	hasPath := parts.pathQueryFragment != ""

	var atSign, subdomainDot, portColon string
	if hasUserinfo && (hasDomain || hasSubdomain || hasPort || hasPath) {
		atSign = "@"
	}
	if hasSubdomain && hasDomain {
		subdomainDot = "."
	}
	if hasPort && (hasUserinfo || hasDomain || hasSubdomain) {
		portColon = ":"
	}

	var b strings.Builder
	for _, s := range []string{
		parts.protocol,
		parts.protocolSeparator,
		parts.userinfo,
		atSign,
		parts.subdomain,
		subdomainDot,
		parts.domain,
		portColon,
		parts.port,
		parts.pathQueryFragment,
	} {
		b.WriteString(s)
	}
	return b.String()
}
