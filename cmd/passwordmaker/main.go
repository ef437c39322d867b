// Copyright 2024 The go-passwordmaker Authors
// License: MIT
//

// Command passwordmaker derives a password for a URL from the command line.
//
//	echo -n "master password" | passwordmaker -algorithm md5 -length 12 https://www.example.com/login
//
// The master password is read from standard input. The URL is reduced to the
// text to use according to the -use-* flags before derivation.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tomsons/go-passwordmaker"
)

var algorithms = map[string]passwordmaker.HashAlgorithm{
	"md4":            passwordmaker.MD4,
	"hmac-md4":       passwordmaker.HMACMD4,
	"md5":            passwordmaker.MD5,
	"md5-v0.6":       passwordmaker.MD5V06,
	"hmac-md5":       passwordmaker.HMACMD5,
	"hmac-md5-v0.6":  passwordmaker.HMACMD5V06,
	"sha1":           passwordmaker.SHA1,
	"hmac-sha1":      passwordmaker.HMACSHA1,
	"sha256":         passwordmaker.SHA256,
	"hmac-sha256":    passwordmaker.HMACSHA256,
	"ripemd160":      passwordmaker.RIPEMD160,
	"hmac-ripemd160": passwordmaker.HMACRIPEMD160,
}

var leetUsages = map[string]passwordmaker.LeetUsage{
	"none":   passwordmaker.LeetNotAtAll,
	"before": passwordmaker.LeetBefore,
	"after":  passwordmaker.LeetAfter,
	"both":   passwordmaker.LeetBeforeAndAfter,
}

const defaultCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789`~!@#$%^&*()_-+={}|[]\\:\";'<>?,./"

func main() {
	algorithm := flag.String("algorithm", "md5", "hash algorithm")
	leet := flag.String("leet", "none", "when to apply leet: none, before, after, both")
	leetLevel := flag.Int("leet-level", 1, "leet level, 1 through 9")
	characters := flag.String("characters", defaultCharacters, "output character set")
	length := flag.Int("length", 8, "password length in characters")
	username := flag.String("username", "", "username appended to the text to use")
	modifier := flag.String("modifier", "", "modifier appended after the username")
	prefix := flag.String("prefix", "", "verbatim password prefix, counts toward the length")
	suffix := flag.String("suffix", "", "verbatim password suffix, counts toward the length")
	useProtocol := flag.Bool("use-protocol", false, "include the URL protocol")
	useUserinfo := flag.Bool("use-userinfo", false, "include the URL userinfo")
	useSubdomains := flag.Bool("use-subdomains", true, "include the URL subdomains")
	useDomain := flag.Bool("use-domain", true, "include the URL domain")
	usePortPath := flag.Bool("use-port-path", false, "include the URL port, path, query and fragment")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: passwordmaker [flags] <url>")
		os.Exit(2)
	}

	algo, ok := algorithms[*algorithm]
	if !ok {
		fmt.Fprintf(os.Stderr, "passwordmaker: unknown algorithm %q\n", *algorithm)
		os.Exit(2)
	}
	usage, ok := leetUsages[*leet]
	if !ok {
		fmt.Fprintf(os.Stderr, "passwordmaker: unknown leet usage %q\n", *leet)
		os.Exit(2)
	}

	pwm, err := passwordmaker.New(passwordmaker.Settings{
		Algorithm:      algo,
		UseLeet:        usage,
		LeetLevel:      passwordmaker.LeetLevel(*leetLevel),
		Characters:     *characters,
		Username:       *username,
		Modifier:       *modifier,
		PasswordLength: *length,
		Prefix:         *prefix,
		Suffix:         *suffix,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	protocolMode := passwordmaker.ProtocolIgnored
	if *useProtocol {
		protocolMode = passwordmaker.ProtocolUsed
	}
	parsing := passwordmaker.URLParsing{
		UseProtocol:   protocolMode,
		UseUserinfo:   *useUserinfo,
		UseSubdomains: *useSubdomains,
		UseDomain:     *useDomain,
		UsePortPath:   *usePortPath,
	}
	data := parsing.MakeUsedTextFromURL(flag.Arg(0))

	key, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && key == "" {
		fmt.Fprintln(os.Stderr, "passwordmaker: cannot read master password from stdin")
		os.Exit(1)
	}
	key = strings.TrimRight(key, "\r\n")

	password, err := pwm.Generate(data, key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(password)
}
