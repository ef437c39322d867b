// Copyright 2024 The go-passwordmaker Authors
// License: MIT
//

package passwordmaker

import "github.com/rivo/uniseg"

// graphemes splits s into Unicode extended grapheme clusters.
func graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// graphemeCount counts the extended grapheme clusters of s.
func graphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
