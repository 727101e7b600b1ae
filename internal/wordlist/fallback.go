// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package wordlist

import (
	_ "embed"
	"strings"
)

// fallbackList embeds the built-in word list used when no external source is
// configured or the configured source is unusable.
//
//go:embed words.txt
var fallbackList string

// fallbackWords returns the built-in words that satisfy the length bounds.
func fallbackWords(minLen, maxLen int) []string {
	var out []string
	for _, w := range strings.Fields(fallbackList) {
		if n := len(w); n >= minLen && n <= maxLen {
			out = append(out, w)
		}
	}
	return out
}
