// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package wordlist

import (
	"fmt"
	"os"
	"strings"
)

// Source supplies candidate words for a repository. Implementations live
// outside the engine; the repository only filters and validates what a
// source hands back. A failing source is treated as "no words available",
// never as a fatal condition.
type Source interface {
	Load() ([]string, error)
}

// FileSource loads newline-separated words from a file on disk, e.g.
// /usr/share/dict/words.
type FileSource struct {
	Path string
}

// Load reads the file and splits it into candidate words.
func (s FileSource) Load() ([]string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading word file %s: %w", s.Path, err)
	}
	return strings.Fields(string(data)), nil
}
