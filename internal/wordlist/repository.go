// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package wordlist manages the word collection passphrases are sampled from.
// A Repository is populated either from a caller-supplied list or from an
// injected Source (typically a dictionary file), with an embedded fallback
// list when the source is unusable.
package wordlist

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/passmith/passmith/internal/logging"
)

// Default length bounds applied when filtering source words.
const (
	DefaultMinLength = 3
	DefaultMaxLength = 12
)

// viabilityThreshold is the minimum filtered word count below which a source
// is considered unusable and the embedded fallback list takes over.
const viabilityThreshold = 100

// ErrInvalidCount is returned by RandomWords when the requested sample size
// cannot be satisfied.
var ErrInvalidCount = errors.New("invalid word count")

// Repository holds the word list. All methods are safe for concurrent use;
// sampling reads share a lock, add/remove take it exclusively.
type Repository struct {
	mu    sync.RWMutex
	words []string
}

// New creates a repository over the given words, taken verbatim. The slice
// is copied so later caller mutation cannot alias repository state.
func New(words []string) *Repository {
	owned := make([]string, len(words))
	copy(owned, words)
	return &Repository{words: owned}
}

// Load builds a repository from src, filtered to words of minLen..maxLen
// runes that are alphabetic and already lowercase, deduplicated and sorted.
// A nil source, a source error, or a filtered set below the viability
// threshold all fall back to the embedded word list; loading never fails.
func Load(src Source, minLen, maxLen int) *Repository {
	if minLen <= 0 {
		minLen = DefaultMinLength
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}

	if src != nil {
		candidates, err := src.Load()
		if err != nil {
			logging.Warnf("word source failed, using built-in list: %v", err)
		} else {
			filtered := filterWords(candidates, minLen, maxLen)
			if len(filtered) >= viabilityThreshold {
				return &Repository{words: filtered}
			}
			logging.Debugf("word source yielded %d usable words (need %d), using built-in list", len(filtered), viabilityThreshold)
		}
	}

	return &Repository{words: fallbackWords(minLen, maxLen)}
}

// filterWords keeps alphabetic, lowercase words within the length bounds,
// deduplicated and sorted for stable ordering.
func filterWords(candidates []string, minLen, maxLen int) []string {
	seen := make(map[string]struct{}, len(candidates))
	var out []string
	for _, w := range candidates {
		w = strings.TrimSpace(w)
		n := len([]rune(w))
		if n < minLen || n > maxLen || !isLowerAlpha(w) {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func isLowerAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) || !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// RandomWords samples count distinct words uniformly without replacement
// using crypto/rand. It fails with ErrInvalidCount when count < 1 or count
// exceeds the repository size.
func (r *Repository) RandomWords(count int) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if count < 1 {
		return nil, fmt.Errorf("%w: must be at least 1", ErrInvalidCount)
	}
	if count > len(r.words) {
		return nil, fmt.Errorf("%w: cannot select %d words from %d available", ErrInvalidCount, count, len(r.words))
	}

	// Partial Fisher-Yates over a copy: the first count slots end up holding
	// a uniform sample without replacement.
	pool := make([]string, len(r.words))
	copy(pool, r.words)
	for i := 0; i < count; i++ {
		j, err := cryptoIndex(len(pool) - i)
		if err != nil {
			return nil, err
		}
		pool[i], pool[i+j] = pool[i+j], pool[i]
	}
	return pool[:count], nil
}

// AddWords appends the given words, lowercased and trimmed. Blank entries
// are ignored. Duplicates are allowed; the repository does not dedupe on add.
func (r *Repository) AddWords(words []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		r.words = append(r.words, w)
	}
}

// RemoveWord removes the first exact match of the normalized word and
// reports whether a removal occurred. Absence is not an error.
func (r *Repository) RemoveWord(word string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	word = strings.ToLower(strings.TrimSpace(word))
	for i, w := range r.words {
		if w == word {
			r.words = append(r.words[:i], r.words[i+1:]...)
			return true
		}
	}
	return false
}

// WordCount returns the number of words currently held.
func (r *Repository) WordCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.words)
}

// Words returns a copy of the word list. Mutating it does not affect the
// repository.
func (r *Repository) Words() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.words))
	copy(out, r.words)
	return out
}

// cryptoIndex returns a uniform random index in [0, n) from crypto/rand.
func cryptoIndex(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("cryptoIndex: non-positive bound %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}
