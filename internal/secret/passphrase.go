// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package secret

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/passmith/passmith/internal/wordlist"
)

// Passphrase parameter bounds and defaults.
const (
	MinWordCount     = 2
	MaxWordCount     = 10
	DefaultWordCount = 4
	DefaultSeparator = "-"
	MaxSeparatorLen  = 5
)

// PassphraseOptions are the per-call generation parameters. A zero WordCount
// resolves to DefaultWordCount and an empty Separator to DefaultSeparator;
// the booleans are taken as given.
type PassphraseOptions struct {
	WordCount      int
	Separator      string
	Capitalize     bool
	IncludeNumbers bool
}

// DefaultPassphraseOptions returns the stock parameters: four capitalized
// words joined with dashes, no number suffixes.
func DefaultPassphraseOptions() PassphraseOptions {
	return PassphraseOptions{
		WordCount:  DefaultWordCount,
		Separator:  DefaultSeparator,
		Capitalize: true,
	}
}

func (o PassphraseOptions) withDefaults() PassphraseOptions {
	if o.WordCount == 0 {
		o.WordCount = DefaultWordCount
	}
	if o.Separator == "" {
		o.Separator = DefaultSeparator
	}
	return o
}

// PassphraseGenerator draws words from a repository and assembles them into
// passphrases.
type PassphraseGenerator struct {
	repo *wordlist.Repository
}

// NewPassphraseGenerator creates a generator over the given repository.
func NewPassphraseGenerator(repo *wordlist.Repository) *PassphraseGenerator {
	return &PassphraseGenerator{repo: repo}
}

// Validate checks the options without generating anything, so callers can
// pre-check parameters. Zero-valued fields are resolved to defaults first.
func (g *PassphraseGenerator) Validate(opts PassphraseOptions) error {
	opts = opts.withDefaults()
	if opts.WordCount < MinWordCount {
		return fmt.Errorf("%w: word count must be at least %d", ErrInvalidArgument, MinWordCount)
	}
	if opts.WordCount > MaxWordCount {
		return fmt.Errorf("%w: word count cannot exceed %d", ErrInvalidArgument, MaxWordCount)
	}
	if available := g.repo.WordCount(); opts.WordCount > available {
		return fmt.Errorf("%w: cannot generate %d words from %d available words", ErrInvalidArgument, opts.WordCount, available)
	}
	if len(opts.Separator) > MaxSeparatorLen {
		return fmt.Errorf("%w: separator cannot be longer than %d characters", ErrInvalidArgument, MaxSeparatorLen)
	}
	return nil
}

// Generate produces a passphrase: WordCount distinct words sampled from the
// repository, optionally capitalized, optionally suffixed with an
// independent random two-digit number per word, joined with Separator.
func (g *PassphraseGenerator) Generate(opts PassphraseOptions) (Result, error) {
	opts = opts.withDefaults()
	if err := g.Validate(opts); err != nil {
		return Result{}, err
	}

	words, err := g.repo.RandomWords(opts.WordCount)
	if err != nil {
		// Validate already bounds the request against the repository, so this
		// only fires when the random source itself fails.
		return Result{}, err
	}

	if opts.Capitalize {
		for i, w := range words {
			words[i] = capitalize(w)
		}
	}

	if opts.IncludeNumbers {
		for i, w := range words {
			n, err := randInt(100)
			if err != nil {
				return Result{}, err
			}
			words[i] = fmt.Sprintf("%s%02d", w, n)
		}
	}

	bits := g.EstimateEntropy(opts.WordCount)
	return Result{
		Secret:   strings.Join(words, opts.Separator),
		Entropy:  bits,
		Strength: PassphraseStrength(bits),
	}, nil
}

// EstimateEntropy models the passphrase as a uniform choice over
// repositorySize^wordCount equally likely outcomes. Number suffixes and the
// separator are deliberately ignored, so this is an approximation, not a
// cryptographic proof. A zero wordCount resolves to the default.
func (g *PassphraseGenerator) EstimateEntropy(wordCount int) float64 {
	if wordCount == 0 {
		wordCount = DefaultWordCount
	}
	return EntropyBits(g.repo.WordCount(), wordCount)
}

// StrengthRating returns the rating for a passphrase of wordCount words
// drawn from the current repository.
func (g *PassphraseGenerator) StrengthRating(wordCount int) Strength {
	return PassphraseStrength(g.EstimateEntropy(wordCount))
}

// capitalize uppercases the first rune and leaves the rest unchanged. Words
// added at runtime are not restricted to ASCII, so the first rune must be
// decoded rather than sliced byte-wise.
func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError && size <= 1 {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
