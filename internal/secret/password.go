// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package secret

import (
	"fmt"
	"strings"
)

// Password parameter bounds and defaults.
const (
	MinPasswordLength     = 4
	MaxPasswordLength     = 128
	DefaultPasswordLength = 12
)

// Character classes the pool is assembled from.
const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// ambiguousChars are easily confused when displayed: zero vs O, one vs
	// lower L vs I vs pipe, and the backtick.
	ambiguousChars = "0O1lI|`"
)

// PasswordOptions are the per-call generation parameters. A zero Length
// resolves to DefaultPasswordLength; the class toggles are taken as given.
type PasswordOptions struct {
	Length           int
	Uppercase        bool
	Lowercase        bool
	Digits           bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// DefaultPasswordOptions returns the stock parameters: twelve characters
// with every class enabled and ambiguous characters allowed.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length:    DefaultPasswordLength,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

func (o PasswordOptions) withDefaults() PasswordOptions {
	if o.Length == 0 {
		o.Length = DefaultPasswordLength
	}
	return o
}

// enabledClasses returns the character sets for the enabled classes, in a
// fixed order, after ambiguous filtering. Classes fully consumed by the
// filter are dropped.
func (o PasswordOptions) enabledClasses() []string {
	var classes []string
	add := func(enabled bool, chars string) {
		if !enabled {
			return
		}
		if o.ExcludeAmbiguous {
			chars = stripAmbiguous(chars)
		}
		if chars != "" {
			classes = append(classes, chars)
		}
	}
	add(o.Lowercase, lowercaseChars)
	add(o.Uppercase, uppercaseChars)
	add(o.Digits, digitChars)
	add(o.Symbols, symbolChars)
	return classes
}

// pool returns the full character pool: the union of the enabled, filtered
// classes. Built fresh per call, never persisted.
func (o PasswordOptions) pool() string {
	return strings.Join(o.enabledClasses(), "")
}

func stripAmbiguous(chars string) string {
	var b strings.Builder
	for _, r := range chars {
		if !strings.ContainsRune(ambiguousChars, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PasswordGenerator produces random passwords from configurable character
// classes.
type PasswordGenerator struct{}

// NewPasswordGenerator creates a password generator.
func NewPasswordGenerator() *PasswordGenerator {
	return &PasswordGenerator{}
}

// Validate checks the options without generating anything. Zero-valued
// fields are resolved to defaults first.
func (g *PasswordGenerator) Validate(opts PasswordOptions) error {
	opts = opts.withDefaults()
	if opts.Length < MinPasswordLength {
		return fmt.Errorf("%w: password length must be at least %d", ErrInvalidArgument, MinPasswordLength)
	}
	if opts.Length > MaxPasswordLength {
		return fmt.Errorf("%w: password length cannot exceed %d", ErrInvalidArgument, MaxPasswordLength)
	}
	if opts.pool() == "" {
		return fmt.Errorf("%w: at least one character type must be included", ErrInvalidArgument)
	}
	return nil
}

// Generate produces a password of Length characters drawn from the enabled
// classes. Every enabled class that survives ambiguous filtering contributes
// at least one character; the remainder is filled from the combined pool and
// the whole sequence is shuffled with crypto/rand.
func (g *PasswordGenerator) Generate(opts PasswordOptions) (Result, error) {
	opts = opts.withDefaults()
	if err := g.Validate(opts); err != nil {
		return Result{}, err
	}

	pool := opts.pool()
	chars := make([]byte, 0, opts.Length)

	// Guaranteed-coverage draws, one per enabled non-empty class.
	for _, class := range opts.enabledClasses() {
		i, err := randInt(len(class))
		if err != nil {
			return Result{}, err
		}
		chars = append(chars, class[i])
	}

	for len(chars) < opts.Length {
		i, err := randInt(len(pool))
		if err != nil {
			return Result{}, err
		}
		chars = append(chars, pool[i])
	}

	if err := shuffleBytes(chars); err != nil {
		return Result{}, err
	}

	bits := g.EstimateEntropy(opts)
	return Result{
		Secret:   string(chars),
		Entropy:  bits,
		Strength: PasswordStrength(bits),
	}, nil
}

// EstimateEntropy treats the password as a uniform choice over
// poolSize^length. The guaranteed-coverage constraint actually shrinks the
// outcome space a little, so this slightly overstates the true entropy; the
// formula is kept as-is for compatibility with the established ratings.
func (g *PasswordGenerator) EstimateEntropy(opts PasswordOptions) float64 {
	opts = opts.withDefaults()
	return EntropyBits(len(opts.pool()), opts.Length)
}

// StrengthRating returns the rating for a password generated with the given
// options.
func (g *PasswordGenerator) StrengthRating(opts PasswordOptions) Strength {
	return PasswordStrength(g.EstimateEntropy(opts))
}
