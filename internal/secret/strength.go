// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package secret implements the generation and scoring engine: passphrase
// and password generation, entropy estimation, and strength ratings.
package secret

import "math"

// Strength is an ordered rating derived purely from estimated entropy.
type Strength int

const (
	StrengthVeryWeak Strength = iota
	StrengthWeak
	StrengthFair
	StrengthGood
	StrengthStrong
	StrengthVeryStrong
)

// String returns the human-readable rating name.
func (s Strength) String() string {
	switch s {
	case StrengthVeryWeak:
		return "Very Weak"
	case StrengthWeak:
		return "Weak"
	case StrengthFair:
		return "Fair"
	case StrengthGood:
		return "Good"
	case StrengthStrong:
		return "Strong"
	case StrengthVeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// EntropyBits models a secret of symbolCount symbols drawn uniformly from a
// population of populationSize equally likely values and returns log2 of the
// total outcome count. It is a comparative strength proxy, not a
// cryptographic guarantee.
func EntropyBits(populationSize, symbolCount int) float64 {
	if populationSize <= 1 || symbolCount < 1 {
		return 0
	}
	return float64(symbolCount) * math.Log2(float64(populationSize))
}

// PassphraseStrength maps entropy bits onto a rating using the thresholds
// tuned for word-based secrets. Passphrases never rate below Weak because a
// two-word minimum over any viable word list already clears the floor.
func PassphraseStrength(bits float64) Strength {
	switch {
	case bits < 30:
		return StrengthWeak
	case bits < 50:
		return StrengthFair
	case bits < 70:
		return StrengthGood
	case bits < 90:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}

// PasswordStrength maps entropy bits onto a rating using the thresholds
// tuned for character-based secrets.
func PasswordStrength(bits float64) Strength {
	switch {
	case bits < 25:
		return StrengthVeryWeak
	case bits < 35:
		return StrengthWeak
	case bits < 50:
		return StrengthFair
	case bits < 70:
		return StrengthGood
	case bits < 90:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}
