// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package secret

import (
	"math"
	"testing"
)

func TestEntropyBits(t *testing.T) {
	got := EntropyBits(26, 4)
	want := 4 * math.Log2(26)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("EntropyBits(26, 4) = %v, want %v", got, want)
	}

	// Degenerate populations carry no entropy.
	if got := EntropyBits(0, 4); got != 0 {
		t.Fatalf("EntropyBits(0, 4) = %v, want 0", got)
	}
	if got := EntropyBits(1, 4); got != 0 {
		t.Fatalf("EntropyBits(1, 4) = %v, want 0", got)
	}
	if got := EntropyBits(64, 0); got != 0 {
		t.Fatalf("EntropyBits(64, 0) = %v, want 0", got)
	}
}

func TestPassphraseStrengthThresholds(t *testing.T) {
	cases := []struct {
		bits float64
		want Strength
	}{
		{0, StrengthWeak},
		{29.9, StrengthWeak},
		{30, StrengthFair},
		{49.9, StrengthFair},
		{50, StrengthGood},
		{69.9, StrengthGood},
		{70, StrengthStrong},
		{89.9, StrengthStrong},
		{90, StrengthVeryStrong},
		{200, StrengthVeryStrong},
	}
	for _, c := range cases {
		if got := PassphraseStrength(c.bits); got != c.want {
			t.Errorf("PassphraseStrength(%v) = %v, want %v", c.bits, got, c.want)
		}
	}
}

func TestPasswordStrengthThresholds(t *testing.T) {
	cases := []struct {
		bits float64
		want Strength
	}{
		{0, StrengthVeryWeak},
		{24.9, StrengthVeryWeak},
		{25, StrengthWeak},
		{34.9, StrengthWeak},
		{35, StrengthFair},
		{49.9, StrengthFair},
		{50, StrengthGood},
		{69.9, StrengthGood},
		{70, StrengthStrong},
		{89.9, StrengthStrong},
		{90, StrengthVeryStrong},
	}
	for _, c := range cases {
		if got := PasswordStrength(c.bits); got != c.want {
			t.Errorf("PasswordStrength(%v) = %v, want %v", c.bits, got, c.want)
		}
	}
}

func TestStrengthString(t *testing.T) {
	names := map[Strength]string{
		StrengthVeryWeak:   "Very Weak",
		StrengthWeak:       "Weak",
		StrengthFair:       "Fair",
		StrengthGood:       "Good",
		StrengthStrong:     "Strong",
		StrengthVeryStrong: "Very Strong",
	}
	for s, want := range names {
		if s.String() != want {
			t.Errorf("Strength(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
	if got := Strength(42).String(); got != "Unknown" {
		t.Errorf("out-of-range strength = %q, want Unknown", got)
	}
}
