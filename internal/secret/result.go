// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package secret

// Result is the outcome of a single generation call: the artifact plus the
// entropy estimate and strength rating computed for the parameters that
// produced it. Results are values and are never mutated after creation.
type Result struct {
	Secret   string
	Entropy  float64
	Strength Strength
}
