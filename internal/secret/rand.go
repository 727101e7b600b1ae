// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package secret

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// randInt returns a uniform random int in [0, max) from crypto/rand.
func randInt(max int) (int, error) {
	if max < 1 {
		return 0, fmt.Errorf("randInt: non-positive bound %d", max)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(n.Int64()), nil
}

// shuffleBytes performs a Fisher-Yates shuffle in place using crypto/rand,
// so guaranteed-coverage characters are not predictably placed at the front.
func shuffleBytes(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
