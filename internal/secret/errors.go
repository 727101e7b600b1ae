// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package secret

import "errors"

// ErrInvalidArgument is the error kind for every parameter rejection in this
// package. Callers match it with errors.Is; the wrapped text carries the
// specific reason. Validation always runs before any randomness is drawn, so
// a failed call has no side effects.
var ErrInvalidArgument = errors.New("invalid argument")
