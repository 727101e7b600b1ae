// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Passmith.
//
// Usage:
//
//	go run . [flags]
//	./passmith [flags]
//
// This launches the Passmith CLI. See --help for options.
package main

import (
	"os"

	"github.com/passmith/passmith/internal/logging"
	"github.com/passmith/passmith/ui/cli"
)

// main is the entrypoint for the Passmith CLI.
func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("passmith: %v", err)
		os.Exit(1)
	}
}
