// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/passmith/passmith/internal/i18n"
	"github.com/passmith/passmith/internal/secret"
)

// newStatsCmd builds the `passmith stats` command: word repository info plus
// an entropy preview for the default generation parameters.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show word list statistics and default-strength preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			words := repo.Words()
			sample := words
			if len(sample) > 10 {
				sample = sample[:10]
			}

			fmt.Fprintln(out, i18n.T("stats.title"))
			fmt.Fprintln(out, i18n.T("words.count", repo.WordCount()))
			fmt.Fprintln(out, i18n.T("words.sample", strings.Join(sample, ", ")))

			ppGen := secret.NewPassphraseGenerator(repo)
			ppOpts := secret.DefaultPassphraseOptions()
			ppBits := ppGen.EstimateEntropy(ppOpts.WordCount)
			fmt.Fprintln(out, i18n.T("stats.default_passphrase", ppOpts.WordCount, ppBits, secret.PassphraseStrength(ppBits)))

			pwGen := secret.NewPasswordGenerator()
			pwOpts := secret.DefaultPasswordOptions()
			pwBits := pwGen.EstimateEntropy(pwOpts)
			fmt.Fprintln(out, i18n.T("stats.default_password", pwOpts.Length, pwBits, secret.PasswordStrength(pwBits)))

			return nil
		},
	}
}
