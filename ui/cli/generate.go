// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/passmith/passmith/internal/i18n"
	"github.com/passmith/passmith/internal/secret"
)

// Bulk generation bounds.
const (
	minBulkCount = 1
	maxBulkCount = 100
)

// newPassphraseCmd builds the `passmith passphrase` command.
func newPassphraseCmd() *cobra.Command {
	var (
		words          int
		separator      string
		noCaps         bool
		includeNumbers bool
		count          int
		copyOut        bool
		quiet          bool
	)

	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Generate one or more passphrases",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < minBulkCount || count > maxBulkCount {
				return errors.New(i18n.T("cli.bulk_count_range"))
			}

			opts := secret.PassphraseOptions{
				WordCount:      words,
				Separator:      separator,
				Capitalize:     !noCaps,
				IncludeNumbers: includeNumbers,
			}
			if !cmd.Flags().Changed("words") && appConfig.Passphrase.Words > 0 {
				opts.WordCount = appConfig.Passphrase.Words
			}
			if !cmd.Flags().Changed("separator") && appConfig.Passphrase.Separator != "" {
				opts.Separator = appConfig.Passphrase.Separator
			}

			gen := secret.NewPassphraseGenerator(repo)
			return runGeneration(cmd, count, copyOut, quiet, i18n.T("result.passphrase_title"), func() (secret.Result, error) {
				return gen.Generate(opts)
			})
		},
	}

	cmd.Flags().IntVarP(&words, "words", "w", secret.DefaultWordCount, "Number of words in the passphrase (2-10)")
	cmd.Flags().StringVarP(&separator, "separator", "s", secret.DefaultSeparator, "Word separator")
	cmd.Flags().BoolVar(&noCaps, "no-caps", false, "Do not capitalize words")
	cmd.Flags().BoolVarP(&includeNumbers, "include-numbers", "n", false, "Append a random two-digit number to each word")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "Number of passphrases to generate (1-100)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the result to the clipboard")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the generated secret")

	return cmd
}

// newPasswordCmd builds the `passmith password` command.
func newPasswordCmd() *cobra.Command {
	var (
		length           int
		noUpper          bool
		noLower          bool
		noDigits         bool
		noSymbols        bool
		excludeAmbiguous bool
		count            int
		copyOut          bool
		quiet            bool
	)

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate one or more random passwords",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < minBulkCount || count > maxBulkCount {
				return errors.New(i18n.T("cli.bulk_count_range"))
			}

			opts := secret.PasswordOptions{
				Length:           length,
				Uppercase:        !noUpper,
				Lowercase:        !noLower,
				Digits:           !noDigits,
				Symbols:          !noSymbols,
				ExcludeAmbiguous: excludeAmbiguous,
			}
			if !cmd.Flags().Changed("length") && appConfig.Password.Length > 0 {
				opts.Length = appConfig.Password.Length
			}

			gen := secret.NewPasswordGenerator()
			return runGeneration(cmd, count, copyOut, quiet, i18n.T("result.password_title"), func() (secret.Result, error) {
				return gen.Generate(opts)
			})
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", secret.DefaultPasswordLength, "Password length (4-128)")
	cmd.Flags().BoolVar(&noUpper, "no-upper", false, "Exclude uppercase letters")
	cmd.Flags().BoolVar(&noLower, "no-lower", false, "Exclude lowercase letters")
	cmd.Flags().BoolVar(&noDigits, "no-digits", false, "Exclude digits")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "Exclude symbols")
	cmd.Flags().BoolVarP(&excludeAmbiguous, "exclude-ambiguous", "x", false, "Exclude ambiguous characters (0, O, 1, l, I, |, `)")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "Number of passwords to generate (1-100)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the result to the clipboard")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the generated secret")

	return cmd
}

// runGeneration executes generate count times and renders the output. With
// count == 1 the full result block is shown; bulk runs print a numbered
// list. The first secret is copied to the clipboard when requested.
func runGeneration(cmd *cobra.Command, count int, copyOut, quiet bool, title string, generate func() (secret.Result, error)) error {
	out := cmd.OutOrStdout()

	var first string
	for i := 0; i < count; i++ {
		res, err := generate()
		if err != nil {
			return err
		}
		if first == "" {
			first = res.Secret
		}

		switch {
		case quiet:
			fmt.Fprintln(out, res.Secret)
		case count == 1:
			printResult(cmd, title, res)
		default:
			fmt.Fprintf(out, "%3d. %s\n", i+1, res.Secret)
		}
	}

	if copyOut {
		if err := clipboard.WriteAll(first); err != nil {
			return fmt.Errorf("%s", i18n.T("result.copy_failed", err))
		}
		if !quiet {
			fmt.Fprintln(out, i18n.T("result.copied"))
		}
	}

	return nil
}
