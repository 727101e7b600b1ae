// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/passmith/passmith/internal/i18n"
	"github.com/passmith/passmith/internal/secret"
)

var (
	cliTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	cliSecretStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true)
	cliMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// stdoutIsTerminal reports whether stdout is attached to a terminal. Styled
// output is reserved for interactive use; pipes and files get plain text.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// printResult renders a single generation result: the secret plus its
// entropy and strength metadata.
func printResult(cmd *cobra.Command, title string, res secret.Result) {
	out := cmd.OutOrStdout()
	entropy := i18n.T("result.entropy", res.Entropy)
	strength := i18n.T("result.strength", res.Strength)

	if stdoutIsTerminal() {
		fmt.Fprintln(out, cliTitleStyle.Render(title))
		fmt.Fprintln(out, cliSecretStyle.Render(res.Secret))
		fmt.Fprintln(out, cliMetaStyle.Render(entropy))
		fmt.Fprintln(out, cliMetaStyle.Render(strength))
		return
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out, res.Secret)
	fmt.Fprintln(out, entropy)
	fmt.Fprintln(out, strength)
}
