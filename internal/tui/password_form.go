// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/passmith/passmith/internal/i18n"
	"github.com/passmith/passmith/internal/secret"
)

// passwordModel drives the password generation form: a length input, the
// four character-class toggles, the ambiguous filter toggle, and a generate
// button.
type passwordModel struct {
	gen        *secret.PasswordGenerator
	length     textinput.Model
	uppercase  bool
	lowercase  bool
	digits     bool
	symbols    bool
	ambiguous  bool // exclude ambiguous characters
	focusIndex int  // 0 input, 1-5 toggles, 6 generate button
	result     *secret.Result
	status     string
	err        error
}

const (
	pwFocusUppercase = 1
	pwFocusLowercase = 2
	pwFocusDigits    = 3
	pwFocusSymbols   = 4
	pwFocusAmbiguous = 5
	pwFocusGenerate  = 6
)

func newPasswordModel(gen *secret.PasswordGenerator) *passwordModel {
	t := textinput.New()
	t.Cursor.Style = focusedStyle
	t.CharLimit = 3
	t.Width = 12
	t.Prompt = i18n.T("form.length") + ": "
	t.Placeholder = strconv.Itoa(secret.DefaultPasswordLength)
	t.Focus()
	t.TextStyle = focusedStyle

	return &passwordModel{
		gen:       gen,
		length:    t,
		uppercase: true,
		lowercase: true,
		digits:    true,
		symbols:   true,
	}
}

func (m *passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }

		case "c":
			if m.focusIndex > 0 && m.result != nil {
				if err := clipboard.WriteAll(m.result.Secret); err != nil {
					m.status = i18n.T("result.copy_failed", err)
				} else {
					m.status = i18n.T("result.copied")
				}
				return m, nil
			}

		case "r":
			if m.focusIndex > 0 && m.result != nil {
				m.generate()
				return m, nil
			}

		case " ":
			switch m.focusIndex {
			case pwFocusUppercase:
				m.uppercase = !m.uppercase
			case pwFocusLowercase:
				m.lowercase = !m.lowercase
			case pwFocusDigits:
				m.digits = !m.digits
			case pwFocusSymbols:
				m.symbols = !m.symbols
			case pwFocusAmbiguous:
				m.ambiguous = !m.ambiguous
			}
			if m.focusIndex > 0 {
				return m, nil
			}

		case "tab", "shift+tab", "up", "down", "enter":
			s := msg.String()

			if s == "enter" && m.focusIndex == pwFocusGenerate {
				m.generate()
				return m, nil
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex > pwFocusGenerate {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = pwFocusGenerate
			}

			if m.focusIndex == 0 {
				m.length.TextStyle = focusedStyle
				return m, m.length.Focus()
			}
			m.length.Blur()
			m.length.TextStyle = lipgloss.NewStyle()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.length, cmd = m.length.Update(msg)
	return m, cmd
}

// generate reads the form, validates, and produces a new password.
func (m *passwordModel) generate() {
	m.err = nil
	m.status = ""
	m.result = nil

	opts := secret.PasswordOptions{
		Uppercase:        m.uppercase,
		Lowercase:        m.lowercase,
		Digits:           m.digits,
		Symbols:          m.symbols,
		ExcludeAmbiguous: m.ambiguous,
	}
	if raw := strings.TrimSpace(m.length.Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			m.err = fmt.Errorf("%s: %q", i18n.T("form.length"), raw)
			return
		}
		opts.Length = n
	}

	res, err := m.gen.Generate(opts)
	if err != nil {
		m.err = err
		return
	}
	m.result = &res
}

func (m *passwordModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T("menu.generate_password")))
	b.WriteString("\n\n")
	b.WriteString(m.length.View())
	b.WriteString("\n")
	b.WriteString(renderToggle(i18n.T("form.uppercase"), m.uppercase, m.focusIndex == pwFocusUppercase))
	b.WriteString("\n")
	b.WriteString(renderToggle(i18n.T("form.lowercase"), m.lowercase, m.focusIndex == pwFocusLowercase))
	b.WriteString("\n")
	b.WriteString(renderToggle(i18n.T("form.digits"), m.digits, m.focusIndex == pwFocusDigits))
	b.WriteString("\n")
	b.WriteString(renderToggle(i18n.T("form.symbols"), m.symbols, m.focusIndex == pwFocusSymbols))
	b.WriteString("\n")
	b.WriteString(renderToggle(i18n.T("form.exclude_ambiguous"), m.ambiguous, m.focusIndex == pwFocusAmbiguous))
	b.WriteString("\n\n")
	b.WriteString(renderButton(i18n.T("form.generate"), m.focusIndex == pwFocusGenerate))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(i18n.T("tui.error", m.err)) + "\n")
	}
	if m.result != nil {
		b.WriteString("\n" + renderResult(i18n.T("result.password_title"), *m.result))
		b.WriteString("\n" + helpStyle.Render(i18n.T("tui.help_result")) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusMessageStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(i18n.T("tui.help_form")))
	return docStyle.Render(b.String())
}
