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

// A simple style for focused text inputs.
var focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))

// passphraseModel drives the passphrase generation form: two text inputs
// (word count, separator), two toggles, and a generate button.
type passphraseModel struct {
	gen        *secret.PassphraseGenerator
	inputs     []textinput.Model // 0: word count, 1: separator
	capitalize bool
	numbers    bool
	focusIndex int // 0-1 inputs, 2-3 toggles, 4 generate button
	result     *secret.Result
	status     string
	err        error
}

const (
	ppFocusCapitalize = 2
	ppFocusNumbers    = 3
	ppFocusGenerate   = 4
)

func newPassphraseModel(gen *secret.PassphraseGenerator) *passphraseModel {
	m := &passphraseModel{
		gen:        gen,
		inputs:     make([]textinput.Model, 2),
		capitalize: true,
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 8
		t.Width = 12

		switch i {
		case 0:
			t.Prompt = i18n.T("form.word_count") + ": "
			t.Placeholder = strconv.Itoa(secret.DefaultWordCount)
		case 1:
			t.Prompt = i18n.T("form.separator") + ": "
			t.Placeholder = secret.DefaultSeparator
		}
		m.inputs[i] = t
	}

	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle
	return m
}

func (m *passphraseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *passphraseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }

		case "c":
			// Copy only when not typing into a text input.
			if m.focusIndex >= len(m.inputs) && m.result != nil {
				if err := clipboard.WriteAll(m.result.Secret); err != nil {
					m.status = i18n.T("result.copy_failed", err)
				} else {
					m.status = i18n.T("result.copied")
				}
				return m, nil
			}

		case "r":
			if m.focusIndex >= len(m.inputs) && m.result != nil {
				m.generate()
				return m, nil
			}

		case " ":
			switch m.focusIndex {
			case ppFocusCapitalize:
				m.capitalize = !m.capitalize
				return m, nil
			case ppFocusNumbers:
				m.numbers = !m.numbers
				return m, nil
			}

		case "tab", "shift+tab", "up", "down", "enter":
			s := msg.String()

			if s == "enter" && m.focusIndex == ppFocusGenerate {
				m.generate()
				return m, nil
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex > ppFocusGenerate {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = ppFocusGenerate
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := 0; i <= len(m.inputs)-1; i++ {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].TextStyle = focusedStyle
					continue
				}
				m.inputs[i].Blur()
				m.inputs[i].TextStyle = lipgloss.NewStyle()
			}
			return m, tea.Batch(cmds...)
		}
	}

	// Hand any other input to the focused text field.
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

// generate reads the form, validates, and produces a new passphrase.
func (m *passphraseModel) generate() {
	m.err = nil
	m.status = ""
	m.result = nil

	opts := secret.PassphraseOptions{
		Separator:      m.inputs[1].Value(),
		Capitalize:     m.capitalize,
		IncludeNumbers: m.numbers,
	}
	if raw := strings.TrimSpace(m.inputs[0].Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			m.err = fmt.Errorf("%s: %q", i18n.T("form.word_count"), raw)
			return
		}
		opts.WordCount = n
	}

	res, err := m.gen.Generate(opts)
	if err != nil {
		m.err = err
		return
	}
	m.result = &res
}

func (m *passphraseModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T("menu.generate_passphrase")))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString(renderToggle(i18n.T("form.capitalize"), m.capitalize, m.focusIndex == ppFocusCapitalize))
	b.WriteString("\n")
	b.WriteString(renderToggle(i18n.T("form.include_numbers"), m.numbers, m.focusIndex == ppFocusNumbers))
	b.WriteString("\n\n")
	b.WriteString(renderButton(i18n.T("form.generate"), m.focusIndex == ppFocusGenerate))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(i18n.T("tui.error", m.err)) + "\n")
	}
	if m.result != nil {
		b.WriteString("\n" + renderResult(i18n.T("result.passphrase_title"), *m.result))
		b.WriteString("\n" + helpStyle.Render(i18n.T("tui.help_result")) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + statusMessageStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(i18n.T("tui.help_form")))
	return docStyle.Render(b.String())
}

// renderToggle draws a checkbox-style toggle row.
func renderToggle(label string, on, focused bool) string {
	box := "[ ] "
	if on {
		box = "[x] "
	}
	line := box + label
	if focused {
		return selectedItemStyle.Render("▸ " + line)
	}
	return itemStyle.Render("  " + line)
}

// renderButton draws the generate button.
func renderButton(label string, focused bool) string {
	if focused {
		return selectedItemStyle.Render("▸ [ " + label + " ]")
	}
	return itemStyle.Render("  [ " + label + " ]")
}

// renderResult draws the shared secret/entropy/strength block.
func renderResult(title string, res secret.Result) string {
	var b strings.Builder
	b.WriteString(successStyle.Render(title) + "\n\n")
	b.WriteString(secretStyle.Render(res.Secret) + "\n\n")
	b.WriteString(i18n.T("result.entropy", res.Entropy) + "\n")
	b.WriteString(i18n.T("result.strength", strengthLabel(res.Strength)) + "\n")
	return b.String()
}
