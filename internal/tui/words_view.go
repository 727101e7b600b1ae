// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/passmith/passmith/internal/i18n"
	"github.com/passmith/passmith/internal/wordlist"
)

// wordsModel shows repository statistics and lets the user add or remove
// words for the current session.
type wordsModel struct {
	repo       *wordlist.Repository
	inputs     []textinput.Model // 0: add (comma-separated), 1: remove
	focusIndex int
	status     string
}

func newWordsModel(repo *wordlist.Repository) *wordsModel {
	m := &wordsModel{
		repo:   repo,
		inputs: make([]textinput.Model, 2),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 128
		t.Width = 40

		switch i {
		case 0:
			t.Prompt = i18n.T("words.add_prompt") + ": "
			t.Placeholder = "correct, horse, battery"
		case 1:
			t.Prompt = i18n.T("words.remove_prompt") + ": "
			t.Placeholder = "staple"
		}
		m.inputs[i] = t
	}

	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle
	return m
}

func (m *wordsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *wordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }

		case "enter":
			m.apply()
			return m, nil

		case "tab", "shift+tab", "up", "down":
			s := msg.String()
			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex >= len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs) - 1
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := range m.inputs {
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

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

// apply runs the action for the focused input.
func (m *wordsModel) apply() {
	m.status = ""
	switch m.focusIndex {
	case 0:
		raw := strings.Split(m.inputs[0].Value(), ",")
		var words []string
		for _, w := range raw {
			if strings.TrimSpace(w) != "" {
				words = append(words, w)
			}
		}
		if len(words) == 0 {
			return
		}
		m.repo.AddWords(words)
		m.inputs[0].SetValue("")
		m.status = i18n.T("words.added", len(words))
	case 1:
		word := strings.TrimSpace(m.inputs[1].Value())
		if word == "" {
			return
		}
		if m.repo.RemoveWord(word) {
			m.status = i18n.T("words.removed", word)
		} else {
			m.status = i18n.T("words.not_found", word)
		}
		m.inputs[1].SetValue("")
	}
}

func (m *wordsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T("words.title")))
	b.WriteString("\n\n")
	b.WriteString(i18n.T("words.count", m.repo.WordCount()))
	b.WriteString("\n")
	b.WriteString(i18n.T("words.sample", strings.Join(sampleWords(m.repo, 10), ", ")))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusMessageStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(i18n.T("tui.help_form")))
	return docStyle.Render(b.String())
}

// sampleWords returns up to n words from the repository for display.
func sampleWords(repo *wordlist.Repository, n int) []string {
	words := repo.Words()
	if len(words) > n {
		words = words[:n]
	}
	return words
}
