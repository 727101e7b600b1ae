// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the interactive terminal interface for Passmith.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that acts as a router to all other sub-views.
package tui // import "github.com/passmith/passmith/internal/tui"

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/passmith/passmith/internal/i18n"
	"github.com/passmith/passmith/internal/secret"
	"github.com/passmith/passmith/internal/wordlist"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// menuView is the main navigation menu.
	menuView viewState = iota
	passphraseView
	passwordView
	wordsView
	languageView
)

// backToMenuMsg signals that a sub-view wants to return to the main menu.
type backToMenuMsg struct{}

// languageChangedMsg signals that the language has changed and the UI should
// be re-initialized.
type languageChangedMsg struct{}

// ConfigSaver persists the active configuration after TUI-side changes such
// as a language switch.
type ConfigSaver interface {
	Save() error
}

// configSaver is set by the CLI layer before the TUI starts. A nil saver
// means language changes apply to the session only.
var configSaver ConfigSaver

// SetConfigSaver injects the saver used to persist configuration changes.
func SetConfigSaver(s ConfigSaver) {
	configSaver = s
}

// mainModel is the top-level model for the TUI. It acts as a state machine
// and router, delegating updates and view rendering to the active sub-model.
type mainModel struct {
	state      viewState
	repo       *wordlist.Repository
	menu       menuModel
	passphrase *passphraseModel
	password   *passwordModel
	words      *wordsModel
	language   languageModel
	width      int
	height     int
	err        error
}

// menuModel holds the state for the main menu.
type menuModel struct {
	choices []string // The menu items to show.
	cursor  int      // Which menu item our cursor is pointing at.
}

// languageModel holds the state for the language selection menu.
type languageModel struct {
	choices     map[string]string // map of lang code to display name
	orderedKeys []string          // for stable iteration
	cursor      int
}

func newLanguageModel() languageModel {
	choices := i18n.GetAvailableLocales()
	keys := make([]string, 0, len(choices))
	for k := range choices {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return languageModel{choices: choices, orderedKeys: keys}
}

// initialModel creates the starting state of the TUI, beginning at the main menu.
func initialModel(repo *wordlist.Repository) mainModel {
	return mainModel{
		state: menuView,
		repo:  repo,
		menu: menuModel{
			choices: []string{
				i18n.T("menu.generate_passphrase"),
				i18n.T("menu.generate_password"),
				i18n.T("menu.word_stats"),
				i18n.T("menu.language"),
				i18n.T("menu.quit"),
			},
		},
	}
}

// Init is the first function called by the Bubble Tea runtime.
func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update is the main message loop. It handles all events and delegates them
// to the active sub-model.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings that work everywhere.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case languageChangedMsg:
		// Re-initialize the entire model so new translations apply everywhere,
		// preserving the window dimensions and the live repository.
		newModel := initialModel(m.repo)
		newModel.width = m.width
		newModel.height = m.height
		return newModel, newModel.Init()
	}

	// Delegate updates to the currently active view.
	switch m.state {
	case passphraseView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, nil
		}
		var updated tea.Model
		updated, cmd = m.passphrase.Update(msg)
		m.passphrase = updated.(*passphraseModel)

	case passwordView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, nil
		}
		var updated tea.Model
		updated, cmd = m.password.Update(msg)
		m.password = updated.(*passwordModel)

	case wordsView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, nil
		}
		var updated tea.Model
		updated, cmd = m.words.Update(msg)
		m.words = updated.(*wordsModel)

	case languageView:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q", "esc":
				m.state = menuView
				return m, nil
			case "up", "k":
				if m.language.cursor > 0 {
					m.language.cursor--
				}
			case "down", "j":
				if m.language.cursor < len(m.language.orderedKeys)-1 {
					m.language.cursor++
				}
			case "enter":
				langCode := m.language.orderedKeys[m.language.cursor]
				i18n.SetLang(langCode)
				viper.Set("language", langCode)
				if configSaver != nil {
					if err := configSaver.Save(); err != nil {
						m.err = fmt.Errorf("failed to save config: %w", err)
					}
				}
				return m, func() tea.Msg { return languageChangedMsg{} }
			}
		}

	default: // menuView
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.menu.cursor > 0 {
					m.menu.cursor--
				}
			case "down", "j":
				if m.menu.cursor < len(m.menu.choices)-1 {
					m.menu.cursor++
				}
			case "enter":
				switch m.menu.cursor {
				case 0: // Generate a passphrase
					m.state = passphraseView
					m.passphrase = newPassphraseModel(secret.NewPassphraseGenerator(m.repo))
					return m, m.passphrase.Init()
				case 1: // Generate a password
					m.state = passwordView
					m.password = newPasswordModel(secret.NewPasswordGenerator())
					return m, m.password.Init()
				case 2: // Word list
					m.state = wordsView
					m.words = newWordsModel(m.repo)
					return m, m.words.Init()
				case 3: // Language
					m.state = languageView
					m.language = newLanguageModel()
					return m, nil
				case 4: // Quit
					return m, tea.Quit
				}
			}
		}
	}

	return m, cmd
}

// View renders the TUI. It delegates rendering to the active sub-model.
func (m mainModel) View() string {
	if m.err != nil {
		return docStyle.Render(errorStyle.Render(i18n.T("tui.error", m.err)))
	}

	switch m.state {
	case passphraseView:
		return m.passphrase.View()
	case passwordView:
		return m.password.View()
	case wordsView:
		return m.words.View()
	case languageView:
		return m.language.View()
	default:
		return m.menu.View()
	}
}

// View renders the main menu.
func (m menuModel) View() string {
	header := mainTitleStyle.Render("🔐 " + i18n.T("app.name"))
	sub := helpStyle.Render(i18n.T("app.tagline"))

	body := titleStyle.Render(i18n.T("menu.title")) + "\n\n"
	for i, choice := range m.choices {
		if m.cursor == i {
			body += selectedItemStyle.Render("▸ "+choice) + "\n"
		} else {
			body += itemStyle.Render("  "+choice) + "\n"
		}
	}

	footer := helpStyle.Render(i18n.T("tui.help_menu"))
	return docStyle.Render(header + "\n" + sub + "\n\n" + body + "\n" + footer)
}

// View renders the language selection list.
func (m languageModel) View() string {
	body := titleStyle.Render(i18n.T("language.title")) + "\n\n"
	for i, code := range m.orderedKeys {
		name := m.choices[code]
		if m.cursor == i {
			body += selectedItemStyle.Render("▸ "+name) + "\n"
		} else {
			body += itemStyle.Render("  "+name) + "\n"
		}
	}
	body += "\n" + helpStyle.Render(i18n.T("tui.help_menu"))
	return docStyle.Render(body)
}

// strengthLabel returns the localized display name for a rating, colored by
// severity.
func strengthLabel(s secret.Strength) string {
	keys := []string{
		"strength.very_weak",
		"strength.weak",
		"strength.fair",
		"strength.good",
		"strength.strong",
		"strength.very_strong",
	}
	if int(s) < 0 || int(s) >= len(keys) {
		return s.String()
	}
	return strengthStyles[int(s)].Render(i18n.T(keys[int(s)]))
}

// Run starts the interactive TUI over the given word repository.
func Run(repo *wordlist.Repository) error {
	p := tea.NewProgram(initialModel(repo), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
