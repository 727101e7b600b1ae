// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/passmith/passmith/internal/i18n"
	"github.com/passmith/passmith/internal/secret"
)

func newTestPassphraseModel() *passphraseModel {
	i18n.Init("en")
	return newPassphraseModel(secret.NewPassphraseGenerator(testRepo()))
}

func TestPassphraseFormGenerate(t *testing.T) {
	m := newTestPassphraseModel()
	m.inputs[0].SetValue("3")
	m.inputs[1].SetValue("_")
	m.capitalize = false
	m.focusIndex = ppFocusGenerate

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*passphraseModel)

	if m.err != nil {
		t.Fatalf("unexpected form error: %v", m.err)
	}
	if m.result == nil {
		t.Fatal("expected a result after generate")
	}
	if got := len(strings.Split(m.result.Secret, "_")); got != 3 {
		t.Fatalf("expected 3 segments, got %d (%q)", got, m.result.Secret)
	}
}

func TestPassphraseFormDefaultsWhenEmpty(t *testing.T) {
	m := newTestPassphraseModel()
	m.focusIndex = ppFocusGenerate

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*passphraseModel)

	if m.err != nil {
		t.Fatalf("unexpected form error: %v", m.err)
	}
	if got := len(strings.Split(m.result.Secret, secret.DefaultSeparator)); got != secret.DefaultWordCount {
		t.Fatalf("expected %d segments, got %d", secret.DefaultWordCount, got)
	}
}

func TestPassphraseFormRejectsNonNumericCount(t *testing.T) {
	m := newTestPassphraseModel()
	m.inputs[0].SetValue("three")
	m.focusIndex = ppFocusGenerate

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*passphraseModel)

	if m.err == nil {
		t.Fatal("expected an error for non-numeric word count")
	}
	if m.result != nil {
		t.Fatal("expected no result on error")
	}
}

func TestPassphraseFormShowsGeneratorError(t *testing.T) {
	m := newTestPassphraseModel()
	m.inputs[0].SetValue("1")
	m.focusIndex = ppFocusGenerate

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*passphraseModel)

	if m.err == nil {
		t.Fatal("expected validation error for word count 1")
	}
	if !strings.Contains(m.View(), "Error:") {
		t.Fatal("expected the error to be rendered")
	}
}

func TestPassphraseFormToggles(t *testing.T) {
	m := newTestPassphraseModel()
	m.focusIndex = ppFocusCapitalize

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m = updated.(*passphraseModel)
	if m.capitalize {
		t.Fatal("expected capitalize toggle to flip off")
	}

	m.focusIndex = ppFocusNumbers
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m = updated.(*passphraseModel)
	if !m.numbers {
		t.Fatal("expected numbers toggle to flip on")
	}
}

func TestPassphraseFormEscReturnsToMenu(t *testing.T) {
	m := newTestPassphraseModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(backToMenuMsg); !ok {
		t.Fatalf("expected backToMenuMsg, got %T", cmd())
	}
}

func TestPassphraseFormFocusWraps(t *testing.T) {
	m := newTestPassphraseModel()
	m.focusIndex = ppFocusGenerate

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(*passphraseModel)
	if m.focusIndex != 0 {
		t.Fatalf("expected focus to wrap to 0, got %d", m.focusIndex)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(*passphraseModel)
	if m.focusIndex != ppFocusGenerate {
		t.Fatalf("expected focus to wrap back to the button, got %d", m.focusIndex)
	}
}
