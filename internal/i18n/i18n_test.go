// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import "testing"

func TestTranslate(t *testing.T) {
	Init("en")

	if got := T("menu.quit"); got != "Quit" {
		t.Fatalf(`T("menu.quit") = %q, want "Quit"`, got)
	}
	if got := T("words.count", 7); got != "Words available: 7" {
		t.Fatalf(`T("words.count", 7) = %q`, got)
	}
	if got := T("result.entropy", 51.7); got != "Entropy: 51.7 bits" {
		t.Fatalf(`T("result.entropy", 51.7) = %q`, got)
	}
}

func TestTranslateUnknownIDVerbatim(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("unknown ID = %q, want verbatim", got)
	}
}

func TestSetLang(t *testing.T) {
	Init("en")
	SetLang("de")
	defer SetLang("en")

	if got := GetLang(); got != "de" {
		t.Fatalf("GetLang() = %q, want de", got)
	}
	if got := T("menu.quit"); got != "Beenden" {
		t.Fatalf(`T("menu.quit") in de = %q, want "Beenden"`, got)
	}
	if got := T("words.count", 7); got != "Verfügbare Wörter: 7" {
		t.Fatalf(`T("words.count", 7) in de = %q`, got)
	}
}

func TestFallbackToEnglish(t *testing.T) {
	// An unsupported language falls back to the default bundle language.
	Init("fr")
	defer Init("en")
	if got := T("menu.quit"); got != "Quit" {
		t.Fatalf(`T("menu.quit") with unsupported lang = %q, want "Quit"`, got)
	}
}

func TestGetAvailableLocales(t *testing.T) {
	locales := GetAvailableLocales()
	if locales["en"] != "English" || locales["de"] != "Deutsch" {
		t.Fatalf("unexpected locales: %v", locales)
	}
	// The map is a copy; callers must not be able to poison the registry.
	locales["en"] = "mutated"
	if GetAvailableLocales()["en"] != "English" {
		t.Fatal("locale registry was mutated through the returned map")
	}
}
