package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFlattenYAMLAndLoadKeys(t *testing.T) {
	// Create nested map and flatten
	m := map[string]interface{}{
		"top": map[string]interface{}{
			"sub": "value",
			"arr": []interface{}{"one", "two"},
		},
		"other": "v",
	}
	keys := make(map[string]struct{})
	flattenYAML("", m, keys)
	if _, ok := keys["top.sub"]; !ok {
		t.Fatalf("expected top.sub in keys")
	}
	if _, ok := keys["top.arr[0]"]; !ok {
		t.Fatalf("expected top.arr[0] in keys")
	}

	// Write YAML to temp file and load via loadKeysFromLocale
	dir := t.TempDir()
	p := filepath.Join(dir, "test.yaml")
	data, _ := yaml.Marshal(m)
	if err := os.WriteFile(p, data, 0600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	got, err := loadKeysFromLocale(p)
	if err != nil {
		t.Fatalf("loadKeysFromLocale failed: %v", err)
	}
	if _, ok := got["top.sub"]; !ok {
		t.Fatalf("expected loaded key top.sub")
	}
}

func TestTopLevelPrefixes(t *testing.T) {
	keys := map[string]struct{}{
		"menu.title":    {},
		"menu.quit":     {},
		"strength.weak": {},
	}
	prefixes := topLevelPrefixes(keys)
	if len(prefixes) != 2 {
		t.Fatalf("expected 2 prefixes, got %v", prefixes)
	}
	if _, ok := prefixes["menu"]; !ok {
		t.Fatalf("expected menu prefix, got %v", prefixes)
	}
	if _, ok := prefixes["strength"]; !ok {
		t.Fatalf("expected strength prefix, got %v", prefixes)
	}
}

func TestFindUsedKeysIgnoresConfigKeyLiterals(t *testing.T) {
	dir := t.TempDir()
	src := `package foo
func f(){
	_ = i18n.T("my.key")
	labels := []string{"strength.weak", "strength.good"}
	_ = labels
	defaults := map[string]any{"wordlist.file": "", "passphrase.words": 4}
	_ = defaults
	v.SetConfigName("passmith.yaml")
	bar("not a key")
}`
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := filepath.Join(dir, "sub", "a.go")
	if err := os.WriteFile(p, []byte(src), 0644); err != nil {
		t.Fatalf("write go: %v", err)
	}

	prefixes := map[string]struct{}{"my": {}, "strength": {}}
	used, err := findUsedKeys(dir, prefixes)
	if err != nil {
		t.Fatalf("findUsedKeys failed: %v", err)
	}
	if _, ok := used["my.key"]; !ok {
		t.Fatalf("expected my.key found in used keys")
	}
	if _, ok := used["strength.weak"]; !ok {
		t.Fatalf("expected key-shaped literal strength.weak to be picked up")
	}
	for _, literal := range []string{"wordlist.file", "passphrase.words", "passmith.yaml"} {
		if _, ok := used[literal]; ok {
			t.Fatalf("config literal %q must not count as key usage", literal)
		}
	}
	if _, ok := used["not a key"]; ok {
		t.Fatalf("did not expect plain prose to be flagged as a key")
	}
}

func TestSubtract(t *testing.T) {
	a := map[string]struct{}{"x": {}, "y": {}, "z": {}}
	b := map[string]struct{}{"y": {}}
	got := subtract(a, b)
	if len(got) != 2 || got[0] != "x" || got[1] != "z" {
		t.Fatalf("unexpected subtract result: %v", got)
	}
}

// writeLintFixture builds a small source tree with the given locales and one
// Go file, returning the tree root and the locales dir.
func writeLintFixture(t *testing.T, goSrc, enYAML, deYAML string) (string, string) {
	t.Helper()
	root := t.TempDir()
	locales := filepath.Join(root, "internal", "i18n", "locales")
	if err := os.MkdirAll(locales, 0755); err != nil {
		t.Fatalf("mkdir locales: %v", err)
	}
	if err := os.WriteFile(filepath.Join(locales, "en.yaml"), []byte(enYAML), 0644); err != nil {
		t.Fatalf("write en.yaml: %v", err)
	}
	if err := os.WriteFile(filepath.Join(locales, "de.yaml"), []byte(deYAML), 0644); err != nil {
		t.Fatalf("write de.yaml: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "a.go"), []byte(goSrc), 0644); err != nil {
		t.Fatalf("write a.go: %v", err)
	}
	return root, locales
}

func TestRunLintCleanTreeWithConfigLiterals(t *testing.T) {
	// A consistent tree must pass even when the source carries key-shaped
	// config literals and yaml filenames.
	src := `package foo
func f(){
	_ = i18n.T("menu.title")
	labels := []string{"strength.weak"}
	_ = labels
	defaults := map[string]any{"wordlist.file": "", "password.length": 12}
	_ = defaults
	v.SetConfigName("passmith.yaml")
}`
	en := "menu:\n  title: \"Title\"\nstrength:\n  weak: \"Weak\"\n"
	de := "menu:\n  title: \"Titel\"\nstrength:\n  weak: \"Schwach\"\n"
	root, locales := writeLintFixture(t, src, en, de)

	var out bytes.Buffer
	if code := runLint(root, locales, &out); code != 0 {
		t.Fatalf("expected exit code 0 for a clean tree, got %d:\n%s", code, out.String())
	}
	if strings.Contains(out.String(), "Undefined") {
		t.Fatalf("clean tree reported undefined keys:\n%s", out.String())
	}
}

func TestRunLintReportsUndefinedKey(t *testing.T) {
	src := `package foo
func f(){
	_ = i18n.T("menu.missing")
}`
	en := "menu:\n  title: \"Title\"\n"
	de := "menu:\n  title: \"Titel\"\n"
	root, locales := writeLintFixture(t, src, en, de)

	var out bytes.Buffer
	if code := runLint(root, locales, &out); code != 1 {
		t.Fatalf("expected exit code 1 for an undefined key, got %d:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "Undefined: menu.missing") {
		t.Fatalf("expected undefined-key report:\n%s", out.String())
	}
}

func TestRunLintReportsMissingSecondaryKey(t *testing.T) {
	src := `package foo
func f(){
	_ = i18n.T("menu.title")
	_ = i18n.T("menu.quit")
}`
	en := "menu:\n  title: \"Title\"\n  quit: \"Quit\"\n"
	de := "menu:\n  title: \"Titel\"\n"
	root, locales := writeLintFixture(t, src, en, de)

	var out bytes.Buffer
	if code := runLint(root, locales, &out); code != 1 {
		t.Fatalf("expected exit code 1 for a missing secondary key, got %d:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "Missing: menu.quit") {
		t.Fatalf("expected missing-key report:\n%s", out.String())
	}
}
