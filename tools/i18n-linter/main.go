// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files for consistency. It scans the Go
// source tree for i18n.T() calls and compares the referenced keys against
// the YAML locale files, reporting keys that are used but missing from the
// primary locale, keys the primary locale carries but nothing references,
// and keys a secondary locale has not translated yet.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

func main() {
	os.Exit(runLint(projectRoot, localesDir, os.Stdout))
}

// runLint performs the full consistency check and returns the process exit
// code: 0 when the locales are consistent, 1 otherwise.
func runLint(root, locales string, out io.Writer) int {
	fmt.Fprintln(out, "🔍 Running i18n linter...")

	primaryKeys, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		fmt.Fprintf(out, "❌ Error loading primary locale '%s': %v\n", primaryLocale, err)
		return 1
	}
	fmt.Fprintf(out, "✅ Loaded %d keys from primary locale (%s).\n", len(primaryKeys), primaryLocale)

	// Bare string literals only count as key usage when their top-level
	// prefix is a real section of the primary locale; otherwise viper config
	// keys ("wordlist.file") and filenames ("passmith.yaml") would show up
	// as undefined translation keys.
	usedKeys, err := findUsedKeys(root, topLevelPrefixes(primaryKeys))
	if err != nil {
		fmt.Fprintf(out, "❌ Error finding used keys: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "✅ Found %d unique translation keys used in source code.\n\n", len(usedKeys))

	localeFiles, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		fmt.Fprintf(out, "❌ Error finding locale files: %v\n", err)
		return 1
	}

	failed := false

	fmt.Fprintln(out, "--- Keys used in code but missing from the primary locale ---")
	if undefined := subtract(usedKeys, primaryKeys); len(undefined) > 0 {
		for _, key := range undefined {
			fmt.Fprintf(out, "  - Undefined: %s\n", key)
		}
		failed = true
	} else {
		fmt.Fprintln(out, "  ✨ None found.")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Orphaned keys (in primary locale but not used in code) ---")
	orphaned := subtract(primaryKeys, usedKeys)
	if len(orphaned) > 0 {
		for _, key := range orphaned {
			fmt.Fprintf(out, "  - Orphaned: %s\n", key)
		}
	} else {
		fmt.Fprintln(out, "  ✨ None found.")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "--- Missing keys in secondary locales ---")
	for _, file := range localeFiles {
		if filepath.Base(file) == primaryLocale {
			continue
		}

		fmt.Fprintf(out, "Checking %s:\n", file)
		secondaryKeys, err := loadKeysFromLocale(file)
		if err != nil {
			fmt.Fprintf(out, "  - ❌ Error loading %s: %v\n", file, err)
			failed = true
			continue
		}

		if missing := subtract(primaryKeys, secondaryKeys); len(missing) > 0 {
			for _, key := range missing {
				fmt.Fprintf(out, "  - Missing: %s\n", key)
			}
			failed = true
		} else {
			fmt.Fprintln(out, "  ✨ All keys present.")
		}
	}

	fmt.Fprintln(out, "\n--- Linter Finished ---")
	if failed {
		fmt.Fprintln(out, "❌ Found issues that need to be addressed.")
		return 1
	}
	if len(orphaned) > 0 {
		fmt.Fprintln(out, "⚠️  Found orphaned keys. Please consider removing them.")
		return 0
	}
	fmt.Fprintln(out, "✅ All translation files are consistent!")
	return 0
}

// subtract returns the sorted keys of a that are absent from b.
func subtract(a, b map[string]struct{}) []string {
	var out []string
	for key := range a {
		if _, ok := b[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// topLevelPrefixes returns the set of section names the flat keys live
// under, e.g. {"menu", "strength"} for menu.title and strength.weak.
func topLevelPrefixes(keys map[string]struct{}) map[string]struct{} {
	prefixes := make(map[string]struct{})
	for key := range keys {
		if i := strings.Index(key, "."); i > 0 {
			prefixes[key[:i]] = struct{}{}
		}
	}
	return prefixes
}

// findUsedKeys scans all non-test .go files for translation key usage:
// explicit i18n.T("key") calls, and bare string literals shaped like keys
// (e.g. in key slices) whose top-level prefix is a known locale section.
func findUsedKeys(root string, prefixes map[string]struct{}) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	re := regexp.MustCompile(`i18n\.T\("([^"]+)"|\"([a-z]+\.[a-z\._]+)\"`)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		// The linter itself must not count as key usage.
		if info.IsDir() && info.Name() == "tools" {
			return filepath.SkipDir
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range re.FindAllStringSubmatch(string(content), -1) {
			if match[1] != "" {
				keys[match[1]] = struct{}{}
				continue
			}
			if match[2] == "" {
				continue
			}
			section := match[2][:strings.Index(match[2], ".")]
			if _, ok := prefixes[section]; ok {
				keys[match[2]] = struct{}{}
			}
		}
		return nil
	})

	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into a flat map with dot-separated keys.
func flattenYAML(prefix string, node interface{}, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			newPrefix := k
			if prefix != "" {
				newPrefix = prefix + "." + k
			}
			flattenYAML(newPrefix, val, keys)
		}
	case []interface{}:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
