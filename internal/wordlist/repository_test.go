// Copyright (c) 2026 Passmith Team
// Passmith - passphrase and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package wordlist

import (
	"errors"
	"fmt"
	"sort"
	"testing"
)

// fakeSource is a test double for the injected word source.
type fakeSource struct {
	words []string
	err   error
}

func (s fakeSource) Load() ([]string, error) {
	return s.words, s.err
}

func TestRandomWordsPermutation(t *testing.T) {
	repo := New([]string{"a", "b", "c"})

	got, err := repo.RandomWords(3)
	if err != nil {
		t.Fatalf("RandomWords(3) failed: %v", err)
	}
	sort.Strings(got)
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected permutation of %v, got %v", want, got)
		}
	}
}

func TestRandomWordsBounds(t *testing.T) {
	repo := New([]string{"a", "b", "c"})

	if _, err := repo.RandomWords(4); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount for oversized request, got %v", err)
	}
	if _, err := repo.RandomWords(0); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount for zero request, got %v", err)
	}
	if _, err := repo.RandomWords(-1); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("expected ErrInvalidCount for negative request, got %v", err)
	}
}

func TestRandomWordsDistinct(t *testing.T) {
	words := make([]string, 20)
	for i := range words {
		words[i] = fmt.Sprintf("word%02d", i)
	}
	repo := New(words)

	for i := 0; i < 50; i++ {
		sample, err := repo.RandomWords(10)
		if err != nil {
			t.Fatalf("RandomWords failed: %v", err)
		}
		seen := map[string]bool{}
		for _, w := range sample {
			if seen[w] {
				t.Fatalf("duplicate %q in sample %v", w, sample)
			}
			seen[w] = true
		}
	}
}

func TestAddWordsNormalizes(t *testing.T) {
	repo := New(nil)
	repo.AddWords([]string{"  Hello ", "WORLD", "", "   ", "go"})

	if got := repo.WordCount(); got != 3 {
		t.Fatalf("expected 3 words, got %d (%v)", got, repo.Words())
	}
	words := repo.Words()
	for i, want := range []string{"hello", "world", "go"} {
		if words[i] != want {
			t.Fatalf("expected %q at %d, got %q", want, i, words[i])
		}
	}
}

func TestAddWordsAllowsDuplicates(t *testing.T) {
	repo := New([]string{"echo"})
	repo.AddWords([]string{"echo", "Echo"})
	if got := repo.WordCount(); got != 3 {
		t.Fatalf("add must not dedupe: expected 3, got %d", got)
	}
}

func TestRemoveWord(t *testing.T) {
	repo := New([]string{"alpha", "bravo", "alpha"})

	if !repo.RemoveWord(" Alpha ") {
		t.Fatal("expected removal of first match")
	}
	if got := repo.WordCount(); got != 2 {
		t.Fatalf("expected 2 words after removal, got %d", got)
	}
	// Second copy still present.
	if !repo.RemoveWord("alpha") {
		t.Fatal("expected second copy to be removable")
	}
	if repo.RemoveWord("alpha") {
		t.Fatal("removing an absent word must return false, not error")
	}
}

func TestWordsReturnsDefensiveCopy(t *testing.T) {
	repo := New([]string{"alpha", "bravo"})

	words := repo.Words()
	words[0] = "mutated"

	if repo.Words()[0] != "alpha" {
		t.Fatal("caller mutation leaked into repository state")
	}
}

func TestLoadFiltersSource(t *testing.T) {
	candidates := make([]string, 0, 130)
	for i := 0; i < 120; i++ {
		candidates = append(candidates, fmt.Sprintf("word%c%c", 'a'+i%26, 'a'+(i/26)%26))
	}
	// Entries the filter must drop.
	candidates = append(candidates, "UPPER", "Mixed", "ab", "withdigit7", "hyphen-ated",
		"two words", "", "excessivelylongcandidate")

	repo := Load(fakeSource{words: candidates}, 3, 12)

	if got := repo.WordCount(); got != 120 {
		t.Fatalf("expected 120 filtered words, got %d", got)
	}
	for _, w := range repo.Words() {
		if !isLowerAlpha(w) {
			t.Fatalf("unfiltered word %q survived", w)
		}
	}
}

func TestLoadDedupesAndSortsSource(t *testing.T) {
	candidates := make([]string, 0, 300)
	for i := 0; i < 120; i++ {
		w := fmt.Sprintf("word%c%c", 'a'+i%26, 'a'+(i/26)%26)
		candidates = append(candidates, w, w) // duplicate every entry
	}
	repo := Load(fakeSource{words: candidates}, 3, 12)

	words := repo.Words()
	if len(words) != 120 {
		t.Fatalf("expected duplicates collapsed to 120, got %d", len(words))
	}
	if !sort.StringsAreSorted(words) {
		t.Fatal("expected sorted word list")
	}
}

func TestLoadFallsBackOnSourceError(t *testing.T) {
	repo := Load(fakeSource{err: errors.New("corpus unavailable")}, 3, 12)
	if repo.WordCount() < viabilityThreshold {
		t.Fatalf("fallback list too small: %d", repo.WordCount())
	}
}

func TestLoadFallsBackBelowViabilityThreshold(t *testing.T) {
	repo := Load(fakeSource{words: []string{"just", "a", "few", "words"}}, 3, 12)
	if repo.WordCount() < viabilityThreshold {
		t.Fatalf("expected fallback list, got %d words", repo.WordCount())
	}
	// The tiny source itself must not be what we ended up with.
	if repo.RemoveWord("just") && repo.WordCount() < viabilityThreshold {
		t.Fatal("repository appears to hold the non-viable source list")
	}
}

func TestLoadNilSourceUsesFallback(t *testing.T) {
	repo := Load(nil, 3, 12)
	if repo.WordCount() < viabilityThreshold {
		t.Fatalf("fallback list too small: %d", repo.WordCount())
	}
}

func TestLoadAppliesLengthBoundsToFallback(t *testing.T) {
	repo := Load(nil, 5, 12)
	for _, w := range repo.Words() {
		if len(w) < 5 || len(w) > 12 {
			t.Fatalf("word %q violates length bounds", w)
		}
	}
}
