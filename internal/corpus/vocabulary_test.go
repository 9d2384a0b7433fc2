package corpus

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestVocabulary_Extract(t *testing.T) {
	vocab := DefaultVocabulary()

	got := vocab.Extract("Maasai wedding ceremony")
	sort.Strings(got)

	want := []string{"ceremony", "maasai", "wedding"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestVocabulary_Extract_SubstringMatching(t *testing.T) {
	vocab := DefaultVocabulary()

	// Matching is not word-boundary aware: "artist" contains "art"
	got := vocab.Extract("the artist painted")
	found := false
	for _, term := range got {
		if term == "art" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected substring match 'art' inside 'artist', got %v", got)
	}
}

func TestVocabulary_Extract_NoMatch(t *testing.T) {
	vocab := DefaultVocabulary()

	if got := vocab.Extract("quantum chromodynamics"); len(got) != 0 {
		t.Errorf("expected no keywords, got %v", got)
	}
}

func TestLoadVocabulary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.yaml")

	data := "terms:\n  - Maasai\n  - drums\n  - DRUMS\n  - \"  \"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write vocab file: %v", err)
	}

	vocab, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary failed: %v", err)
	}

	// Lower-cased, deduplicated, blanks dropped
	if vocab.Len() != 2 {
		t.Errorf("expected 2 terms, got %d: %v", vocab.Len(), vocab.Terms())
	}
	got := vocab.Extract("maasai drums")
	if len(got) != 2 {
		t.Errorf("expected both terms to match, got %v", got)
	}
}

func TestLoadVocabulary_EmptyFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.yaml")

	if err := os.WriteFile(path, []byte("terms: []\n"), 0644); err != nil {
		t.Fatalf("write vocab file: %v", err)
	}

	vocab, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary failed: %v", err)
	}
	if vocab.Len() == 0 {
		t.Error("expected fallback to default vocabulary")
	}
}

func TestLoadVocabulary_MissingFile(t *testing.T) {
	if _, err := LoadVocabulary("/nonexistent/vocab.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
