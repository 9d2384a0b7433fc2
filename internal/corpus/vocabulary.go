package corpus

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vocabulary is the controlled list of terms used to annotate facts with
// keywords. It is configuration data, not derived from the corpus.
type Vocabulary struct {
	terms []string
}

// DefaultVocabulary returns the built-in keyword vocabulary: Kenyan
// communities, cultural-practice categories, and common domain terms.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		terms: []string{
			// Communities
			"kikuyu", "maasai", "luo", "luhya", "kalenjin", "kamba", "kisii", "meru",
			"mijikenda", "turkana", "samburu", "pokot", "embu", "taita",
			// Categories
			"food", "ceremony", "wedding", "marriage", "dance", "music", "language",
			"tradition", "ritual", "celebration", "spiritual", "religion", "art", "craft",
			// Common terms
			"greeting", "hello", "warrior", "circumcision", "initiation", "naming",
			"funeral", "harvest", "cattle", "fish", "ugali", "githeri", "milk", "meat",
			"festival", "clothing", "jewelry", "beads", "pottery", "drums",
		},
	}
}

// vocabularyFile is the YAML shape of a vocabulary override file
type vocabularyFile struct {
	Terms []string `yaml:"terms"`
}

// LoadVocabulary reads a vocabulary from a YAML file. Terms are lower-cased
// and deduplicated; an empty file falls back to the default vocabulary.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}

	var file vocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse vocabulary: %w", err)
	}

	seen := make(map[string]bool)
	var terms []string
	for _, term := range file.Terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}

	if len(terms) == 0 {
		return DefaultVocabulary(), nil
	}

	return &Vocabulary{terms: terms}, nil
}

// Terms returns a copy of the vocabulary terms.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// Len returns the number of terms in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Extract returns every vocabulary term that occurs in the lower-cased text
// as a literal substring. Matching is deliberately not word-boundary aware:
// "artist" matches the term "art". The weights in the ranker depend on this.
func (v *Vocabulary) Extract(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, term := range v.terms {
		if strings.Contains(lower, term) {
			found = append(found, term)
		}
	}
	return found
}
