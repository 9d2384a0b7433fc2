package model

// RawFact is one row of the cultural-facts source before normalization.
// Any field may be empty; none is unique.
type RawFact struct {
	CulturalGroup        string `json:"cultural_group"`
	Category             string `json:"category"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	CulturalSignificance string `json:"cultural_significance,omitempty"`
	Region               string `json:"region,omitempty"`
}

// Fact is a normalized cultural-knowledge record, the unit of retrieval.
// Facts are built once per corpus load and never mutated afterwards.
type Fact struct {
	ID       int      `json:"id"`       // 1-based position in the source sequence
	Tribe    string   `json:"tribe"`    // cultural group, case preserved
	Category string   `json:"category"` // lower-cased
	Title    string   `json:"title"`
	Content  string   `json:"content"` // description + significance + region blocks
	Region   string   `json:"region,omitempty"`
	Keywords []string `json:"keywords"` // controlled-vocabulary terms found in the row
}

// HasKeyword reports whether the fact was annotated with the given term.
func (f *Fact) HasKeyword(term string) bool {
	for _, k := range f.Keywords {
		if k == term {
			return true
		}
	}
	return false
}
