package corpus

import (
	"strings"
	"sync"

	"github.com/urithi-ke/urithi/internal/model"
)

// Loader turns raw fact rows into normalized, keyword-annotated facts
type Loader struct {
	vocab *Vocabulary
}

// NewLoader creates a loader using the given vocabulary. A nil vocabulary
// falls back to the default one.
func NewLoader(vocab *Vocabulary) *Loader {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Loader{vocab: vocab}
}

// Build transforms raw rows into Facts. IDs are 1-based positions in the
// input sequence. The input is never mutated; a nil or empty input yields
// an empty corpus, which callers treat as "no grounding available".
func (l *Loader) Build(rows []model.RawFact) []model.Fact {
	if len(rows) == 0 {
		return []model.Fact{}
	}

	facts := make([]model.Fact, 0, len(rows))
	for i, row := range rows {
		facts = append(facts, model.Fact{
			ID:       i + 1,
			Tribe:    row.CulturalGroup,
			Category: strings.ToLower(row.Category),
			Title:    row.Title,
			Content:  buildContent(row),
			Region:   row.Region,
			Keywords: l.vocab.Extract(row.CulturalGroup + " " + row.Category + " " + row.Title + " " + row.Description),
		})
	}
	return facts
}

// buildContent assembles the fact body. Optional fields contribute nothing
// when empty, including their separators.
func buildContent(row model.RawFact) string {
	var b strings.Builder
	b.WriteString(row.Description)
	if row.CulturalSignificance != "" {
		b.WriteString("\n\nCultural Significance: ")
		b.WriteString(row.CulturalSignificance)
	}
	if row.Region != "" {
		b.WriteString("\n\nRegion: ")
		b.WriteString(row.Region)
	}
	return b.String()
}

// Cache holds a corpus built once and reused for the process lifetime.
// It replaces the module-level global of earlier iterations: construct one
// at startup and hand it to whatever needs the facts.
type Cache struct {
	once  sync.Once
	build func() []model.Fact
	facts []model.Fact
}

// NewCache creates a corpus cache around a build function. The function is
// invoked at most once, on first use.
func NewCache(build func() []model.Fact) *Cache {
	return &Cache{build: build}
}

// Facts returns the cached corpus, building it on first call. Safe for
// concurrent use.
func (c *Cache) Facts() []model.Fact {
	c.once.Do(func() {
		c.facts = c.build()
		if c.facts == nil {
			c.facts = []model.Fact{}
		}
	})
	return c.facts
}

// Ready reports whether the corpus has at least one fact.
func (c *Cache) Ready() bool {
	return len(c.Facts()) > 0
}
