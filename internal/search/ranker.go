// Package search implements the lexical relevance ranker that grounds the
// chat assistant. It is a cheap, transparent heuristic: integer weights,
// substring matching, no IDF or length normalization. The weight ordering
// (tribe > title > category > keyword > content word) is load-bearing and
// must not be tuned.
package search

import (
	"sort"
	"strings"

	"github.com/urithi-ke/urithi/internal/model"
)

// Scoring weights. An exact community-name mention is the strongest signal,
// loose content-word overlap the weakest.
const (
	weightTribe       = 10 // query contains the fact's tribe
	weightTitle       = 8  // query contains the entire title
	weightCategory    = 5  // query contains the fact's category
	weightKeyword     = 3  // per matching vocabulary keyword
	weightContentWord = 1  // per query word found in the fact content
)

// minWordLen filters stop-word-like query tokens ("is", "a", "of")
const minWordLen = 3

// ScoredFact pairs a fact with its relevance score, for display surfaces
// that want the scoring to stay explainable.
type ScoredFact struct {
	Fact  model.Fact
	Score int
}

// Score computes the relevance of one fact to a lower-cased query.
// queryWords must already be lower-cased and length-filtered.
func Score(queryLower string, queryWords []string, fact *model.Fact) int {
	score := 0

	if fact.Tribe != "" && strings.Contains(queryLower, strings.ToLower(fact.Tribe)) {
		score += weightTribe
	}
	if fact.Category != "" && strings.Contains(queryLower, fact.Category) {
		score += weightCategory
	}
	if strings.Contains(queryLower, strings.ToLower(fact.Title)) {
		score += weightTitle
	}
	for _, keyword := range fact.Keywords {
		if strings.Contains(queryLower, keyword) {
			score += weightKeyword
		}
	}
	contentLower := strings.ToLower(fact.Content)
	for _, word := range queryWords {
		if strings.Contains(contentLower, word) {
			score += weightContentWord
		}
	}

	return score
}

// Rank scores every fact against the query and returns the matches (score > 0)
// ordered most-to-least relevant. Facts with equal scores keep their corpus
// order, so the sort must stay stable. Pure function; safe to call
// concurrently over the same corpus.
func Rank(query string, facts []model.Fact) []ScoredFact {
	queryLower := strings.ToLower(query)
	queryWords := splitQuery(queryLower)

	var scored []ScoredFact
	for i := range facts {
		if s := Score(queryLower, queryWords, &facts[i]); s > 0 {
			scored = append(scored, ScoredFact{Fact: facts[i], Score: s})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// TopFacts returns the maxResults highest-scoring facts for the query.
// Never errors: an empty query, an empty corpus, or maxResults <= 0 all
// yield an empty slice.
func TopFacts(query string, facts []model.Fact, maxResults int) []model.Fact {
	if maxResults <= 0 || len(facts) == 0 {
		return []model.Fact{}
	}

	scored := Rank(query, facts)
	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}

	out := make([]model.Fact, len(scored))
	for i, s := range scored {
		out[i] = s.Fact
	}
	return out
}

// splitQuery tokenizes a lower-cased query on whitespace, dropping tokens
// too short to carry signal.
func splitQuery(queryLower string) []string {
	var words []string
	for _, w := range strings.Fields(queryLower) {
		if len(w) >= minWordLen {
			words = append(words, w)
		}
	}
	return words
}
