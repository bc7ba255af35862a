// Package search implements fuzzy card lookup combined with type filtering.
package search

import (
	"sort"
	"strings"

	"github.com/arcanaland/cardbook/internal/card"
)

// DefaultThreshold accepts minor typos and partial words while excluding
// unrelated text. 0 means exact, 1 accepts anything.
const DefaultThreshold = 0.3

// Field names reported in results
const (
	FieldName        = "name"
	FieldDescription = "description"
)

// State is the user's current search input
type State struct {
	Query  string
	Filter card.Filter
}

// Empty reports whether the query has no searchable text
func (s State) Empty() bool {
	return strings.TrimSpace(s.Query) == ""
}

// Result is a matching card with its score. Score is 0 for an exact
// match and grows towards 1 as the match gets looser.
type Result struct {
	Card  card.Card
	Score float64
	Field string // Field that produced the best score, empty for unscored results
}

// Option configures an Index
type Option func(*Index)

// WithThreshold sets the maximum score a card may have to be returned.
// Values outside [0,1] are clamped.
func WithThreshold(threshold float64) Option {
	return func(idx *Index) {
		idx.threshold = clamp(threshold)
	}
}

type entry struct {
	card        card.Card
	name        []rune
	description []rune
}

// Index holds a fixed card collection prepared for fuzzy matching. It is
// never modified after construction and is safe for concurrent use.
type Index struct {
	entries   []entry
	threshold float64
}

// NewIndex builds an index over cards, keeping their order
func NewIndex(cards []card.Card, opts ...Option) *Index {
	idx := &Index{
		entries:   make([]entry, len(cards)),
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(idx)
	}

	for i, c := range cards {
		idx.entries[i] = entry{
			card:        c,
			name:        normalize(c.Name),
			description: normalize(c.Description),
		}
	}

	return idx
}

// Threshold returns the configured match threshold
func (idx *Index) Threshold() float64 {
	return idx.threshold
}

// Len returns the number of indexed cards
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Query returns the cards to display for state
func (idx *Index) Query(state State) []card.Card {
	results := idx.Search(state)
	cards := make([]card.Card, len(results))
	for i, r := range results {
		cards[i] = r.Card
	}
	return cards
}

// Search returns the matching cards with their scores.
//
// An empty query yields the whole collection in its original order.
// Otherwise each card is scored against its name and description, the
// better field wins, cards above the threshold are dropped and the rest
// are ordered by score; equal scores keep collection order. A filter other
// than all then keeps only cards of that type.
func (idx *Index) Search(state State) []Result {
	results := make([]Result, 0, len(idx.entries))

	if state.Empty() {
		for _, e := range idx.entries {
			if state.Filter.Matches(e.card.Type) {
				results = append(results, Result{Card: e.card})
			}
		}
		return results
	}

	pattern := normalize(state.Query)
	for _, e := range idx.entries {
		// Filtering before scoring gives the same order as filtering the
		// sorted result, since the sort is stable.
		if !state.Filter.Matches(e.card.Type) {
			continue
		}

		score, field := Score(pattern, e.name), FieldName
		if s := Score(pattern, e.description); s < score {
			score, field = s, FieldDescription
		}
		if score <= idx.threshold {
			results = append(results, Result{Card: e.card, Score: score, Field: field})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})

	return results
}

// normalize lower-cases s and collapses runs of whitespace
func normalize(s string) []rune {
	return []rune(strings.Join(strings.Fields(strings.ToLower(s)), " "))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
