package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardbook/internal/card"
	"github.com/arcanaland/cardbook/internal/catalog"
)

func ids(cards []card.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func scenarioCards() []card.Card {
	return []card.Card{
		{ID: "a", Name: "Clay Oven", Type: card.MinorImprovement, Description: "Bake bread"},
		{ID: "b", Name: "Fireplace", Type: card.MajorImprovement, Description: "Cook soup"},
	}
}

func TestQueryScenario(t *testing.T) {
	idx := NewIndex(scenarioCards())

	assert.Equal(t, []string{"a"}, ids(idx.Query(State{Query: "oven", Filter: card.All})))
	assert.Equal(t, []string{"b"}, ids(idx.Query(State{Query: "", Filter: card.Filter(card.MajorImprovement)})))
}

func TestQueryEmptyReturnsEverythingInOrder(t *testing.T) {
	c, err := catalog.LoadDefault(nil)
	require.NoError(t, err)
	idx := NewIndex(c.Cards())

	for _, q := range []string{"", "   ", "\t\n"} {
		got := idx.Query(State{Query: q})
		assert.Equal(t, c.Cards(), got, "query %q", q)
	}
}

func TestQueryFilterOnly(t *testing.T) {
	c, err := catalog.LoadDefault(nil)
	require.NoError(t, err)
	idx := NewIndex(c.Cards())

	for _, typ := range card.Types {
		got := idx.Query(State{Filter: card.Filter(typ)})
		assert.Len(t, got, c.CountByType()[typ])
		for _, cd := range got {
			assert.Equal(t, typ, cd.Type)
		}
	}
}

func TestQueryOrdersBySimilarity(t *testing.T) {
	idx := NewIndex([]card.Card{
		{ID: "stove", Name: "Stove", Type: card.MinorImprovement},
		{ID: "clay", Name: "Clay Oven", Type: card.MajorImprovement},
		{ID: "stone", Name: "Stone Oven", Type: card.MajorImprovement},
		{ID: "well", Name: "Well", Type: card.MajorImprovement, Description: "Food on round spaces"},
	})

	results := idx.Search(State{Query: "oven"})
	require.Len(t, results, 3)
	assert.Equal(t, "clay", results[0].Card.ID)
	assert.Equal(t, "stone", results[1].Card.ID, "equal scores keep collection order")
	assert.Equal(t, "stove", results[2].Card.ID)
	assert.Zero(t, results[0].Score)
	assert.InDelta(t, 0.25, results[2].Score, 1e-9)
	assert.Equal(t, FieldName, results[0].Field)

	filtered := idx.Query(State{Query: "oven", Filter: card.Filter(card.MinorImprovement)})
	assert.Equal(t, []string{"stove"}, ids(filtered))
}

func TestQueryToleratesTypos(t *testing.T) {
	idx := NewIndex(scenarioCards())

	assert.Equal(t, []string{"b"}, ids(idx.Query(State{Query: "firepalce"})))
	assert.Equal(t, []string{"a"}, ids(idx.Query(State{Query: "  CLAY   oven "})))
	assert.Equal(t, []string{"b"}, ids(idx.Query(State{Query: "soup"})), "description is searched")
	assert.Empty(t, idx.Query(State{Query: "sheep"}))
}

func TestQueryThreshold(t *testing.T) {
	strict := NewIndex(scenarioCards(), WithThreshold(0))
	assert.Empty(t, strict.Query(State{Query: "firepalce"}))
	assert.Equal(t, []string{"b"}, ids(strict.Query(State{Query: "fire"})))

	loose := NewIndex(scenarioCards(), WithThreshold(2))
	assert.Equal(t, 1.0, loose.Threshold())
	assert.Len(t, loose.Query(State{Query: "zzz"}), 2)

	assert.Equal(t, DefaultThreshold, NewIndex(nil).Threshold())
}

func TestSearchResultsRespectThreshold(t *testing.T) {
	c, err := catalog.LoadDefault(nil)
	require.NoError(t, err)
	idx := NewIndex(c.Cards())

	for _, q := range []string{"oven", "wood", "harvest", "sheep", "bake bread", "plow", "fense"} {
		results := idx.Search(State{Query: q})
		for i, r := range results {
			assert.LessOrEqual(t, r.Score, idx.Threshold(), "query %q card %s", q, r.Card.ID)
			if i > 0 {
				assert.LessOrEqual(t, results[i-1].Score, r.Score, "query %q not sorted", q)
			}
		}
	}
}

func TestQueryIsIdempotent(t *testing.T) {
	c, err := catalog.LoadDefault(nil)
	require.NoError(t, err)
	idx := NewIndex(c.Cards())

	state := State{Query: "bread", Filter: card.Filter(card.MajorImprovement)}
	first := idx.Query(state)
	second := idx.Query(state)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestQueryEmptyCollection(t *testing.T) {
	idx := NewIndex(nil)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Query(State{}))
	assert.Empty(t, idx.Query(State{Query: "oven", Filter: card.Filter(card.Occupation)}))
}
