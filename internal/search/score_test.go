package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    float64
	}{
		{"fire", "fireplace", 0},
		{"place", "fireplace", 0},
		{"firepalce", "fireplace", 2.0 / 9.0},
		{"oven", "stove", 0.25},
		{"xyz", "abc", 1},
		{"abc", "", 1},
		{"", "anything", 0},
		{"ofen", "öfen", 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.text, func(t *testing.T) {
			got := Score(normalize(tt.pattern), normalize(tt.text))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
