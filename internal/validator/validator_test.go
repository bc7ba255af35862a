package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestValidateCleanDataset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cards.toml", `
[dataset]
id = "mini"
name = "Mini"

[[cards]]
id = "wood-cutter"
name = "Wood Cutter"
type = "occupation"
description = "More wood"
image_path = "/assets/cards/occupations/wood-cutter.webp"

[[cards]]
id = "canoe"
name = "Canoe"
type = "minor-improvement"
description = "Fishing bonus"
image_path = "/assets/cards/minor-improvements/canoe.webp"

[[cards]]
id = "well"
name = "Well"
type = "major-improvement"
description = "Food over 5 rounds"
image_path = "/assets/cards/major-improvements/well.webp"
`)
	writeFile(t, dir, "assets/cards/occupations/wood-cutter.webp", "x")
	writeFile(t, dir, "public/assets/cards/minor-improvements/canoe.webp", "x")
	writeFile(t, dir, "assets/cards/major-improvements/well.webp", "x")

	results, err := NewValidator(dir).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateReportsProblems(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cards.json", `[
  {"id": "a", "name": "Clay Oven", "type": "minor-improvement", "description": "Bake bread", "imagePath": "/assets/cards/major-improvements/clay-oven.webp"},
  {"id": "a", "name": "Fireplace", "type": "major-improvement", "description": ""},
  {"id": "x", "name": "Round 1", "type": "action", "description": "Take wood"}
]`)

	results, err := NewValidator(filepath.Join(dir, "cards.json")).Validate()
	require.NoError(t, err)

	assert.Len(t, results.Errors, 2)
	assert.Contains(t, results.Errors[0], `duplicate id "a"`)
	assert.Contains(t, results.Errors[1], `unknown type "action"`)

	assert.Contains(t, results.Warnings, "dataset.id is not set")
	assert.Contains(t, results.Warnings, "card a has no description")
	assert.Contains(t, results.Warnings, "card a has no image_path")
	assert.Contains(t, results.Warnings,
		"card a image /assets/cards/major-improvements/clay-oven.webp is not under a minor-improvements/ directory")
	assert.Contains(t, results.Warnings,
		"image not found for card a: /assets/cards/major-improvements/clay-oven.webp")
	assert.Contains(t, results.Warnings, "no occupation cards in dataset")
}

func TestValidateUnreadableDataset(t *testing.T) {
	dir := t.TempDir()

	_, err := NewValidator(filepath.Join(dir, "missing")).Validate()
	assert.Error(t, err)

	writeFile(t, dir, "cards.toml", "[[cards]\nid=")
	_, err = NewValidator(dir).Validate()
	assert.ErrorContains(t, err, "error parsing TOML dataset")
}
