package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/arcanaland/cardbook/internal/card"
)

var (
	// ErrCardNotFound is returned when no card has the requested ID
	ErrCardNotFound = errors.New("card not found")
	// ErrInvalidDataset is returned when a dataset breaks the collection invariants
	ErrInvalidDataset = errors.New("invalid dataset")
)

//go:embed data/cards.toml
var defaultDataset []byte

// Format is the encoding of a dataset file
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// datasetFiles are the file names looked up when a dataset path is a directory
var datasetFiles = []string{"cards.toml", "cards.yaml", "cards.yml", "cards.json"}

// Catalog is a read-only collection of cards
type Catalog struct {
	ID      string
	Name    string
	Version string
	Path    string // Dataset file, empty for the embedded dataset

	cards   []card.Card
	byID    map[string]int
	baseDir string
}

// Dataset configuration structures
type DatasetFile struct {
	Dataset DatasetSection `toml:"dataset" yaml:"dataset" json:"dataset"`
	Cards   []card.Card    `toml:"cards" yaml:"cards" json:"cards"`
}

type DatasetSection struct {
	ID      string `toml:"id" yaml:"id" json:"id"`
	Name    string `toml:"name" yaml:"name" json:"name"`
	Version string `toml:"version" yaml:"version" json:"version"`
}

// LoadDefault loads the dataset embedded in the binary
func LoadDefault(log *zap.Logger) (*Catalog, error) {
	c, err := Parse(defaultDataset, FormatTOML)
	if err != nil {
		return nil, fmt.Errorf("error parsing embedded dataset: %w", err)
	}
	logger(log).Debug("loaded embedded dataset",
		zap.String("dataset", c.ID), zap.Int("cards", c.Len()))
	return c, nil
}

// Load loads a dataset from a file, or from a directory containing one of
// cards.toml, cards.yaml, cards.yml or cards.json
func Load(path string, log *zap.Logger) (*Catalog, error) {
	file, err := ResolveFile(path)
	if err != nil {
		return nil, err
	}

	df, err := ReadFile(file)
	if err != nil {
		return nil, err
	}

	c, err := New(df)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	c.Path = file
	c.baseDir = filepath.Dir(file)

	logger(log).Debug("loaded dataset",
		zap.String("path", file), zap.String("dataset", c.ID), zap.Int("cards", c.Len()))
	return c, nil
}

// ResolveFile returns the dataset file for path, which may be the file
// itself or a dataset directory
func ResolveFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("dataset not found: %s", path)
	}
	if !info.IsDir() {
		return path, nil
	}

	for _, name := range datasetFiles {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no cards file (%s) found in %s", strings.Join(datasetFiles, ", "), path)
}

// ReadFile decodes a dataset file without checking the collection invariants
func ReadFile(path string) (*DatasetFile, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}

	return Decode(data, format)
}

// FormatFromPath picks the dataset format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported dataset format: %s", path)
}

// Decode decodes raw dataset bytes. JSON datasets may be either a bare
// array of cards or an object with dataset and cards keys.
func Decode(data []byte, format Format) (*DatasetFile, error) {
	var df DatasetFile

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &df); err != nil {
			return nil, fmt.Errorf("error parsing TOML dataset: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &df); err != nil {
			return nil, fmt.Errorf("error parsing YAML dataset: %w", err)
		}
	case FormatJSON:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &df.Cards); err != nil {
				return nil, fmt.Errorf("error parsing JSON dataset: %w", err)
			}
		} else if err := json.Unmarshal(trimmed, &df); err != nil {
			return nil, fmt.Errorf("error parsing JSON dataset: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", format)
	}

	return &df, nil
}

// Parse decodes and checks a dataset
func Parse(data []byte, format Format) (*Catalog, error) {
	df, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return New(df)
}

// New builds a catalog from a decoded dataset. The dataset must satisfy the
// collection invariants: unique non-empty IDs, a name, and a known type.
func New(df *DatasetFile) (*Catalog, error) {
	if problems := Check(df.Cards); len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDataset, strings.Join(problems, "; "))
	}

	c := &Catalog{
		ID:      df.Dataset.ID,
		Name:    df.Dataset.Name,
		Version: df.Dataset.Version,
		cards:   make([]card.Card, len(df.Cards)),
		byID:    make(map[string]int, len(df.Cards)),
	}
	copy(c.cards, df.Cards)
	for i, cd := range c.cards {
		c.byID[cd.ID] = i
	}

	return c, nil
}

// Check returns every collection invariant violated by cards
func Check(cards []card.Card) []string {
	var problems []string
	seen := make(map[string]int, len(cards))

	for i, c := range cards {
		if c.ID == "" {
			problems = append(problems, fmt.Sprintf("card #%d has no id", i+1))
		} else if first, ok := seen[c.ID]; ok {
			problems = append(problems, fmt.Sprintf("duplicate id %q (cards #%d and #%d)", c.ID, first+1, i+1))
		} else {
			seen[c.ID] = i
		}

		if strings.TrimSpace(c.Name) == "" {
			problems = append(problems, fmt.Sprintf("card %s has no name", describe(c, i)))
		}

		if !c.Type.Valid() {
			problems = append(problems, fmt.Sprintf("card %s has unknown type %q", describe(c, i), c.Type))
		}
	}

	return problems
}

// Len returns the number of cards
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Cards returns the cards in dataset order. The returned slice is a copy.
func (c *Catalog) Cards() []card.Card {
	out := make([]card.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Card gets a card by its ID
func (c *Catalog) Card(id string) (card.Card, error) {
	i, ok := c.byID[id]
	if !ok {
		return card.Card{}, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	return c.cards[i], nil
}

// CountByType returns the number of cards of each type
func (c *Catalog) CountByType() map[card.Type]int {
	counts := make(map[card.Type]int, len(card.Types))
	for _, t := range card.Types {
		counts[t] = 0
	}
	for _, cd := range c.cards {
		counts[cd.Type]++
	}
	return counts
}

// SetAssetDir sets the directory card image paths are resolved against.
// Datasets loaded from disk default to the dataset's own directory.
func (c *Catalog) SetAssetDir(dir string) {
	c.baseDir = dir
}

// ResolveImage returns the filesystem path of a card's image
func (c *Catalog) ResolveImage(cd card.Card) (string, error) {
	if cd.ImagePath == "" {
		return "", fmt.Errorf("card %s has no image", cd.ID)
	}
	if filepath.IsAbs(cd.ImagePath) {
		if _, err := os.Stat(cd.ImagePath); err == nil {
			return cd.ImagePath, nil
		}
	}
	if c.baseDir == "" {
		return "", fmt.Errorf("no asset directory configured for card %s", cd.ID)
	}

	// Image paths are site-rooted ("/assets/cards/..."), so they are joined
	// below the asset directory, optionally under a public/ folder.
	rel := strings.TrimPrefix(filepath.FromSlash(cd.ImagePath), string(filepath.Separator))
	for _, candidate := range []string{
		filepath.Join(c.baseDir, rel),
		filepath.Join(c.baseDir, "public", rel),
	} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("image not found for card %s: %s", cd.ID, cd.ImagePath)
}

// describe names a card for error messages
func describe(c card.Card, i int) string {
	if c.ID != "" {
		return c.ID
	}
	return fmt.Sprintf("#%d", i+1)
}

func logger(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
