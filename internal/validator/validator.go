package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/cardbook/internal/card"
	"github.com/arcanaland/cardbook/internal/catalog"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DatasetPath string
	Results     ValidationResults

	file    string
	dataset *catalog.DatasetFile
}

func NewValidator(datasetPath string) *Validator {
	return &Validator{
		DatasetPath: datasetPath,
		Results:     ValidationResults{},
	}
}

// Validate checks a dataset file or directory. It returns an error only
// when the dataset cannot be read at all; everything else is reported in
// the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.readDataset(); err != nil {
		return v.Results, err
	}

	v.validateDatasetSection()
	v.validateCards()
	v.validateImages()
	v.validateCoverage()

	return v.Results, nil
}

func (v *Validator) readDataset() error {
	file, err := catalog.ResolveFile(v.DatasetPath)
	if err != nil {
		return err
	}

	df, err := catalog.ReadFile(file)
	if err != nil {
		return err
	}

	v.file = file
	v.dataset = df
	return nil
}

// validateDatasetSection checks the optional dataset metadata
func (v *Validator) validateDatasetSection() {
	if v.dataset.Dataset.ID == "" {
		v.warn("dataset.id is not set")
	}
	if v.dataset.Dataset.Name == "" {
		v.warn("dataset.name is not set")
	}
	if len(v.dataset.Cards) == 0 {
		v.warn("dataset contains no cards")
	}
}

// validateCards checks the collection invariants and per-card content
func (v *Validator) validateCards() {
	v.Results.Errors = append(v.Results.Errors, catalog.Check(v.dataset.Cards)...)

	for i, c := range v.dataset.Cards {
		label := c.ID
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}

		if strings.TrimSpace(c.Description) == "" {
			v.warn(fmt.Sprintf("card %s has no description", label))
		}
		if c.Name != strings.TrimSpace(c.Name) {
			v.warn(fmt.Sprintf("card %s name has leading or trailing whitespace", label))
		}
	}
}

// validateImages checks that every image path points at an existing file in
// the directory for its card type
func (v *Validator) validateImages() {
	baseDir := filepath.Dir(v.file)

	for _, c := range v.dataset.Cards {
		if c.ID == "" {
			continue
		}
		if c.ImagePath == "" {
			v.warn(fmt.Sprintf("card %s has no image_path", c.ID))
			continue
		}

		if dir := c.Type.Dir(); dir != "" && !strings.Contains(filepath.ToSlash(c.ImagePath), "/"+dir+"/") {
			v.warn(fmt.Sprintf("card %s image %s is not under a %s/ directory", c.ID, c.ImagePath, dir))
		}

		if !imageExists(baseDir, c.ImagePath) {
			v.warn(fmt.Sprintf("image not found for card %s: %s", c.ID, c.ImagePath))
		}
	}
}

// validateCoverage warns when a card type has no cards at all
func (v *Validator) validateCoverage() {
	counts := make(map[card.Type]int)
	for _, c := range v.dataset.Cards {
		counts[c.Type]++
	}
	if len(v.dataset.Cards) == 0 {
		return
	}
	for _, t := range card.Types {
		if counts[t] == 0 {
			v.warn(fmt.Sprintf("no %s cards in dataset", t.Label()))
		}
	}
}

func (v *Validator) warn(msg string) {
	v.Results.Warnings = append(v.Results.Warnings, msg)
}

// imageExists looks for a site-rooted image path below baseDir or
// baseDir/public
func imageExists(baseDir, imagePath string) bool {
	rel := strings.TrimPrefix(filepath.FromSlash(imagePath), string(filepath.Separator))
	for _, candidate := range []string{
		filepath.Join(baseDir, rel),
		filepath.Join(baseDir, "public", rel),
	} {
		if _, err := os.Stat(candidate); err == nil {
			return true
		}
	}
	return false
}
