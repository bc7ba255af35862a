package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned when a card type is outside the closed set
var ErrUnknownType = errors.New("unknown card type")

// Type is the category of a card
type Type string

const (
	Occupation       Type = "occupation"
	MinorImprovement Type = "minor-improvement"
	MajorImprovement Type = "major-improvement"
)

// Types lists every card type in display order
var Types = []Type{Occupation, MinorImprovement, MajorImprovement}

// ParseType converts a raw string into a Type
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return t, nil
}

// Valid reports whether t is one of the known types
func (t Type) Valid() bool {
	switch t {
	case Occupation, MinorImprovement, MajorImprovement:
		return true
	}
	return false
}

// Label returns the human readable form, e.g. "minor improvement"
func (t Type) Label() string {
	return strings.ReplaceAll(string(t), "-", " ")
}

// Dir returns the asset directory name used for the type's images
func (t Type) Dir() string {
	switch t {
	case Occupation:
		return "occupations"
	case MinorImprovement:
		return "minor-improvements"
	case MajorImprovement:
		return "major-improvements"
	}
	return ""
}

// Filter selects either every card or a single type
type Filter string

// All matches every card type. The zero Filter behaves the same way.
const All Filter = "all"

// Filters lists every filter in display order
var Filters = []Filter{All, Filter(Occupation), Filter(MinorImprovement), Filter(MajorImprovement)}

// ParseFilter converts a raw string into a Filter. An empty string is All.
func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(All) {
		return All, nil
	}
	t, err := ParseType(s)
	if err != nil {
		return "", err
	}
	return Filter(t), nil
}

// IsAll reports whether the filter lets every type through
func (f Filter) IsAll() bool {
	return f == "" || f == All
}

// Matches reports whether a card of type t passes the filter
func (f Filter) Matches(t Type) bool {
	return f.IsAll() || Type(f) == t
}

// Label returns the human readable form of the filter
func (f Filter) Label() string {
	if f.IsAll() {
		return "all"
	}
	return Type(f).Label()
}

// Card represents a single card record
type Card struct {
	ID          string `json:"id" toml:"id" yaml:"id"`                            // Unique identifier (e.g., clay-oven)
	Name        string `json:"name" toml:"name" yaml:"name"`                      // Display name
	Type        Type   `json:"type" toml:"type" yaml:"type"`                      // occupation, minor-improvement or major-improvement
	Description string `json:"description" toml:"description" yaml:"description"` // Free text, searched together with the name
	ImagePath   string `json:"imagePath" toml:"image_path" yaml:"imagePath"`      // Path to the card art
}
