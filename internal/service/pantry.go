package service

import (
	"errors"
	"strings"

	"github.com/jinzhu/inflection"
)

var (
	// ErrEmptyIngredient is returned when an ingredient is blank after
	// normalization.
	ErrEmptyIngredient = errors.New("ingredient is empty")
	// ErrDuplicateIngredient is returned when an ingredient is already in
	// the pantry (case-insensitive).
	ErrDuplicateIngredient = errors.New("ingredient already added")
)

// DuplicatePolicy controls what happens when the same ingredient is added
// twice. Both behaviors exist in the wild; the default surfaces an error.
type DuplicatePolicy int

const (
	// DuplicateReject returns ErrDuplicateIngredient to the caller.
	DuplicateReject DuplicatePolicy = iota
	// DuplicateIgnore silently drops the repeated entry.
	DuplicateIgnore
)

// NormalizeIngredient canonicalizes a free-text ingredient name.
func NormalizeIngredient(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Pantry is the user's ordered list of available ingredients. Entries are
// normalized and unique under case-insensitive equality; insertion order is
// preserved for display.
type Pantry struct {
	policy DuplicatePolicy
	items  []string
}

// NewPantry creates an empty pantry with the given duplicate policy.
func NewPantry(policy DuplicatePolicy) *Pantry {
	return &Pantry{policy: policy}
}

// Add normalizes and appends an ingredient. Blank input is rejected;
// duplicates are handled per the pantry's policy.
func (p *Pantry) Add(raw string) error {
	name := NormalizeIngredient(raw)
	if name == "" {
		return ErrEmptyIngredient
	}
	for _, existing := range p.items {
		if existing == name {
			if p.policy == DuplicateIgnore {
				return nil
			}
			return ErrDuplicateIngredient
		}
	}
	p.items = append(p.items, name)
	return nil
}

// AddAll adds each ingredient in order, stopping at the first error.
func (p *Pantry) AddAll(raw []string) error {
	for _, r := range raw {
		if err := p.Add(r); err != nil {
			return err
		}
	}
	return nil
}

// Items returns the pantry contents in insertion order.
func (p *Pantry) Items() []string {
	return p.items
}

// Len returns the number of pantry ingredients.
func (p *Pantry) Len() int {
	return len(p.items)
}

// Variants expands every pantry ingredient into its singular and plural
// forms. The result is a derived, throwaway projection used only for
// substring matching against recipe ingredient names.
func (p *Pantry) Variants() []string {
	variants := make([]string, 0, 2*len(p.items))
	for _, item := range p.items {
		variants = append(variants,
			strings.ToLower(inflection.Singular(item)),
			strings.ToLower(inflection.Plural(item)),
		)
	}
	return variants
}
