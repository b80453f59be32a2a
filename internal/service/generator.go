package service

import (
	"context"

	"github.com/pantrychef/backend/internal/types"
)

// GenerateOptions tunes a single generation request.
type GenerateOptions struct {
	// NumRecipes is the number of results to return.
	NumRecipes int
	// MaxAdditional is the largest number of missing ingredients a recipe
	// may have and still be included.
	MaxAdditional int
	// DuplicatePolicy controls repeated pantry entries.
	DuplicatePolicy DuplicatePolicy
}

// RecipeGenerator runs the whole pipeline: pantry normalization, resilient
// search and enrichment, then scoring and ranking.
type RecipeGenerator struct {
	fetcher *Fetcher
}

// NewRecipeGenerator creates a generator over the given fetcher.
func NewRecipeGenerator(fetcher *Fetcher) *RecipeGenerator {
	return &RecipeGenerator{fetcher: fetcher}
}

// Generate produces at most opts.NumRecipes ranked recipes for the given raw
// ingredient list. Ingredient validation errors come back verbatim so the
// caller can report the offending entry.
func (g *RecipeGenerator) Generate(ctx context.Context, rawIngredients []string, opts GenerateOptions) ([]types.RankedRecipe, error) {
	pantry := NewPantry(opts.DuplicatePolicy)
	if err := pantry.AddAll(rawIngredients); err != nil {
		return nil, err
	}
	if pantry.Len() == 0 {
		return nil, ErrEmptyIngredient
	}

	enriched, err := g.fetcher.Fetch(ctx, pantry.Items(), opts.NumRecipes)
	if err != nil {
		return nil, err
	}

	return BuildRecipeSet(enriched, pantry.Variants(), opts.MaxAdditional, opts.NumRecipes), nil
}
