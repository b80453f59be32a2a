package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/types"
)

func enrichedWithIngredients(names ...string) *types.EnrichedRecipe {
	recipe := &types.EnrichedRecipe{}
	for _, name := range names {
		recipe.ExtendedIngredients = append(recipe.ExtendedIngredients, types.RecipeIngredient{
			Name:     name,
			Original: name,
		})
	}
	return recipe
}

func TestScoreRecipePartitionsIngredients(t *testing.T) {
	p := NewPantry(DuplicateReject)
	require.NoError(t, p.AddAll([]string{"tomato", "onion", "beef"}))

	recipe := enrichedWithIngredients("roma tomatoes", "red onion", "ground beef", "parmesan cheese")
	result := ScoreRecipe(recipe, p.Variants())

	assert.Equal(t, 1, result.MissingCount())
	require.Len(t, result.Missing, 1)
	assert.Equal(t, "parmesan cheese", result.Missing[0].Name)
	assert.Len(t, result.Available, 3)
}

func TestScoreRecipeMatchesPluralVariants(t *testing.T) {
	p := NewPantry(DuplicateReject)
	require.NoError(t, p.Add("tomatoes"))

	recipe := enrichedWithIngredients("diced tomato")
	result := ScoreRecipe(recipe, p.Variants())

	assert.Equal(t, 0, result.MissingCount())
}

func TestScoreRecipeUnnamedIngredientIsMissing(t *testing.T) {
	p := NewPantry(DuplicateReject)
	require.NoError(t, p.Add("tomato"))

	recipe := enrichedWithIngredients("")
	result := ScoreRecipe(recipe, p.Variants())

	assert.Equal(t, 1, result.MissingCount())
}

func TestScoreRecipeEmptyPantryVariant(t *testing.T) {
	// An empty variant must never match everything.
	recipe := enrichedWithIngredients("salt")
	result := ScoreRecipe(recipe, []string{""})

	assert.Equal(t, 1, result.MissingCount())
}
