package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/types"
)

func enrichedRecipe(id int64, title string, ingredients ...string) types.EnrichedRecipe {
	recipe := enrichedWithIngredients(ingredients...)
	recipe.ID = id
	recipe.Title = title
	return *recipe
}

func TestBuildRecipeSetSortsByMissingCount(t *testing.T) {
	recipes := []types.EnrichedRecipe{
		enrichedRecipe(1, "needs two", "tomato", "flour", "yeast"),
		enrichedRecipe(2, "needs none", "tomato"),
		enrichedRecipe(3, "needs one", "tomato", "basil"),
	}

	ranked := BuildRecipeSet(recipes, []string{"tomato", "tomatoes"}, 5, 10)

	require.Len(t, ranked, 3)
	assert.Equal(t, int64(2), ranked[0].ID)
	assert.Equal(t, int64(3), ranked[1].ID)
	assert.Equal(t, int64(1), ranked[2].ID)
	assert.Equal(t, 0, ranked[0].MissingCount)
	assert.Equal(t, 1, ranked[1].MissingCount)
	assert.Equal(t, 2, ranked[2].MissingCount)
}

func TestBuildRecipeSetFiltersByMaxAdditional(t *testing.T) {
	recipes := []types.EnrichedRecipe{
		enrichedRecipe(1, "too many extras", "flour", "yeast", "salt"),
		enrichedRecipe(2, "one extra", "tomato", "basil"),
	}

	ranked := BuildRecipeSet(recipes, []string{"tomato", "tomatoes"}, 1, 10)

	require.Len(t, ranked, 1)
	assert.Equal(t, int64(2), ranked[0].ID)
}

func TestBuildRecipeSetStableOnTies(t *testing.T) {
	// Equal missing counts keep upstream relevance order.
	recipes := []types.EnrichedRecipe{
		enrichedRecipe(1, "first", "tomato", "basil"),
		enrichedRecipe(2, "second", "tomato", "oregano"),
	}

	ranked := BuildRecipeSet(recipes, []string{"tomato", "tomatoes"}, 5, 10)

	require.Len(t, ranked, 2)
	assert.Equal(t, int64(1), ranked[0].ID)
	assert.Equal(t, int64(2), ranked[1].ID)
}

func TestBuildRecipeSetTruncatesToLimit(t *testing.T) {
	recipes := []types.EnrichedRecipe{
		enrichedRecipe(1, "a", "tomato"),
		enrichedRecipe(2, "b", "tomato"),
		enrichedRecipe(3, "c", "tomato"),
	}

	ranked := BuildRecipeSet(recipes, []string{"tomato"}, 5, 2)
	assert.Len(t, ranked, 2)
}

func TestBuildRecipeSetCarriesMatchLists(t *testing.T) {
	recipes := []types.EnrichedRecipe{
		enrichedRecipe(1, "stew", "beef broth", "carrots"),
	}

	ranked := BuildRecipeSet(recipes, []string{"carrot", "carrots"}, 5, 10)

	require.Len(t, ranked, 1)
	require.Len(t, ranked[0].Available, 1)
	assert.Equal(t, "carrots", ranked[0].Available[0].Name)
	require.Len(t, ranked[0].Missing, 1)
	assert.Equal(t, "beef broth", ranked[0].Missing[0].Name)
}
