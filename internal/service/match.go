package service

import (
	"strings"

	"github.com/pantrychef/backend/internal/types"
)

// MatchResult partitions a recipe's ingredient list against the pantry.
// Every extended ingredient lands in exactly one of the two lists.
type MatchResult struct {
	Available []types.RecipeIngredient
	Missing   []types.RecipeIngredient
}

// MissingCount returns the number of recipe ingredients the pantry does not
// cover. This is the ranking key for the recipe set builder.
func (m MatchResult) MissingCount() int {
	return len(m.Missing)
}

// ScoreRecipe classifies each of the recipe's extended ingredients as
// available or missing. An ingredient is available when its lowercased name
// contains any pantry variant as a substring. Entries without a name are
// always missing.
func ScoreRecipe(recipe *types.EnrichedRecipe, variants []string) MatchResult {
	var result MatchResult
	for _, ing := range recipe.ExtendedIngredients {
		if ingredientAvailable(ing.Name, variants) {
			result.Available = append(result.Available, ing)
		} else {
			result.Missing = append(result.Missing, ing)
		}
	}
	return result
}

func ingredientAvailable(name string, variants []string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, v := range variants {
		if v != "" && strings.Contains(lower, v) {
			return true
		}
	}
	return false
}
