package service

import (
	"sort"

	"github.com/pantrychef/backend/internal/types"
)

// BuildRecipeSet scores every enriched recipe against the pantry variants,
// drops recipes needing more than maxAdditional extra ingredients, sorts the
// rest by ascending missing count, and keeps at most limit results. The sort
// is stable so upstream relevance order breaks ties.
func BuildRecipeSet(recipes []types.EnrichedRecipe, variants []string, maxAdditional, limit int) []types.RankedRecipe {
	ranked := make([]types.RankedRecipe, 0, len(recipes))
	for i := range recipes {
		match := ScoreRecipe(&recipes[i], variants)
		if match.MissingCount() > maxAdditional {
			continue
		}
		ranked = append(ranked, types.RankedRecipe{
			EnrichedRecipe: recipes[i],
			MissingCount:   match.MissingCount(),
			Available:      match.Available,
			Missing:        match.Missing,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MissingCount < ranked[j].MissingCount
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
