package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/types"
)

type stubRewriter struct {
	out string
	err error
}

func (s *stubRewriter) Rewrite(ctx context.Context, title, instructions string) (string, error) {
	return s.out, s.err
}

func TestEnrichCombinesDetailAndNutrition(t *testing.T) {
	api := newFakeRecipeAPI()
	enricher := NewEnricher(api, nil, nil)

	recipe, err := enricher.Enrich(context.Background(), 42, "key")
	require.NoError(t, err)
	assert.Equal(t, int64(42), recipe.ID)
	assert.Equal(t, "Cook it.", recipe.Instructions)
	assert.Equal(t, "100", recipe.Nutrition.Calories)
}

func TestEnrichFallsBackOnEmptyInstructions(t *testing.T) {
	api := newFakeRecipeAPI()
	enricher := NewEnricher(&emptyInstructionsAPI{fakeRecipeAPI: api}, nil, nil)

	recipe, err := enricher.Enrich(context.Background(), 1, "key")
	require.NoError(t, err)
	assert.Equal(t, missingInstructionsNote, recipe.Instructions)
}

func TestEnrichRewriteFailureKeepsOriginal(t *testing.T) {
	api := newFakeRecipeAPI()
	enricher := NewEnricher(api, nil, &stubRewriter{err: errors.New("llm down")})

	recipe, err := enricher.Enrich(context.Background(), 1, "key")
	require.NoError(t, err)
	assert.Equal(t, "Cook it.", recipe.Instructions)
}

func TestEnrichRewriteReplacesInstructions(t *testing.T) {
	api := newFakeRecipeAPI()
	enricher := NewEnricher(api, nil, &stubRewriter{out: "1. Cook it well."})

	recipe, err := enricher.Enrich(context.Background(), 1, "key")
	require.NoError(t, err)
	assert.Equal(t, "1. Cook it well.", recipe.Instructions)
}

func TestEnrichAllPreservesOrder(t *testing.T) {
	api := newFakeRecipeAPI()
	enricher := NewEnricher(api, nil, nil)

	candidates := []types.CandidateRecipe{{ID: 3}, {ID: 1}, {ID: 2}}
	recipes, err := enricher.EnrichAll(context.Background(), candidates, "key")
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, int64(3), recipes[0].ID)
	assert.Equal(t, int64(1), recipes[1].ID)
	assert.Equal(t, int64(2), recipes[2].ID)
}

func TestEnrichAllFailsFast(t *testing.T) {
	api := newFakeRecipeAPI()
	api.enrichErrs["key"] = errors.New("boom")
	enricher := NewEnricher(api, nil, nil)

	_, err := enricher.EnrichAll(context.Background(), []types.CandidateRecipe{{ID: 1}, {ID: 2}}, "key")
	assert.Error(t, err)
}

// emptyInstructionsAPI strips instructions from the detail record.
type emptyInstructionsAPI struct {
	*fakeRecipeAPI
}

func (e *emptyInstructionsAPI) GetInformation(ctx context.Context, id int64, apiKey string) (*types.RecipeDetail, error) {
	detail, err := e.fakeRecipeAPI.GetInformation(ctx, id, apiKey)
	if err != nil {
		return nil, err
	}
	detail.Instructions = "   "
	return detail, nil
}
