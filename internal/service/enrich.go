package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/logging"
	"github.com/pantrychef/backend/internal/types"
)

// missingInstructionsNote replaces empty upstream instructions so the client
// always has something to render.
const missingInstructionsNote = "The original recipe author has not provided detailed instructions for the recipe."

// Enricher combines a recipe's detail record and nutrition record into one
// EnrichedRecipe. Results are cached; instruction rewriting is best-effort.
type Enricher struct {
	api      RecipeAPI
	cache    *RecipeCache
	rewriter InstructionRewriter
}

// NewEnricher creates an enricher. cache and rewriter may be nil.
func NewEnricher(api RecipeAPI, cache *RecipeCache, rewriter InstructionRewriter) *Enricher {
	return &Enricher{api: api, cache: cache, rewriter: rewriter}
}

// Enrich fetches detail and nutrition for one recipe, in parallel, using the
// given credential. A cached enrichment short-circuits both calls.
func (e *Enricher) Enrich(ctx context.Context, id int64, apiKey string) (*types.EnrichedRecipe, error) {
	if cached := e.cache.Get(ctx, id); cached != nil {
		return cached, nil
	}

	detailCh := make(chan *types.RecipeDetail, 1)
	nutritionCh := make(chan *types.NutritionInfo, 1)
	errCh := make(chan error, 2)

	go func() {
		detail, err := e.api.GetInformation(ctx, id, apiKey)
		if err != nil {
			errCh <- err
			return
		}
		detailCh <- detail
	}()
	go func() {
		nutrition, err := e.api.GetNutrition(ctx, id, apiKey)
		if err != nil {
			errCh <- err
			return
		}
		nutritionCh <- nutrition
	}()

	var detail *types.RecipeDetail
	var nutrition *types.NutritionInfo
	for detail == nil || nutrition == nil {
		select {
		case detail = <-detailCh:
		case nutrition = <-nutritionCh:
		case err := <-errCh:
			return nil, err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	recipe := &types.EnrichedRecipe{
		RecipeDetail: *detail,
		Nutrition:    *nutrition,
	}
	recipe.Instructions = e.finalInstructions(ctx, recipe)

	e.cache.Set(ctx, recipe)
	return recipe, nil
}

// EnrichAll enriches every candidate, preserving the candidates' order. The
// first failure aborts the batch so the caller can fail over to the next
// credential.
func (e *Enricher) EnrichAll(ctx context.Context, candidates []types.CandidateRecipe, apiKey string) ([]types.EnrichedRecipe, error) {
	type indexed struct {
		idx    int
		recipe *types.EnrichedRecipe
		err    error
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan indexed, len(candidates))
	for i, candidate := range candidates {
		go func(idx int, id int64) {
			recipe, err := e.Enrich(ctx, id, apiKey)
			results <- indexed{idx: idx, recipe: recipe, err: err}
		}(i, candidate.ID)
	}

	enriched := make([]types.EnrichedRecipe, len(candidates))
	for range candidates {
		res := <-results
		if res.err != nil {
			return nil, res.err
		}
		enriched[res.idx] = *res.recipe
	}
	return enriched, nil
}

// finalInstructions applies the empty-instructions fallback and then the
// optional rewrite. A rewrite failure keeps the original text.
func (e *Enricher) finalInstructions(ctx context.Context, recipe *types.EnrichedRecipe) string {
	instructions := strings.TrimSpace(recipe.Instructions)
	if instructions == "" {
		return missingInstructionsNote
	}
	if e.rewriter == nil {
		return instructions
	}

	rewritten, err := e.rewriter.Rewrite(ctx, recipe.Title, instructions)
	if err != nil {
		logging.L().Warn("instruction rewrite failed, keeping original",
			zap.Int64("recipe_id", recipe.ID), zap.Error(err))
		return instructions
	}
	if strings.TrimSpace(rewritten) == "" {
		return instructions
	}
	return rewritten
}
