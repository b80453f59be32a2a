package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/logging"
	"github.com/pantrychef/backend/internal/types"
)

// AllCredentialsExhaustedError reports that every configured API credential
// was tried and the whole batch failed.
type AllCredentialsExhaustedError struct {
	Attempts int
	LastErr  error
}

func (e *AllCredentialsExhaustedError) Error() string {
	return fmt.Sprintf("all %d API credentials exhausted: %v", e.Attempts, e.LastErr)
}

func (e *AllCredentialsExhaustedError) Unwrap() error {
	return e.LastErr
}

// Fetcher runs the search-and-enrich pipeline with ordered credential
// failover. Each credential gets one shot at the entire pipeline; any
// upstream failure moves on to the next credential instead of mixing
// credentials mid-batch.
type Fetcher struct {
	api      RecipeAPI
	enricher *Enricher
	apiKeys  []string
}

// NewFetcher creates a fetcher over the configured credentials, in priority
// order.
func NewFetcher(api RecipeAPI, enricher *Enricher, apiKeys []string) *Fetcher {
	return &Fetcher{api: api, enricher: enricher, apiKeys: apiKeys}
}

// Fetch searches for candidates and enriches all of them, failing over
// through the credential list. An empty search result is terminal: no recipes
// exist for these ingredients, so later credentials are not burned retrying.
func (f *Fetcher) Fetch(ctx context.Context, ingredients []string, count int) ([]types.EnrichedRecipe, error) {
	if len(f.apiKeys) == 0 {
		return nil, fmt.Errorf("no API credentials configured")
	}

	var lastErr error
	for i, apiKey := range f.apiKeys {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		candidates, err := f.api.SearchByIngredients(ctx, ingredients, count, apiKey)
		if err != nil {
			lastErr = err
			logging.L().Warn("recipe search failed, trying next credential",
				zap.Int("credential_index", i), zap.Error(err))
			continue
		}

		if len(candidates) == 0 {
			return []types.EnrichedRecipe{}, nil
		}

		enriched, err := f.enricher.EnrichAll(ctx, candidates, apiKey)
		if err != nil {
			lastErr = err
			logging.L().Warn("recipe enrichment failed, trying next credential",
				zap.Int("credential_index", i), zap.Error(err))
			continue
		}

		return enriched, nil
	}

	return nil, &AllCredentialsExhaustedError{Attempts: len(f.apiKeys), LastErr: lastErr}
}
