package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/logging"
	"github.com/pantrychef/backend/internal/types"
)

const enrichedRecipeTTL = 24 * time.Hour

// RecipeCache is a read-through cache for enriched recipe records. Cache
// failures are soft: a miss or a Redis error just means the enricher goes
// upstream again.
type RecipeCache struct {
	redis *redis.Client
}

// NewRecipeCache creates a cache backed by the given Redis client. A nil
// client disables caching.
func NewRecipeCache(redisClient *redis.Client) *RecipeCache {
	return &RecipeCache{redis: redisClient}
}

func enrichedRecipeKey(id int64) string {
	return fmt.Sprintf("recipe:enriched:%d", id)
}

// Get returns the cached enriched recipe for id, or nil on a miss.
func (c *RecipeCache) Get(ctx context.Context, id int64) *types.EnrichedRecipe {
	if c == nil || c.redis == nil {
		return nil
	}

	data, err := c.redis.Get(ctx, enrichedRecipeKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.L().Debug("recipe cache read failed", zap.Int64("recipe_id", id), zap.Error(err))
		}
		return nil
	}

	var recipe types.EnrichedRecipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		logging.L().Warn("recipe cache entry corrupt, dropping", zap.Int64("recipe_id", id), zap.Error(err))
		c.redis.Del(ctx, enrichedRecipeKey(id))
		return nil
	}

	return &recipe
}

// Set stores an enriched recipe with a 24h TTL. Errors are logged and
// swallowed.
func (c *RecipeCache) Set(ctx context.Context, recipe *types.EnrichedRecipe) {
	if c == nil || c.redis == nil || recipe == nil {
		return
	}

	data, err := json.Marshal(recipe)
	if err != nil {
		logging.L().Warn("recipe cache marshal failed", zap.Int64("recipe_id", recipe.ID), zap.Error(err))
		return
	}

	if err := c.redis.Set(ctx, enrichedRecipeKey(recipe.ID), data, enrichedRecipeTTL).Err(); err != nil {
		logging.L().Debug("recipe cache write failed", zap.Int64("recipe_id", recipe.ID), zap.Error(err))
	}
}
