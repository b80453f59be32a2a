package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pantrychef/backend/internal/types"
)

// RecipeAPI is the upstream recipe search/detail/nutrition capability.
// Every call takes the credential explicitly so the fetcher can pin one
// credential across a whole pipeline attempt.
type RecipeAPI interface {
	SearchByIngredients(ctx context.Context, ingredients []string, count int, apiKey string) ([]types.CandidateRecipe, error)
	GetInformation(ctx context.Context, id int64, apiKey string) (*types.RecipeDetail, error)
	GetNutrition(ctx context.Context, id int64, apiKey string) (*types.NutritionInfo, error)
}

// SpoonacularClient calls the Spoonacular REST API.
type SpoonacularClient struct {
	client *resty.Client
}

// NewSpoonacularClient creates a client against the given base URL.
func NewSpoonacularClient(baseURL string, timeout time.Duration) *SpoonacularClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &SpoonacularClient{client: client}
}

// SearchByIngredients finds candidate recipes using the given pantry
// ingredients, ranked upstream to minimize missing ingredients.
func (c *SpoonacularClient) SearchByIngredients(ctx context.Context, ingredients []string, count int, apiKey string) ([]types.CandidateRecipe, error) {
	var candidates []types.CandidateRecipe

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ingredients": strings.Join(ingredients, ","),
			"number":      strconv.Itoa(count),
			"ranking":     "1",
			"apiKey":      apiKey,
		}).
		SetResult(&candidates).
		Get("/recipes/findByIngredients")
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode())
	}

	return candidates, nil
}

// GetInformation fetches the full detail record for a recipe.
func (c *SpoonacularClient) GetInformation(ctx context.Context, id int64, apiKey string) (*types.RecipeDetail, error) {
	var detail types.RecipeDetail

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("apiKey", apiKey).
		SetResult(&detail).
		Get(fmt.Sprintf("/recipes/%d/information", id))
	if err != nil {
		return nil, fmt.Errorf("information request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("information returned status %d", resp.StatusCode())
	}
	if detail.ID == 0 {
		detail.ID = id
	}

	return &detail, nil
}

// GetNutrition fetches the display-formatted nutrition widget record.
func (c *SpoonacularClient) GetNutrition(ctx context.Context, id int64, apiKey string) (*types.NutritionInfo, error) {
	var nutrition types.NutritionInfo

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("apiKey", apiKey).
		SetResult(&nutrition).
		Get(fmt.Sprintf("/recipes/%d/nutritionWidget.json", id))
	if err != nil {
		return nil, fmt.Errorf("nutrition request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("nutrition returned status %d", resp.StatusCode())
	}

	return &nutrition, nil
}
