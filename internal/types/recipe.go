package types

// RecipeIngredient is one entry of a recipe's full ingredient list as
// returned by the recipe API.
type RecipeIngredient struct {
	Name     string `json:"name"`
	Original string `json:"original"`
}

// CandidateRecipe is the stub returned by the find-by-ingredients search,
// before enrichment.
type CandidateRecipe struct {
	ID              int64              `json:"id"`
	Title           string             `json:"title"`
	UsedIngredients []RecipeIngredient `json:"usedIngredients"`
}

// NutritionInfo carries display-formatted nutrition values for a recipe.
type NutritionInfo struct {
	Calories string `json:"calories"`
	Carbs    string `json:"carbs"`
	Protein  string `json:"protein"`
	Fat      string `json:"fat"`
}

// RecipeDetail is the full recipe record from the information endpoint.
type RecipeDetail struct {
	ID                  int64              `json:"id"`
	Title               string             `json:"title"`
	Servings            int                `json:"servings"`
	ReadyInMinutes      int                `json:"readyInMinutes"`
	Image               string             `json:"image"`
	SourceURL           string             `json:"sourceUrl"`
	Diets               []string           `json:"diets"`
	ExtendedIngredients []RecipeIngredient `json:"extendedIngredients"`
	Instructions        string             `json:"instructions"`
}

// EnrichedRecipe is a recipe detail merged with its nutrition sub-record.
// Once enrichment succeeds ExtendedIngredients is always present and
// Instructions is always non-empty.
type EnrichedRecipe struct {
	RecipeDetail
	Nutrition NutritionInfo `json:"nutrition"`
}

// RankedRecipe is an enriched recipe scored against the user's pantry.
type RankedRecipe struct {
	EnrichedRecipe
	MissingCount int                `json:"missing_count"`
	Available    []RecipeIngredient `json:"available_ingredients"`
	Missing      []RecipeIngredient `json:"missing_ingredients"`
}
