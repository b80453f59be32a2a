package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/logging"
	"github.com/pantrychef/backend/internal/service"
)

type GenerateRequest struct {
	Ingredients              []string `json:"ingredients" binding:"required,min=1"`
	NumRecipes               int      `json:"num_recipes"`
	MaxAdditionalIngredients *int     `json:"max_additional_ingredients"`
	SessionID                string   `json:"session_id"`
}

type RecipeHandler struct {
	generator *service.RecipeGenerator
	tracker   *service.GenerationTracker
	cfg       config.GeneratorConfig
}

func NewRecipeHandler(generator *service.RecipeGenerator, cfg config.GeneratorConfig) *RecipeHandler {
	return &RecipeHandler{
		generator: generator,
		tracker:   service.NewGenerationTracker(),
		cfg:       cfg,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, extra ...gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	recipes.Use(extra...)
	{
		recipes.POST("/generate", h.Generate)
	}
}

// Generate runs the full pipeline for the submitted pantry. When the same
// client fires a second request before the first finishes, the earlier one is
// superseded and answers 409 instead of delivering stale results.
func (h *RecipeHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	opts, err := h.buildOptions(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionKey := req.SessionID
	if sessionKey == "" {
		sessionKey = c.ClientIP()
		if userID, exists := c.Get("user_id"); exists {
			sessionKey = fmt.Sprintf("%v", userID)
		}
	}
	generation := h.tracker.Begin(sessionKey)

	ranked, err := h.generator.Generate(c.Request.Context(), req.Ingredients, opts)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyIngredient), errors.Is(err, service.ErrDuplicateIngredient):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			var exhausted *service.AllCredentialsExhaustedError
			if errors.As(err, &exhausted) {
				logging.L().Error("recipe generation exhausted all credentials",
					zap.Int("attempts", exhausted.Attempts), zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": "recipe provider unavailable"})
				return
			}
			logging.L().Error("recipe generation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate recipes"})
		}
		return
	}

	if !h.tracker.IsCurrent(sessionKey, generation) {
		c.JSON(http.StatusConflict, gin.H{"error": "request superseded by a newer one"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": ranked})
}

func (h *RecipeHandler) buildOptions(req *GenerateRequest) (service.GenerateOptions, error) {
	opts := service.GenerateOptions{
		NumRecipes:    h.cfg.DefaultNumRecipes,
		MaxAdditional: h.cfg.DefaultMaxAdditional,
	}
	if h.cfg.RejectDuplicateIngredient {
		opts.DuplicatePolicy = service.DuplicateReject
	} else {
		opts.DuplicatePolicy = service.DuplicateIgnore
	}

	if req.NumRecipes != 0 {
		if req.NumRecipes < 1 || req.NumRecipes > h.cfg.MaxNumRecipes {
			return opts, fmt.Errorf("num_recipes must be between 1 and %d", h.cfg.MaxNumRecipes)
		}
		opts.NumRecipes = req.NumRecipes
	}
	if req.MaxAdditionalIngredients != nil {
		if *req.MaxAdditionalIngredients < 0 {
			return opts, fmt.Errorf("max_additional_ingredients must not be negative")
		}
		opts.MaxAdditional = *req.MaxAdditionalIngredients
	}
	return opts, nil
}
