package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/logging"
	"github.com/pantrychef/backend/internal/model"
	"github.com/pantrychef/backend/internal/service"
)

type SaveFavoriteRequest struct {
	RecipeID       int64    `json:"id" binding:"required"`
	Title          string   `json:"title" binding:"required"`
	Image          string   `json:"image"`
	SourceURL      string   `json:"sourceUrl"`
	Servings       int      `json:"servings"`
	ReadyInMinutes int      `json:"readyInMinutes"`
	Diets          []string `json:"diets"`
	Ingredients    []string `json:"ingredients"`
	Instructions   string   `json:"instructions"`
	Calories       string   `json:"calories"`
	Carbs          string   `json:"carbs"`
	Protein        string   `json:"protein"`
	Fat            string   `json:"fat"`
}

type UpdateFavoriteRequest struct {
	Instructions string `json:"instructions" binding:"required"`
}

type FavoriteHandler struct {
	favorites *service.FavoriteService
}

func NewFavoriteHandler(favorites *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	favorites := router.Group("/favorites")
	favorites.Use(authRequired)
	{
		favorites.POST("", h.Save)
		favorites.GET("", h.List)
		favorites.PUT("/:id", h.Update)
		favorites.DELETE("/:id", h.Delete)
	}
}

func (h *FavoriteHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SaveFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	favorite := model.FavoriteRecipe{
		RecipeID:       req.RecipeID,
		Title:          req.Title,
		Image:          req.Image,
		SourceURL:      req.SourceURL,
		Servings:       req.Servings,
		ReadyInMinutes: req.ReadyInMinutes,
		Diets:          req.Diets,
		Ingredients:    req.Ingredients,
		Instructions:   req.Instructions,
		Calories:       req.Calories,
		Carbs:          req.Carbs,
		Protein:        req.Protein,
		Fat:            req.Fat,
	}

	created, err := h.favorites.Save(c.Request.Context(), userID, &favorite)
	if err != nil {
		logging.L().Error("failed to save favorite", zap.Int64("recipe_id", req.RecipeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save favorite"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"saved": true, "created": created})
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	favorites, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		logging.L().Error("failed to list favorites", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (h *FavoriteHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req UpdateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	favorite, err := h.favorites.UpdateInstructions(c.Request.Context(), userID, recipeID, req.Instructions)
	if err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
			return
		}
		logging.L().Error("failed to update favorite", zap.Int64("recipe_id", recipeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update favorite"})
		return
	}

	c.JSON(http.StatusOK, favorite)
}

func (h *FavoriteHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.favorites.Delete(c.Request.Context(), userID, recipeID); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
			return
		}
		logging.L().Error("failed to delete favorite", zap.Int64("recipe_id", recipeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// currentUserID pulls the authenticated user out of the context. The auth
// middleware guarantees it is set on protected routes.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	return userID, true
}
