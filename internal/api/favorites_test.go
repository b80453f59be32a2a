package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/middleware"
	"github.com/pantrychef/backend/internal/model"
	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/testhelpers"
)

func setupFavoritesRouter(t *testing.T) (*gin.Engine, *gorm.DB, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")

	router := gin.New()
	router.Use(gin.Recovery())
	v1 := router.Group("/api/v1")
	NewFavoriteHandler(service.NewFavoriteService(db)).RegisterRoutes(v1, middleware.AuthMiddleware(authSvc))

	return router, db, authSvc
}

func registerTestUser(t *testing.T, authSvc *service.AuthService, email string) string {
	t.Helper()
	token, err := authSvc.Register("Test User", email, "password123")
	require.NoError(t, err)
	return token
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		data, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(data))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sampleFavorite(recipeID int64) map[string]interface{} {
	return map[string]interface{}{
		"id":             recipeID,
		"title":          "Tomato Soup",
		"sourceUrl":      "https://example.com/soup",
		"servings":       4,
		"readyInMinutes": 30,
		"diets":          []string{"vegetarian"},
		"ingredients":    []string{"tomato", "onion"},
		"instructions":   "Simmer everything.",
		"calories":       "210",
	}
}

func TestFavoritesRequireAuth(t *testing.T) {
	router, _, _ := setupFavoritesRouter(t)

	w := doJSON(router, http.MethodGet, "/api/v1/favorites", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/favorites", "", sampleFavorite(1))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/v1/favorites/1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSaveFavoriteIdempotent(t *testing.T) {
	router, db, authSvc := setupFavoritesRouter(t)
	token := registerTestUser(t, authSvc, "fav@example.com")

	w := doJSON(router, http.MethodPost, "/api/v1/favorites", token, sampleFavorite(100))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/favorites", token, sampleFavorite(100))
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.FavoriteRecipe{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListFavorites(t *testing.T) {
	router, _, authSvc := setupFavoritesRouter(t)
	token := registerTestUser(t, authSvc, "list@example.com")
	otherToken := registerTestUser(t, authSvc, "other@example.com")

	doJSON(router, http.MethodPost, "/api/v1/favorites", token, sampleFavorite(1))
	doJSON(router, http.MethodPost, "/api/v1/favorites", otherToken, sampleFavorite(2))

	w := doJSON(router, http.MethodGet, "/api/v1/favorites", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Favorites []model.FavoriteRecipe `json:"favorites"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Favorites, 1)
	assert.Equal(t, int64(1), resp.Favorites[0].RecipeID)
	assert.Equal(t, "Tomato Soup", resp.Favorites[0].Title)
}

func TestUpdateFavoriteInstructions(t *testing.T) {
	router, _, authSvc := setupFavoritesRouter(t)
	token := registerTestUser(t, authSvc, "upd@example.com")

	doJSON(router, http.MethodPost, "/api/v1/favorites", token, sampleFavorite(5))

	w := doJSON(router, http.MethodPut, "/api/v1/favorites/5", token,
		map[string]string{"instructions": "1. Chop. 2. Simmer."})
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.FavoriteRecipe
	require.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
	assert.Equal(t, "1. Chop. 2. Simmer.", updated.Instructions)
}

func TestUpdateFavoriteNotOwned(t *testing.T) {
	router, _, authSvc := setupFavoritesRouter(t)
	token := registerTestUser(t, authSvc, "owner2@example.com")
	intruder := registerTestUser(t, authSvc, "intruder2@example.com")

	doJSON(router, http.MethodPost, "/api/v1/favorites", token, sampleFavorite(9))

	w := doJSON(router, http.MethodPut, "/api/v1/favorites/9", intruder,
		map[string]string{"instructions": "hijacked"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteFavorite(t *testing.T) {
	router, _, authSvc := setupFavoritesRouter(t)
	token := registerTestUser(t, authSvc, "del@example.com")
	intruder := registerTestUser(t, authSvc, "intruder@example.com")

	doJSON(router, http.MethodPost, "/api/v1/favorites", token, sampleFavorite(7))

	// Another user deleting it gets 404, same as a missing row.
	w := doJSON(router, http.MethodDelete, "/api/v1/favorites/7", intruder, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/v1/favorites/7", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/v1/favorites/7", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteFavoriteBadID(t *testing.T) {
	router, _, authSvc := setupFavoritesRouter(t)
	token := registerTestUser(t, authSvc, "badid@example.com")

	w := doJSON(router, http.MethodDelete, "/api/v1/favorites/not-a-number", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
