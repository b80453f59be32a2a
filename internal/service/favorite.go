package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pantrychef/backend/internal/model"
)

// ErrFavoriteNotFound is returned when a favorite does not exist or belongs
// to another user. The two cases are deliberately indistinguishable.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteService persists a user's saved recipes.
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// Save stores a favorite for the user. Saving the same recipe twice is a
// no-op enforced by the (recipe_id, user_id) unique index; the returned bool
// reports whether a new row was created.
func (s *FavoriteService) Save(ctx context.Context, userID uuid.UUID, favorite *model.FavoriteRecipe) (bool, error) {
	favorite.UserID = userID

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(favorite)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// List returns the user's favorites, most recently saved first.
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]model.FavoriteRecipe, error) {
	var favorites []model.FavoriteRecipe
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// UpdateInstructions replaces the stored instructions of one of the user's
// favorites.
func (s *FavoriteService) UpdateInstructions(ctx context.Context, userID uuid.UUID, recipeID int64, instructions string) (*model.FavoriteRecipe, error) {
	var favorite model.FavoriteRecipe
	err := s.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}

	favorite.Instructions = instructions
	if err := s.db.WithContext(ctx).Save(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

// Delete removes one of the user's favorites.
func (s *FavoriteService) Delete(ctx context.Context, userID uuid.UUID, recipeID int64) error {
	result := s.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&model.FavoriteRecipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
