package database

import (
	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/model"
)

// RunMigrations applies the schema. The favorites uniqueness invariant
// (one row per recipe+user) lives in the composite index created here.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.FavoriteRecipe{},
	)
}
