package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// FavoriteRecipe is an enriched recipe saved by a user. The composite
// unique index enforces at most one row per (recipe_id, user_id).
type FavoriteRecipe struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"-"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	RecipeID       int64            `gorm:"not null;uniqueIndex:idx_favorite_recipe_user" json:"id"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_recipe_user;index" json:"user_id"`
	Title          string           `gorm:"size:255;not null" json:"title"`
	Image          string           `gorm:"size:512" json:"image"`
	SourceURL      string           `gorm:"size:512" json:"sourceUrl"`
	Servings       int              `json:"servings"`
	ReadyInMinutes int              `json:"readyInMinutes"`
	Diets          JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"diets"`
	Ingredients    JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions   string           `gorm:"type:text" json:"instructions"`
	Calories       string           `gorm:"size:32" json:"calories"`
	Carbs          string           `gorm:"size:32" json:"carbs"`
	Protein        string           `gorm:"size:32" json:"protein"`
	Fat            string           `gorm:"size:32" json:"fat"`
}

func (FavoriteRecipe) TableName() string {
	return "favorite_recipes"
}

// BeforeCreate assigns an ID when the database does not, e.g. sqlite in
// tests.
func (f *FavoriteRecipe) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
