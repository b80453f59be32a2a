package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a registered account. Favorites are owned by a user.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
}

// BeforeCreate assigns an ID when the database does not, e.g. sqlite in
// tests.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
