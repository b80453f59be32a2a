package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/model"
	"github.com/pantrychef/backend/internal/types"
)

var (
	// ErrUserExists is returned when registering with an email already in
	// use.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned for any failed login. The caller
	// never learns whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// Register creates a user with a bcrypt-hashed password and returns a signed
// token for the new account.
func (s *AuthService) Register(name, email, password string) (string, error) {
	var existing model.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return "", ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", err
	}

	return s.generateToken(&user)
}

// Login verifies the credentials and returns a signed token.
func (s *AuthService) Login(email, password string) (string, error) {
	var user model.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(&user)
}

func (s *AuthService) generateToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"name":    user.Name,
		"email":   user.Email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a signed token and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, err
	}

	result := &types.TokenClaims{UserID: userID}
	if name, ok := claims["name"].(string); ok {
		result.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		result.Email = email
	}
	return result, nil
}
