package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	os.Setenv("DB_HOST", "localhost")
	os.Setenv("DB_PORT", "5432")
	os.Setenv("DB_USER", "postgres")
	os.Setenv("DB_PASSWORD", "postgres")
	os.Setenv("DB_NAME", "pantrychef")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("SPOONACULAR_API_KEYS", "key-one, key-two")
	defer os.Unsetenv("SPOONACULAR_API_KEYS")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "pantrychef", cfg.DB.Name)
	assert.Equal(t, "test-secret", cfg.JWTSecret)

	// Ordered credential list, split on commas and trimmed.
	assert.Equal(t, []string{"key-one", "key-two"}, cfg.Spoon.APIKeys)
	assert.Equal(t, "https://api.spoonacular.com", cfg.Spoon.BaseURL)
}

func TestLoadConfigRequiresCredentials(t *testing.T) {
	viper.Reset()
	os.Setenv("JWT_SECRET", "test-secret")
	os.Unsetenv("SPOONACULAR_API_KEYS")

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Spoonacular API key")
}

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("SPOONACULAR_API_KEYS", "k1")
	defer os.Unsetenv("SPOONACULAR_API_KEYS")

	cfg, err := LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Generator.DefaultNumRecipes)
	assert.Equal(t, 5, cfg.Generator.DefaultMaxAdditional)
	assert.True(t, cfg.Generator.RejectDuplicateIngredient)
	assert.NotZero(t, cfg.Spoon.Timeout)
}
