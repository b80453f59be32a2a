package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable. Optional
// subsystems (rewriter, vision, storage) are only validated when enabled.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.Server.Port <= 0 {
		errs = append(errs, "server port must be positive")
	}
	if len(cfg.Spoon.APIKeys) == 0 {
		errs = append(errs, "at least one Spoonacular API key is required (SPOONACULAR_API_KEYS)")
	}
	if cfg.Spoon.BaseURL == "" {
		errs = append(errs, "spoonacular base URL is required")
	}
	if cfg.JWTSecret == "" {
		errs = append(errs, "jwt secret is required (JWT_SECRET)")
	}
	if cfg.Rewriter.Enabled && cfg.Rewriter.APIKey == "" {
		errs = append(errs, "rewriter is enabled but DEEPSEEK_API_KEY is not set")
	}
	if cfg.Vision.Enabled && cfg.Vision.APIKey == "" {
		errs = append(errs, "vision is enabled but GEMINI_API_KEY is not set")
	}
	if cfg.Storage.Enabled && cfg.Storage.Bucket == "" {
		errs = append(errs, "storage is enabled but no bucket is configured")
	}
	if cfg.Generator.MaxNumRecipes < cfg.Generator.DefaultNumRecipes {
		errs = append(errs, "generator max_num_recipes must be >= default_num_recipes")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
