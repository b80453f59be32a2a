package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"db"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Spoon     SpoonConfig     `mapstructure:"spoonacular"`
	Rewriter  RewriterConfig  `mapstructure:"rewriter"`
	Vision    VisionConfig    `mapstructure:"vision"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Generator GeneratorConfig `mapstructure:"generator"`
	JWTSecret string          `mapstructure:"jwt_secret"`
	LogLevel  string          `mapstructure:"log_level"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

// AppConfig holds application metadata
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DBConfig holds PostgreSQL connection settings
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	URL      string `mapstructure:"url"`
}

// SpoonConfig holds the recipe API credentials and client settings.
// APIKeys is an ordered list; the fetcher tries them front to back.
type SpoonConfig struct {
	APIKeys []string      `mapstructure:"api_keys"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RewriterConfig holds the instruction-rewriting LLM settings
type RewriterConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	APIKey  string        `mapstructure:"api_key"`
	APIURL  string        `mapstructure:"api_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// VisionConfig holds the Gemini image-detection settings
type VisionConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// StorageConfig holds S3 photo-archive settings
type StorageConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Bucket  string `mapstructure:"bucket"`
	Region  string `mapstructure:"region"`
}

// GeneratorConfig holds defaults for the recipe generation pipeline
type GeneratorConfig struct {
	DefaultNumRecipes         int  `mapstructure:"default_num_recipes"`
	MaxNumRecipes             int  `mapstructure:"max_num_recipes"`
	DefaultMaxAdditional      int  `mapstructure:"default_max_additional"`
	RejectDuplicateIngredient bool `mapstructure:"reject_duplicate_ingredient"`
}

// CORSConfig holds allowed origins for browser clients
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// LoadConfig creates a new Config instance from environment variables,
// with viper defaults for everything that has a sensible one.
func LoadConfig() (*Config, error) {
	setDefaults()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("db.host", "DB_HOST")
	viper.BindEnv("db.port", "DB_PORT")
	viper.BindEnv("db.user", "DB_USER")
	viper.BindEnv("db.password", "DB_PASSWORD")
	viper.BindEnv("db.name", "DB_NAME")
	viper.BindEnv("db.ssl_mode", "DB_SSL_MODE")
	viper.BindEnv("redis.enabled", "REDIS_ENABLED")
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.url", "REDIS_URL")
	viper.BindEnv("spoonacular.api_keys", "SPOONACULAR_API_KEYS")
	viper.BindEnv("rewriter.enabled", "REWRITER_ENABLED")
	viper.BindEnv("rewriter.api_key", "DEEPSEEK_API_KEY")
	viper.BindEnv("rewriter.api_url", "DEEPSEEK_API_URL")
	viper.BindEnv("vision.enabled", "VISION_ENABLED")
	viper.BindEnv("vision.api_key", "GEMINI_API_KEY")
	viper.BindEnv("storage.enabled", "S3_ENABLED")
	viper.BindEnv("storage.bucket", "S3_BUCKET_NAME")
	viper.BindEnv("storage.region", "AWS_REGION")
	viper.BindEnv("jwt_secret", "JWT_SECRET")
	viper.BindEnv("log_level", "LOG_LEVEL")
	viper.BindEnv("cors.allow_origins", "CORS_ALLOW_ORIGINS")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Comma-separated env values arrive as a single element.
	cfg.Spoon.APIKeys = splitAndTrim(cfg.Spoon.APIKeys)
	cfg.CORS.AllowOrigins = splitAndTrim(cfg.CORS.AllowOrigins)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func splitAndTrim(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func setDefaults() {
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.name", "pantrychef")
	viper.SetDefault("app.version", "1.0.0")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.user", "postgres")
	viper.SetDefault("db.name", "pantrychef")
	viper.SetDefault("db.ssl_mode", "disable")

	viper.SetDefault("redis.enabled", true)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("spoonacular.base_url", "https://api.spoonacular.com")
	viper.SetDefault("spoonacular.timeout", "15s")

	viper.SetDefault("rewriter.enabled", false)
	viper.SetDefault("rewriter.api_url", "https://api.deepseek.com/v1/chat/completions")
	viper.SetDefault("rewriter.model", "deepseek-chat")
	viper.SetDefault("rewriter.timeout", "30s")

	viper.SetDefault("vision.enabled", false)
	viper.SetDefault("vision.model", "gemini-1.5-flash")

	viper.SetDefault("storage.enabled", false)
	viper.SetDefault("storage.bucket", "pantrychef-ingredient-photos")

	viper.SetDefault("generator.default_num_recipes", 3)
	viper.SetDefault("generator.max_num_recipes", 10)
	viper.SetDefault("generator.default_max_additional", 5)
	viper.SetDefault("generator.reject_duplicate_ingredient", true)

	viper.SetDefault("log_level", "info")
	viper.SetDefault("cors.allow_origins", "http://localhost:5173")
}
