package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/database"
	"github.com/pantrychef/backend/internal/logging"
	"github.com/pantrychef/backend/internal/server"
	"github.com/pantrychef/backend/internal/service"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.Init(cfg.LogLevel, config.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Sync()
	logger := logging.L()

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			// Redis only backs caching and rate limiting, so run without it.
			logger.Warn("redis unavailable, caching and rate limiting disabled", zap.Error(err))
			redisClient = nil
		}
	}

	spoonClient := service.NewSpoonacularClient(cfg.Spoon.BaseURL, cfg.Spoon.Timeout)
	cache := service.NewRecipeCache(redisClient)

	var rewriter service.InstructionRewriter
	if cfg.Rewriter.Enabled {
		rewriter = service.NewDeepSeekRewriter(cfg.Rewriter.APIKey, cfg.Rewriter.APIURL, cfg.Rewriter.Model)
	}

	enricher := service.NewEnricher(spoonClient, cache, rewriter)
	fetcher := service.NewFetcher(spoonClient, enricher, cfg.Spoon.APIKeys)
	generator := service.NewRecipeGenerator(fetcher)

	deps := server.Deps{
		DB:        db,
		Redis:     redisClient,
		Auth:      service.NewAuthService(db, cfg.JWTSecret),
		Favorites: service.NewFavoriteService(db),
		Generator: generator,
	}

	ctx := context.Background()
	if cfg.Vision.Enabled {
		vision, err := service.NewVisionService(ctx, cfg.Vision.APIKey, cfg.Vision.Model)
		if err != nil {
			logger.Fatal("failed to initialize vision service", zap.Error(err))
		}
		defer vision.Close()
		deps.Vision = vision
	}
	if cfg.Storage.Enabled {
		s3Config, err := config.NewS3Config(ctx, cfg.Storage)
		if err != nil {
			logger.Fatal("failed to initialize S3 storage", zap.Error(err))
		}
		deps.Archive = service.NewPhotoArchive(s3Config)
	}

	srv := server.New(cfg, deps)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
