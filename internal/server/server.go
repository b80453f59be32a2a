package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/api"
	"github.com/pantrychef/backend/internal/logging"
	"github.com/pantrychef/backend/internal/middleware"
	"github.com/pantrychef/backend/internal/service"
)

// Server wires the HTTP layer: router, middleware and handlers.
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// Deps carries the constructed services the server routes to. Vision,
// archive and rate limiting are optional.
type Deps struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Auth      *service.AuthService
	Favorites *service.FavoriteService
	Generator *service.RecipeGenerator
	Vision    *service.VisionService
	Archive   *service.PhotoArchive
}

// New builds the router and registers all routes.
func New(cfg *config.Config, deps Deps) *Server {
	if config.GetEnvironment() == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.CORS.AllowOrigins))

	authRequired := middleware.AuthMiddleware(deps.Auth)

	api.NewHealthHandler(deps.DB, deps.Redis).RegisterRoutes(router)

	v1 := router.Group("/api/v1")

	api.NewAuthHandler(deps.Auth).RegisterRoutes(v1)
	api.NewFavoriteHandler(deps.Favorites).RegisterRoutes(v1, authRequired)
	api.NewIngredientHandler(deps.Vision, deps.Archive).RegisterRoutes(v1, authRequired)

	recipeHandler := api.NewRecipeHandler(deps.Generator, cfg.Generator)
	if deps.Redis != nil {
		limiter := middleware.NewGenerationRateLimiter(deps.Redis)
		recipeHandler.RegisterRoutes(v1, limiter.RateLimitMiddleware())
	} else {
		recipeHandler.RegisterRoutes(v1)
	}

	return &Server{router: router, cfg: cfg}
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the HTTP server until the listener fails or Stop is called.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	logging.L().Info("http server listening", zap.Int("port", s.cfg.Server.Port))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
