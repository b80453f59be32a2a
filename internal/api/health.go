package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/database"
)

type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

func (h *HealthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)
}

// Health reports liveness plus the state of the backing stores. Degraded
// dependencies flip the status but keep the 200 so load balancers do not
// flap.
func (h *HealthHandler) Health(c *gin.Context) {
	status := "ok"
	checks := gin.H{}

	if h.db != nil {
		if err := database.HealthCheck(c.Request.Context(), h.db); err != nil {
			status = "degraded"
			checks["database"] = err.Error()
		} else {
			checks["database"] = "ok"
		}
	}

	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			status = "degraded"
			checks["redis"] = err.Error()
		} else {
			checks["redis"] = "ok"
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": status, "checks": checks})
}
