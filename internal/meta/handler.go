package meta

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/artfriendly/go-api-server/internal/config"
	"github.com/artfriendly/go-api-server/internal/shared/database"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const (
	statusUp   = "up"
	statusDown = "down"
)

// Handler handles meta endpoints (health check)
type Handler struct {
	cfg   *config.Config
	db    *database.DB
	redis *redis.Client
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config, db *database.DB, rdb *redis.Client) *Handler {
	return &Handler{
		cfg:   cfg,
		db:    db,
		redis: rdb,
	}
}

// Health checks database and redis connectivity
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbCheck := check(ctx, "database", h.db.HealthCheck)
	redisCheck := check(ctx, "redis", func(ctx context.Context) error {
		return h.redis.Ping(ctx).Err()
	})

	status, code := "healthy", http.StatusOK
	if dbCheck["status"] != statusUp || redisCheck["status"] != statusUp {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status": status,
		"service": gin.H{
			"name":        h.cfg.App.Name,
			"environment": h.cfg.App.Env,
			"port":        h.cfg.App.Port,
		},
		"checks": gin.H{
			"database": dbCheck,
			"redis":    redisCheck,
		},
	})
}

func check(ctx context.Context, name string, ping func(context.Context) error) gin.H {
	start := time.Now()
	if err := ping(ctx); err != nil {
		slog.Error("Health check 실패", "component", name, "error", err)
		return gin.H{"status": statusDown, "error": err.Error()}
	}
	return gin.H{"status": statusUp, "latency_ms": time.Since(start).Milliseconds()}
}
