package modules

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-course-marketplace/internal/interface/middleware"
	"github.com/oksasatya/go-course-marketplace/pkg/response"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthModule exposes GET /health reporting Postgres and Redis reachability.
type HealthModule struct {
	DB    pinger
	Redis *redis.Client
}

func NewHealthModule(db pinger, rdb *redis.Client) *HealthModule {
	return &HealthModule{DB: db, Redis: rdb}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByIP("rl:health"), middleware.AllowPrivateIP())
	rg.GET("/health", rl, m.health)
}

func (m *HealthModule) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true
	if m.DB != nil {
		checks["postgres"] = status(m.DB.Ping(ctx), &healthy)
	}
	if m.Redis != nil {
		checks["redis"] = status(m.Redis.Ping(ctx).Err(), &healthy)
	}

	if !healthy {
		response.Error[any](c, http.StatusServiceUnavailable, "unhealthy", checks)
		return
	}
	response.Success(c, http.StatusOK, checks, "ok", nil)
}

func status(err error, healthy *bool) string {
	if err != nil {
		*healthy = false
		return "down"
	}
	return "ok"
}
