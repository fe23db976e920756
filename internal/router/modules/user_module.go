package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-course-marketplace/internal/interface/http"
	"github.com/oksasatya/go-course-marketplace/internal/interface/middleware"
)

// UserModule wires account registration and confirmation:
// POST /users and POST /users/confirm/:token, both rate limited.
type UserModule struct {
	Handler *handlers.UserHandler
	Redis   *redis.Client
	Allow   middleware.AllowFunc
}

func NewUserModule(h *handlers.UserHandler, rdb *redis.Client, allow middleware.AllowFunc) *UserModule {
	return &UserModule{Handler: h, Redis: rdb, Allow: allow}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIP("rl:users:register"), m.Allow)
	confirmLimiter := middleware.RateLimit(m.Redis, 30, time.Minute, middleware.KeyByIPAndPath("rl:users:confirm"), m.Allow)

	users := rg.Group("/users")
	users.POST("", registerLimiter, m.Handler.Register)
	users.POST("/confirm/:token", confirmLimiter, m.Handler.Confirm)
}
