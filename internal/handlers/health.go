package handlers

import (
	"net/http"

	"prestige-properties/pkg/cache"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type HealthHandler struct {
	backend string
	redis   *redis.Client
}

// NewHealthHandler reports the session backend; client may be nil when Redis is not used.
func NewHealthHandler(backend string, client *redis.Client) *HealthHandler {
	return &HealthHandler{backend: backend, redis: client}
}

func (h *HealthHandler) Health(c *gin.Context) {
	body := gin.H{"status": "ok", "session_backend": h.backend}
	if h.redis != nil {
		if err := cache.Ping(c.Request.Context(), h.redis); err != nil {
			body["status"] = "degraded"
			body["redis"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		body["redis"] = "ok"
	}
	c.JSON(http.StatusOK, body)
}
