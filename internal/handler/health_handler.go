package handler

import (
	"context"
	"net/http"

	"chatapp/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by the database handle.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

type HealthHandler struct {
	store        Pinger
	cacheEnabled func() bool
}

func NewHealthHandler(store Pinger, cacheEnabled func() bool) *HealthHandler {
	return &HealthHandler{store: store, cacheEnabled: cacheEnabled}
}

func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, httpdto.NewStatusResponse(httpdto.StatusOK, gin.H{"message": "pong"}))
}

func (h *HealthHandler) Health(c *gin.Context) {
	cache := "disabled"
	if h.cacheEnabled != nil && h.cacheEnabled() {
		cache = "redis"
	}
	if h.store != nil {
		if err := h.store.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse(err.Error(), "UNHEALTHY"))
			return
		}
	}
	c.JSON(http.StatusOK, httpdto.NewStatusResponse(httpdto.StatusOK, gin.H{"database": "up", "cache": cache}))
}
