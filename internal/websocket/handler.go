package websocket

import (
	"net/http"

	"chatapp/internal/middleware"
	"chatapp/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler upgrades HTTP requests to relay sessions.
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *Logger
}

// NewHandler creates a handler accepting upgrades from the given CORS origins.
func NewHandler(hub *Hub, origins []string, logger *Logger) *Handler {
	if logger == nil {
		logger = NewLogger(nil)
	}
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return middleware.OriginAllowed(origins, r.Header.Get("Origin"))
			},
		},
		logger: logger,
	}
}

// Connect upgrades HTTP to WebSocket and starts the session pumps.
func (h *Handler) Connect(c *gin.Context) {
	sessionID := uuid.NewString()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", sessionID, err)
		return
	}

	client := NewClient(h.hub, conn, sessionID, h.logger)
	h.hub.Register(client)

	go client.writePump()
	go client.readPump()
}

// Health reports the number of live sessions.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, httpdto.NewStatusResponse(httpdto.StatusOK, gin.H{"sessions": h.hub.SessionCount()}))
}
