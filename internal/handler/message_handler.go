package handler

import (
	"errors"
	"net/http"

	"chatapp/internal/services"
	"chatapp/internal/transport/httpdto"
	chat_errors "chatapp/pkg/errors"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	service *services.MessageService
}

func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

func (h *MessageHandler) List(c *gin.Context) {
	items, err := h.service.ListMessages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error(), "INTERNAL_ERROR"))
		return
	}
	c.JSON(http.StatusOK, httpdto.NewMessageListResponse(items))
}

func (h *MessageHandler) Create(c *gin.Context) {
	var req httpdto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("text is required", "INVALID_REQUEST"))
		return
	}

	msg, err := h.service.CreateMessage(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, chat_errors.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "INVALID_REQUEST"))
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error(), "REQUEST_FAILED"))
		return
	}

	c.JSON(http.StatusOK, httpdto.NewMessageResponse(msg))
}
