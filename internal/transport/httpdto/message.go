package httpdto

import (
	"time"

	"chatapp/internal/domain/message"
)

type CreateMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type MessageResponse struct {
	ID   int64     `json:"id"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

func NewMessageResponse(m message.Message) MessageResponse {
	return MessageResponse{ID: m.ID, Text: m.Text, Date: m.Date}
}

func NewMessageListResponse(messages []message.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, NewMessageResponse(m))
	}
	return out
}
