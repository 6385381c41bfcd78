package message

import (
	"time"
)

// Message represents the message table
type Message struct {
	ID   int64     `json:"id"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}
