//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../mocks/mock_message_repository.go -package=mocks

package repository

import (
	"context"

	"chatapp/internal/domain/message"
)

type MessageRepository interface {
	// List returns every message ordered by id ascending.
	List(ctx context.Context) ([]message.Message, error)
	// Create inserts m and fills in its ID.
	Create(ctx context.Context, m *message.Message) error
}
