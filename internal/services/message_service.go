package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chatapp/internal/domain/message"
	"chatapp/internal/repository"
	chat_errors "chatapp/pkg/errors"
	"chatapp/pkg/logger"
)

type MessageService struct {
	messageRepo repository.MessageRepository
	cache       MessageCache
	logger      *logger.Logger
	now         func() time.Time
}

func NewMessageService(messageRepo repository.MessageRepository, cache MessageCache, l *logger.Logger) *MessageService {
	if cache == nil {
		cache = NoopCache{}
	}
	if l == nil {
		l = logger.NewNop()
	}
	return &MessageService{
		messageRepo: messageRepo,
		cache:       cache,
		logger:      l,
		now:         time.Now,
	}
}

// ListMessages returns all messages, from the cache when possible.
func (s *MessageService) ListMessages(ctx context.Context) ([]message.Message, error) {
	log := s.logger.WithContext(ctx)

	cached, ok, err := s.cache.GetMessages(ctx)
	if err != nil {
		log.Warnf("message cache read failed: %v", err)
	} else if ok {
		return cached, nil
	}

	// read before the store so a create that lands in between voids the fill
	gen, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		log.Warnf("message cache generation read failed: %v", genErr)
	}

	messages, err := s.messageRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if genErr == nil {
		if err := s.cache.SetMessages(ctx, gen, messages); err != nil {
			log.Warnf("message cache write failed: %v", err)
		}
	}
	return messages, nil
}

// CreateMessage validates text, stores it with the current server time and drops the cached list.
func (s *MessageService) CreateMessage(ctx context.Context, text string) (message.Message, error) {
	if strings.TrimSpace(text) == "" {
		return message.Message{}, fmt.Errorf("%w: text cannot be empty", chat_errors.ErrInvalidInput)
	}

	m := message.Message{Text: text, Date: s.now()}
	if err := s.messageRepo.Create(ctx, &m); err != nil {
		return message.Message{}, err
	}

	if err := s.cache.InvalidateMessages(ctx); err != nil {
		s.logger.WithContext(ctx).Warnf("message cache invalidation failed: %v", err)
	}
	return m, nil
}

// CacheEnabled reports whether a real cache backs the read path.
func (s *MessageService) CacheEnabled() bool {
	return s.cache.Enabled()
}
