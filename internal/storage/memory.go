package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/calmaria/maria-bot/internal/models"
)

// MemoryStorage keeps everything in process. Used for development and
// tests; the bot behaves identically against Postgres.
type MemoryStorage struct {
	mu       sync.RWMutex
	messages []*models.Message
	sessions map[string]*models.Session
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		sessions: make(map[string]*models.Session),
	}
}

func (s *MemoryStorage) SaveMessage(ctx context.Context, msg *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := *msg
	s.messages = append(s.messages, &saved)
	return nil
}

func (s *MemoryStorage) GetUserMessages(ctx context.Context, userID int64, limit, offset int) ([]*models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Newest first, matching the Postgres query ordering.
	var matched []*models.Message
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].UserID == userID {
			matched = append(matched, s.messages[i])
		}
	}

	if offset >= len(matched) {
		return []*models.Message{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *MemoryStorage) SaveSession(ctx context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := *session
	s.sessions[session.ID] = &saved
	return nil
}

func (s *MemoryStorage) GetSession(ctx context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[id]
	if !exists {
		return nil, fmt.Errorf("session %s not found", id)
	}
	found := *session
	return &found, nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
