package storage

import (
	"context"

	"github.com/calmaria/maria-bot/internal/models"
)

// Storage persists conversation turns and session lifecycle records.
type Storage interface {
	SaveMessage(ctx context.Context, msg *models.Message) error
	GetUserMessages(ctx context.Context, userID int64, limit, offset int) ([]*models.Message, error)

	SaveSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, id string) (*models.Session, error)

	Close() error
}
