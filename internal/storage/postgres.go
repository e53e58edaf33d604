package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/calmaria/maria-bot/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}

type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStorage(config DatabaseConfig, logger *zap.Logger) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	storage := &PostgresStorage{db: db, logger: logger}

	// Initialize database schema
	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}

	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}

	return nil
}

func (s *PostgresStorage) SaveMessage(ctx context.Context, msg *models.Message) error {
	var richContent []byte
	if msg.RichContent != nil && !msg.RichContent.IsEmpty() {
		var err error
		richContent, err = json.Marshal(msg.RichContent)
		if err != nil {
			return fmt.Errorf("error encoding rich content: %w", err)
		}
	}

	query := `
		INSERT INTO messages (id, session_id, user_id, role, content, rich_content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		msg.ID,
		msg.SessionID,
		msg.UserID,
		msg.Role,
		msg.Content,
		richContent,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving message: %w", err)
	}

	return nil
}

func (s *PostgresStorage) GetUserMessages(ctx context.Context, userID int64, limit, offset int) ([]*models.Message, error) {
	query := `
		SELECT id, session_id, user_id, role, content, rich_content, created_at
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error querying messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		msg := &models.Message{}
		var richContent []byte
		err := rows.Scan(
			&msg.ID,
			&msg.SessionID,
			&msg.UserID,
			&msg.Role,
			&msg.Content,
			&richContent,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning message: %w", err)
		}
		if len(richContent) > 0 {
			rc := models.NewRichContent()
			if err := json.Unmarshal(richContent, rc); err != nil {
				s.logger.Warn("Skipping unreadable rich content",
					zap.String("message_id", msg.ID),
					zap.Error(err))
			} else {
				msg.RichContent = rc
			}
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

func (s *PostgresStorage) SaveSession(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, username, started_at, last_activity, message_count, closing_offer, finalized)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			last_activity = EXCLUDED.last_activity,
			message_count = EXCLUDED.message_count,
			closing_offer = EXCLUDED.closing_offer,
			finalized = EXCLUDED.finalized`

	_, err := s.db.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.Username,
		session.StartedAt,
		session.LastActivity,
		session.MessageCount,
		session.ClosingOffer,
		session.Finalized,
	)
	if err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

func (s *PostgresStorage) GetSession(ctx context.Context, id string) (*models.Session, error) {
	query := `
		SELECT id, user_id, username, started_at, last_activity, message_count, closing_offer, finalized
		FROM sessions
		WHERE id = $1`

	session := &models.Session{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID,
		&session.UserID,
		&session.Username,
		&session.StartedAt,
		&session.LastActivity,
		&session.MessageCount,
		&session.ClosingOffer,
		&session.Finalized,
	)
	if err != nil {
		return nil, fmt.Errorf("error loading session: %w", err)
	}

	return session, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
