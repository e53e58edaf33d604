package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Message represents one conversation turn, either side.
type Message struct {
	ID          string       `json:"id"`
	SessionID   string       `json:"session_id"`
	UserID      int64        `json:"user_id"`
	Role        Role         `json:"role"`
	Content     string       `json:"content"`
	RichContent *RichContent `json:"rich_content,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Session holds the per-conversation state. One instance per chat, owned
// by the conversation handler; turns within a chat are processed
// sequentially, so plain field mutation is safe.
type Session struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"user_id"`
	Username     string    `json:"username"`
	StartedAt    time.Time `json:"started_at"`
	LastActivity time.Time `json:"last_activity"`
	MessageCount int       `json:"message_count"`
	ClosingOffer bool      `json:"closing_offer_issued"`
	Finalized    bool      `json:"finalized"`
}

func NewSession(id string, userID int64, username string, now time.Time) *Session {
	return &Session{
		ID:           id,
		UserID:       userID,
		Username:     username,
		StartedAt:    now,
		LastActivity: now,
	}
}

// Touch records activity for one turn.
func (s *Session) Touch(now time.Time) {
	s.LastActivity = now
	s.MessageCount++
}

func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}
