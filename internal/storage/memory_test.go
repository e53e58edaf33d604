package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calmaria/maria-bot/internal/models"
)

func TestMemoryStorageMessages(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := s.SaveMessage(ctx, &models.Message{
			ID:        fmt.Sprintf("msg-%d", i),
			SessionID: "sess-1",
			UserID:    42,
			Role:      models.RoleUser,
			Content:   fmt.Sprintf("mensaje %d", i),
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}
	require.NoError(t, s.SaveMessage(ctx, &models.Message{
		ID:     "other",
		UserID: 99,
		Role:   models.RoleUser,
	}))

	msgs, err := s.GetUserMessages(ctx, 42, 10, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 5)
	// Newest first.
	assert.Equal(t, "msg-4", msgs[0].ID)
	assert.Equal(t, "msg-0", msgs[4].ID)

	page, err := s.GetUserMessages(ctx, 42, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "msg-3", page[0].ID)
	assert.Equal(t, "msg-2", page[1].ID)

	empty, err := s.GetUserMessages(ctx, 42, 10, 100)
	require.NoError(t, err)
	assert.Empty(t, empty)

	none, err := s.GetUserMessages(ctx, 7, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStorageSessions(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	now := time.Now()

	session := models.NewSession("sess-1", 42, "Ana", now)
	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, "Ana", got.Username)

	// Stored copy is isolated from later mutation of the original.
	session.Finalized = true
	got, err = s.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, got.Finalized)

	// Saving again overwrites.
	require.NoError(t, s.SaveSession(ctx, session))
	got, err = s.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, got.Finalized)

	_, err = s.GetSession(ctx, "missing")
	assert.Error(t, err)
}

func TestMemoryStorageSavedMessageIsCopied(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	msg := &models.Message{ID: "m1", UserID: 1, Content: "original"}
	require.NoError(t, s.SaveMessage(ctx, msg))
	msg.Content = "mutated"

	got, err := s.GetUserMessages(ctx, 1, 1, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "original", got[0].Content)
}
