package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/calmaria/maria-bot/internal/emotion"
)

func TestManagerDisabledStaysNeutral(t *testing.T) {
	m := NewManager(false, zap.NewNop())

	profile := m.ProfileFor("Estoy muy ansioso, tengo mucho miedo")

	assert.Equal(t, emotion.NeutralProfile, profile)
}

func TestManagerAdaptsToEmotion(t *testing.T) {
	m := NewManager(true, zap.NewNop())

	profile := m.ProfileFor("Estoy muy ansioso, tengo mucho miedo")

	assert.Equal(t, -0.5, profile.Speed)
	assert.Equal(t, profile, m.Current())
}

func TestManagerKeepsProfileForSameState(t *testing.T) {
	m := NewManager(true, zap.NewNop())

	first := m.ProfileFor("Estoy muy ansioso, tengo mucho miedo")
	second := m.ProfileFor("Estoy muy ansioso, tengo mucho miedo")

	assert.Equal(t, first, second)
}

func TestManagerSwitchesOnNewEmotion(t *testing.T) {
	m := NewManager(true, zap.NewNop())

	m.ProfileFor("Estoy muy ansioso, tengo mucho miedo")
	profile := m.ProfileFor("Hoy me siento en paz")

	assert.Equal(t, -0.1, profile.Speed)
}

func TestManagerReset(t *testing.T) {
	m := NewManager(true, zap.NewNop())
	m.ProfileFor("Estoy muy ansioso, tengo mucho miedo")

	m.Reset()

	assert.Equal(t, emotion.NeutralProfile, m.Current())
}

func TestManagerDescription(t *testing.T) {
	m := NewManager(true, zap.NewNop())

	assert.Equal(t, emotion.NeutralProfile.Description, m.Description())

	m.ProfileFor("Estoy muy ansioso, tengo mucho miedo")
	assert.Equal(t, "Voz muy empática y calmante para ansiedad intensa", m.Description())
}
