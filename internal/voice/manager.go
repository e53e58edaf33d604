package voice

import (
	"context"

	"github.com/calmaria/maria-bot/internal/emotion"
	"go.uber.org/zap"
)

// Synthesizer is the external speech-synthesis collaborator. It receives
// the adapted profile alongside the text and is expected to fall back on
// its own if the requested profile is unsupported. Implementations live
// outside this module.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, profile emotion.VoiceProfile) ([]byte, error)
}

// Manager adapts the voice profile to the user's emotional state over a
// single conversation. One instance per session; turns are sequential so
// no locking is needed.
type Manager struct {
	enabled  bool
	detector *emotion.Detector
	logger   *zap.Logger

	hasProfile bool
	current    emotion.VoiceProfile
	lastObs    emotion.Observation
}

func NewManager(enabled bool, logger *zap.Logger) *Manager {
	return &Manager{
		enabled:  enabled,
		detector: emotion.NewDetector(logger),
		current:  emotion.NeutralProfile,
		logger:   logger,
	}
}

// ProfileFor analyzes one user utterance and returns the voice profile
// the next agent reply should be spoken with. The active profile only
// changes when the speed moves at least 0.1, the emotion tags change, or
// the observation itself differs; otherwise the current one is reused.
func (m *Manager) ProfileFor(userText string) emotion.VoiceProfile {
	if !m.enabled {
		return emotion.NeutralProfile
	}

	obs := m.detector.Detect(userText)
	profile := emotion.ProfileForObservation(obs)

	if m.shouldUpdate(profile, obs) {
		m.logger.Info("Adapting voice profile",
			zap.String("emotion", string(obs.Category)),
			zap.String("intensity", obs.Intensity.String()),
			zap.Float64("speed", profile.Speed),
			zap.String("description", profile.Description))
		m.current = profile
		m.lastObs = obs
		m.hasProfile = true
	}

	return m.current
}

func (m *Manager) shouldUpdate(profile emotion.VoiceProfile, obs emotion.Observation) bool {
	if !m.hasProfile {
		return true
	}
	speedDelta := profile.Speed - m.current.Speed
	if speedDelta < 0 {
		speedDelta = -speedDelta
	}
	return speedDelta >= 0.1 ||
		!equalTags(profile.Emotion, m.current.Emotion) ||
		obs != m.lastObs
}

// Current returns the active profile without reanalyzing anything.
func (m *Manager) Current() emotion.VoiceProfile {
	return m.current
}

// Description of the active profile, for logging and diagnostics.
func (m *Manager) Description() string {
	return m.current.Description
}

// Reset drops the adapted state back to the neutral default.
func (m *Manager) Reset() {
	m.current = emotion.NeutralProfile
	m.lastObs = emotion.Observation{}
	m.hasProfile = false
}

func equalTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
