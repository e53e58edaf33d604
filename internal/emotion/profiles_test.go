package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestProfileFor(t *testing.T) {
	tests := []struct {
		name      string
		category  Category
		intensity Intensity
		wantSpeed float64
		wantTags  []string
	}{
		{
			name:      "anxiety high",
			category:  Ansiedad,
			intensity: Alta,
			wantSpeed: -0.5,
			wantTags:  []string{"positivity:high", "sadness:low"},
		},
		{
			name:      "anxiety critical uses the high tier",
			category:  Ansiedad,
			intensity: Critica,
			wantSpeed: -0.5,
			wantTags:  []string{"positivity:high", "sadness:low"},
		},
		{
			name:      "anxiety moderate",
			category:  Ansiedad,
			intensity: Media,
			wantSpeed: -0.3,
			wantTags:  []string{"positivity:low", "sadness:low"},
		},
		{
			name:      "despair is the slowest",
			category:  Desesperacion,
			intensity: Critica,
			wantSpeed: -0.6,
			wantTags:  []string{"positivity:high", "sadness:high"},
		},
		{
			name:      "calm is the fastest",
			category:  Calma,
			intensity: Baja,
			wantSpeed: -0.1,
			wantTags:  []string{"positivity:low"},
		},
		{
			name:      "neutral default",
			category:  Neutral,
			intensity: Baja,
			wantSpeed: -0.3,
			wantTags:  nil,
		},
		{
			name:      "unmapped category falls back to neutral",
			category:  Category("euforia"),
			intensity: Alta,
			wantSpeed: -0.3,
			wantTags:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := ProfileFor(tt.category, tt.intensity)
			assert.Equal(t, tt.wantSpeed, profile.Speed)
			assert.Equal(t, tt.wantTags, profile.Emotion)
			assert.NotEmpty(t, profile.Description)
		})
	}
}

func TestProfileTableCoversAllCategories(t *testing.T) {
	categories := []Category{
		Ansiedad, Tristeza, Miedo, Estres, Frustracion, Confusion,
		Soledad, Urgencia, Desesperacion, Esperanza, Calma, Neutral,
	}

	for _, category := range categories {
		_, ok := profileTable[category]
		assert.True(t, ok, "missing profile entry for %s", category)
	}
}

func TestProfileSpeedRange(t *testing.T) {
	for category, entries := range profileTable {
		for _, entry := range entries {
			assert.GreaterOrEqual(t, entry.Profile.Speed, -0.6, "%s too slow", category)
			assert.LessOrEqual(t, entry.Profile.Speed, -0.1, "%s too fast", category)
		}
	}
}

func TestWorkedExampleEndToEnd(t *testing.T) {
	// The full pipeline for the canonical utterance: anxious, intense.
	detector := NewDetector(zap.NewNop())
	obs := detector.Detect("Estoy muy ansioso, tengo mucho miedo")
	profile := ProfileForObservation(obs)

	assert.Equal(t, -0.5, profile.Speed)
}

func TestNeutralFallbackEndToEnd(t *testing.T) {
	detector := NewDetector(zap.NewNop())
	obs := detector.Detect("Hola, buen día")
	profile := ProfileForObservation(obs)

	assert.Equal(t, -0.3, profile.Speed)
	assert.Empty(t, profile.Emotion)
}
