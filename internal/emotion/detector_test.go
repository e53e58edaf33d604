package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantCategory  Category
		wantIntensity Intensity
	}{
		{
			name:          "anxious with intensifier",
			text:          "Estoy muy ansioso, tengo mucho miedo",
			wantCategory:  Ansiedad,
			wantIntensity: Alta,
		},
		{
			name:          "neutral greeting",
			text:          "Hola, buen día",
			wantCategory:  Neutral,
			wantIntensity: Baja,
		},
		{
			name:          "single match is low",
			text:          "Me siento triste",
			wantCategory:  Tristeza,
			wantIntensity: Baja,
		},
		{
			name:          "two matches is medium",
			text:          "Me siento triste y sin ganas de nada",
			wantCategory:  Tristeza,
			wantIntensity: Media,
		},
		{
			name:          "crisis keyword forces critical",
			text:          "Tengo miedo, por favor ayuda",
			wantCategory:  Miedo,
			wantIntensity: Critica,
		},
		{
			name:          "crisis phrase picks despair",
			text:          "No puedo más, estoy perdida",
			wantCategory:  Desesperacion,
			wantIntensity: Critica,
		},
		{
			name:          "calm",
			text:          "Hoy me siento en paz",
			wantCategory:  Calma,
			wantIntensity: Baja,
		},
		{
			name:          "hope",
			text:          "Siento que estoy mejorando, tengo fe",
			wantCategory:  Esperanza,
			wantIntensity: Media,
		},
		{
			name:          "loneliness",
			text:          "Me siento sola, nadie me entiende",
			wantCategory:  Soledad,
			wantIntensity: Media,
		},
		{
			name:          "empty text",
			text:          "   ",
			wantCategory:  Neutral,
			wantIntensity: Baja,
		},
	}

	detector := NewDetector(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := detector.Detect(tt.text)
			assert.Equal(t, tt.wantCategory, obs.Category, "category for %q", tt.text)
			assert.Equal(t, tt.wantIntensity, obs.Intensity, "intensity for %q", tt.text)
		})
	}
}

func TestDetectTieBreakPrefersCrisisAdjacent(t *testing.T) {
	// One match for Miedo and one for Calma: the crisis-adjacent
	// category must win the tie.
	detector := NewDetector(zap.NewNop())
	obs := detector.Detect("siento temor pero busco equilibrio")

	assert.Equal(t, Miedo, obs.Category)
}

func TestDetectObservationCounts(t *testing.T) {
	detector := NewDetector(zap.NewNop())
	obs := detector.Detect("Estoy muy ansioso, tengo mucho miedo")

	assert.Equal(t, 2, obs.Matches)
	assert.GreaterOrEqual(t, obs.Intensifiers, 1)
	assert.False(t, obs.Crisis)
}

func TestIntensityScale(t *testing.T) {
	tests := []struct {
		name        string
		matches     int
		intensified bool
		crisis      bool
		want        Intensity
	}{
		{name: "one match", matches: 1, want: Baja},
		{name: "two matches", matches: 2, want: Media},
		{name: "three matches", matches: 3, want: Alta},
		{name: "five matches", matches: 5, want: Alta},
		{name: "one match intensified", matches: 1, intensified: true, want: Media},
		{name: "three matches intensified", matches: 3, intensified: true, want: Critica},
		{name: "crisis overrides everything", matches: 1, crisis: true, want: Critica},
		{name: "intensifier capped at critical", matches: 5, intensified: true, want: Critica},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, computeIntensity(tt.matches, tt.intensified, tt.crisis))
		})
	}
}
