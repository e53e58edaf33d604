package emotion

// VoiceProfile carries the speech-synthesis adaptation for a detected
// emotional state: a speed offset (documented range -0.6 to -0.1) and a
// set of weighted emotion tags such as "positivity:high". Immutable;
// safe to share across sessions.
type VoiceProfile struct {
	Speed       float64  `json:"speed"`
	Emotion     []string `json:"emotion,omitempty"`
	Description string   `json:"description"`
}

// NeutralProfile is the fallback when nothing is detected or a category
// has no table entry.
var NeutralProfile = VoiceProfile{
	Speed:       -0.3,
	Description: "Voz empática y calmada por defecto",
}

// profileEntry tabulates one profile for intensities at or above Min.
type profileEntry struct {
	Min     Intensity
	Profile VoiceProfile
}

// Canonical profile table. Entries per category are ordered from highest
// documented intensity down; selection picks the first entry the
// observed intensity reaches, or the lowest one as the nearest fallback.
var profileTable = map[Category][]profileEntry{
	Ansiedad: {
		{Min: Alta, Profile: VoiceProfile{
			Speed:       -0.5,
			Emotion:     []string{"positivity:high", "sadness:low"},
			Description: "Voz muy empática y calmante para ansiedad intensa",
		}},
		{Min: Baja, Profile: VoiceProfile{
			Speed:       -0.3,
			Emotion:     []string{"positivity:low", "sadness:low"},
			Description: "Voz empática y serena para ansiedad moderada",
		}},
	},
	Tristeza: {
		{Min: Baja, Profile: VoiceProfile{
			Speed:       -0.4,
			Emotion:     []string{"positivity:low", "sadness:high"},
			Description: "Voz cálida y comprensiva para tristeza",
		}},
	},
	Miedo: {
		{Min: Baja, Profile: VoiceProfile{
			Speed:       -0.5,
			Emotion:     []string{"positivity:high"},
			Description: "Voz protectora y tranquilizadora para miedo",
		}},
	},
	Estres: {
		{Min: Baja, Profile: VoiceProfile{
			Speed:       -0.4,
			Emotion:     []string{"positivity:low"},
			Description: "Voz serena y equilibrada para estrés",
		}},
	},
	Frustracion: {
		{Min: Baja, Profile: VoiceProfile{
			Speed:       -0.3,
			Emotion:     []string{"positivity:low", "sadness:low"},
			Description: "Voz validante y paciente para frustración",
		}},
	},
	Confusion: {
		{Min: Baja, Profile: VoiceProfile{
			Speed:       -0.4,
			Emotion:     []string{"positivity:low"},
			Description: "Voz clara y paciente para confusión",
		}},
	},
	Soledad: {
		{Min: Baja, Profile: VoiceProfile{
			Speed:       -0.4,
			Emotion:     []string{"positivity:low", "sadness:high"},
			Description: "Voz cercana y acogedora para soledad",
		}},
	},
	Urgencia: {
		{Min: Baja, Profile: VoiceProfile{
			Speed:       -0.2,
			Emotion:     []string{"positivity:low"},
			Description: "Voz equilibrada pero atenta para urgencia",
		}},
	},
	Desesperacion: {
		{Min: Baja, Profile: VoiceProfile{
			Speed:       -0.6,
			Emotion:     []string{"positivity:high", "sadness:high"},
			Description: "Voz muy empática y esperanzadora para desesperación",
		}},
	},
	Esperanza: {
		{Min: Baja, Profile: VoiceProfile{
			Speed:       -0.2,
			Emotion:     []string{"positivity:high"},
			Description: "Voz alentadora y esperanzadora",
		}},
	},
	Calma: {
		{Min: Baja, Profile: VoiceProfile{
			Speed:       -0.1,
			Emotion:     []string{"positivity:low"},
			Description: "Voz natural y estable para calma",
		}},
	},
	Neutral: {
		{Min: Baja, Profile: NeutralProfile},
	},
}

// ProfileFor is a pure lookup from (category, intensity) to the canonical
// voice profile. Deterministic and safe for concurrent use.
func ProfileFor(category Category, intensity Intensity) VoiceProfile {
	entries, ok := profileTable[category]
	if !ok || len(entries) == 0 {
		return NeutralProfile
	}
	for _, entry := range entries {
		if intensity >= entry.Min {
			return entry.Profile
		}
	}
	// Below every documented level: nearest is the lowest entry.
	return entries[len(entries)-1].Profile
}

// ProfileForObservation is the common composition of Detect and
// ProfileFor.
func ProfileForObservation(obs Observation) VoiceProfile {
	return ProfileFor(obs.Category, obs.Intensity)
}
