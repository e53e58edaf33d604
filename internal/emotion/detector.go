package emotion

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Category is one of the fixed emotion categories the detector can
// assign. Neutral is the zero-signal default, never matched by patterns.
type Category string

const (
	Ansiedad      Category = "ansiedad"
	Tristeza      Category = "tristeza"
	Miedo         Category = "miedo"
	Estres        Category = "estres"
	Frustracion   Category = "frustracion"
	Confusion     Category = "confusion"
	Soledad       Category = "soledad"
	Urgencia      Category = "urgencia"
	Desesperacion Category = "desesperacion"
	Esperanza     Category = "esperanza"
	Calma         Category = "calma"
	Neutral       Category = "neutral"
)

// Intensity is the four-level strength scale of a detected emotion.
type Intensity int

const (
	Baja Intensity = iota + 1
	Media
	Alta
	Critica
)

func (i Intensity) String() string {
	switch i {
	case Baja:
		return "baja"
	case Media:
		return "media"
	case Alta:
		return "alta"
	case Critica:
		return "critica"
	}
	return "desconocida"
}

// Observation is the detector's verdict for one utterance.
type Observation struct {
	Category     Category
	Intensity    Intensity
	Matches      int
	Intensifiers int
	Crisis       bool
}

// rule binds a category to its pattern set and its tie-break rank.
// Lower rank wins ties; crisis-adjacent categories come first.
type rule struct {
	category Category
	rank     int
	patterns []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		patterns[i] = regexp.MustCompile(expr)
	}
	return patterns
}

// The keyword tables are data, not logic: extending a category or adding
// one means touching only this table.
var rules = []rule{
	{
		category: Desesperacion,
		rank:     1,
		patterns: compileAll(
			`\b(desesperación|desesperada|desesperado)\b`,
			`\b(sin esperanza|sin salida|no hay solución)\b`,
			`\b(no puedo más|ya no aguanto|estoy perdida|estoy perdido)\b`,
			`\b(quiero desaparecer|no vale la pena|todo está mal)\b`,
		),
	},
	{
		category: Miedo,
		rank:     2,
		patterns: compileAll(
			`\b(miedo|temor|terror|pánico|pavor)\b`,
			`\b(asustado|asustada|aterrorizado|aterrorizada)\b`,
			`\b(fobia|me da miedo|tengo miedo)\b`,
			`\b(me aterra|me horroriza|me espanta)\b`,
		),
	},
	{
		category: Ansiedad,
		rank:     3,
		patterns: compileAll(
			`\b(ansiedad|ansioso|ansiosa|nervios|nervioso|nerviosa)\b`,
			`\b(preocup\w+|inquiet\w+|intranquil\w+)\b`,
			`\b(no puedo parar de pensar|mi mente no para|no puedo relajarme)\b`,
			`\b(me siento agobiad\w+|me ahogo|no puedo respirar bien)\b`,
			`\b(tengo (mucho |tanto )?miedo de que|y si pasa|qué tal si)\b`,
			`tengo (mucho|tanto) miedo`,
			`\b(me da pánico|me da terror)\b`,
		),
	},
	{
		category: Tristeza,
		rank:     4,
		patterns: compileAll(
			`\b(triste|tristeza|melancolía|melancólic\w+)\b`,
			`\b(deprimid\w+|bajoneado|decaíd\w+)\b`,
			`\b(llorando|ganas de llorar|quiero llorar)\b`,
			`\b(sin ganas|sin energía|sin ánimo)\b`,
			`\b(me siento vacío|me siento vacía|todo me da igual)\b`,
		),
	},
	{
		category: Estres,
		rank:     5,
		patterns: compileAll(
			`\b(estrés|estresado|estresada|estresante)\b`,
			`\b(agobio|agobiad\w+|abrumad\w+)\b`,
			`\b(presión|presionad\w+|saturad\w+)\b`,
			`\b(no doy más|estoy al límite)\b`,
			`\b(sobrecargad\w+|desbordad\w+)\b`,
		),
	},
	{
		category: Frustracion,
		rank:     6,
		patterns: compileAll(
			`\b(frustrad\w+|frustrante|frustración)\b`,
			`\b(harto|harta|cansad\w+ de)\b`,
			`\b(impotencia|rabia|ira|molest\w+)\b`,
			`\b(no aguanto|no soporto|me irrita)\b`,
		),
	},
	{
		category: Soledad,
		rank:     7,
		patterns: compileAll(
			`\b(soledad|solitari\w+)\b`,
			`\b(me siento sol\w+|estoy sol\w+ en esto)\b`,
			`\b(nadie me entiende|nadie me escucha|no tengo a nadie)\b`,
			`\b(aislad\w+|abandonad\w+)\b`,
		),
	},
	{
		category: Confusion,
		rank:     8,
		patterns: compileAll(
			`\b(confundid\w+|confusión|desorientad\w+)\b`,
			`\b(no entiendo|no sé qué|no sé cómo)\b`,
			`\b(perdid\w+|desubicad\w+|sin rumbo)\b`,
			`\b(no sé qué hacer|no sé por dónde empezar)\b`,
		),
	},
	{
		category: Urgencia,
		rank:     9,
		patterns: compileAll(
			`\b(urgente|rápido|ahora mismo|inmediatamente)\b`,
			`\b(necesito ya|debo urgente)\b`,
			`\b(no puedo esperar|es urgente|por favor rápido)\b`,
		),
	},
	{
		category: Esperanza,
		rank:     10,
		patterns: compileAll(
			`\b(esperanza|esperanzad\w+|optimista)\b`,
			`\b(mejorando|progreso|avance)\b`,
			`\b(creo que puedo|tengo fe)\b`,
		),
	},
	{
		category: Calma,
		rank:     11,
		patterns: compileAll(
			`\b(calmad\w+|tranquil\w+|relajad\w+|sereno|serena)\b`,
			`\b(en paz|equilibrio|estable)\b`,
			`\b(me siento bien|está todo bien|todo ok)\b`,
		),
	},
}

var intensifierPatterns = compileAll(
	`\b(muy|mucho|muchísimo|extremadamente|súper|ultra)\b`,
	`\b(demasiado|bastante|realmente|verdaderamente)\b`,
	`\b(increíblemente|terriblemente|horriblemente)\b`,
	`\b(totalmente|completamente|absolutamente)\b`,
)

var crisisPatterns = compileAll(
	`\b(crisis|emergencia|crítico|grave)\b`,
	`\b(no puedo más|al límite|colapso)\b`,
	`\b(ayuda|socorro|sos|auxilio)\b`,
)

// Detector classifies a user utterance against the keyword tables. It
// never fails: zero signal yields (Neutral, Baja).
type Detector struct {
	logger *zap.Logger
}

func NewDetector(logger *zap.Logger) *Detector {
	return &Detector{logger: logger}
}

// Detect returns the single best-matching observation for the utterance.
// The category with the most pattern matches wins; ties go to the lower
// rank. Intensity starts from the match count (1 Baja, 2 Media, 3+ Alta),
// goes up one level when an intensifier is present, and jumps straight to
// Crítica on any crisis keyword.
func (d *Detector) Detect(text string) Observation {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return Observation{Category: Neutral, Intensity: Baja}
	}

	best := Observation{Category: Neutral}
	bestRank := len(rules) + 1
	for _, r := range rules {
		matches := 0
		for _, pattern := range r.patterns {
			if pattern.MatchString(lower) {
				matches++
			}
		}
		if matches > best.Matches || (matches > 0 && matches == best.Matches && r.rank < bestRank) {
			best.Category = r.category
			best.Matches = matches
			bestRank = r.rank
		}
	}

	if best.Matches == 0 {
		return Observation{Category: Neutral, Intensity: Baja}
	}

	for _, pattern := range intensifierPatterns {
		if pattern.MatchString(lower) {
			best.Intensifiers++
		}
	}
	for _, pattern := range crisisPatterns {
		if pattern.MatchString(lower) {
			best.Crisis = true
			break
		}
	}

	best.Intensity = computeIntensity(best.Matches, best.Intensifiers > 0, best.Crisis)

	d.logger.Debug("Emotion detected",
		zap.String("category", string(best.Category)),
		zap.String("intensity", best.Intensity.String()),
		zap.Int("matches", best.Matches),
		zap.Bool("crisis", best.Crisis))

	return best
}

func computeIntensity(matches int, intensified, crisis bool) Intensity {
	if crisis {
		return Critica
	}

	var level Intensity
	switch {
	case matches >= 3:
		level = Alta
	case matches == 2:
		level = Media
	default:
		level = Baja
	}
	if intensified && level < Critica {
		level++
	}
	return level
}
