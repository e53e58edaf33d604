package richcontent

import (
	"fmt"
	"strings"
	"time"

	"github.com/calmaria/maria-bot/internal/models"
	"go.uber.org/zap"
)

// DefaultSessionTimeout is the elapsed-time closing trigger.
const DefaultSessionTimeout = 30 * time.Minute

const defaultUsername = "Usuario"

// Farewell phrases that close a session when the agent says them with the
// user's name attached.
var usernameClosingPatterns = []string{
	"gracias por confiar en mí hoy, %s",
	"gracias por compartir conmigo, %s",
	"ha sido un honor acompañarte, %s",
	"ha sido un placer acompañarte, %s",
	"que tengas un día tranquilo, %s",
	"que tengas un buen día, %s",
	"hasta pronto, %s",
	"hasta la próxima, %s",
	"cuídate mucho, %s",
	"cuídate bien, %s",
	"nos vemos pronto, %s",
	"que descanses, %s",
	"que te vaya bien, %s",
}

// Complete farewell phrases, matched at any message length.
var closingPatterns = []string{
	"que las herramientas que exploramos te acompañen",
	"que las herramientas te acompañen",
	"que las técnicas que vimos te ayuden",
	"que los recursos que compartimos te sirvan",
	"recuerda que tienes recursos internos muy valiosos",
	"recuerda que tienes herramientas valiosas",
	"recuerda las técnicas que practicamos",
	"estoy aquí cuando necesites apoyo con la ansiedad",
	"estoy aquí cuando necesites hablar",
	"estoy aquí cuando me necesites",
	"siempre puedes volver cuando necesites apoyo",
	"puedes regresar cuando lo necesites",
	"que tengas un día tranquilo",
	"que tengas un buen día",
	"que tengas una buena tarde",
	"que tengas una buena noche",
	"cuídate mucho",
	"cuídate bien",
	"hasta la próxima",
	"hasta pronto",
	"nos vemos pronto",
	"que descanses bien",
	"que te vaya muy bien",
	"espero haberte ayudado",
	"me alegra haber podido ayudarte",
	"ha sido un placer acompañarte",
	"gracias por permitirme acompañarte",
	"gracias por compartir conmigo",
}

// Shorter ending phrases, only trusted in short messages.
var endingPhrases = []string{
	"gracias por confiar en mí",
	"gracias por compartir",
	"ha sido un honor acompañarte",
	"que las herramientas te acompañen",
	"que las técnicas te ayuden",
	"recuerda que tienes recursos",
	"recuerda las herramientas",
	"estoy aquí cuando necesites",
	"puedes volver cuando necesites",
	"siempre puedes regresar",
	"hasta la próxima sesión",
	"nos vemos en la próxima",
	"que tengas un día",
	"que tengas una buena",
	"hasta luego",
	"nos vemos",
	"que descanses",
	"que todo salga bien",
	"que te vaya bien",
}

var farewellKeywords = []string{
	"gracias", "acompañar", "ayudar", "confiar", "compartir",
	"herramientas", "técnicas", "recursos",
}

var closingKeywords = []string{
	"cuídate", "hasta", "nos vemos", "pronto", "día", "noche",
	"tarde", "descanses", "bien",
}

// IsClosingMessage reports whether agent text reads as a natural farewell.
func IsClosingMessage(text, username string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return false
	}

	if username != "" && username != defaultUsername {
		name := strings.ToLower(username)
		for _, pattern := range usernameClosingPatterns {
			if strings.Contains(lower, fmt.Sprintf(pattern, name)) {
				return true
			}
		}
	}

	for _, pattern := range closingPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}

	if len(lower) < 300 {
		for _, phrase := range endingPhrases {
			if strings.Contains(lower, phrase) {
				return true
			}
		}
	}

	// Combination heuristic: several farewell words plus a closing word
	// in a short message.
	if len(lower) < 250 {
		farewells := 0
		for _, kw := range farewellKeywords {
			if strings.Contains(lower, kw) {
				farewells++
			}
		}
		closings := 0
		for _, kw := range closingKeywords {
			if strings.Contains(lower, kw) {
				closings++
			}
		}
		if farewells >= 2 && closings >= 1 {
			return true
		}
	}

	return false
}

// FinalizerConfig carries the closing-offer material.
type FinalizerConfig struct {
	SessionTimeout time.Duration
	// QRImageURL is the configured static location of the contribution QR
	// asset; this package never computes it.
	QRImageURL string
}

// Finalizer appends the voluntary-contribution content exactly once per
// session, on the first closing signal. It is evaluated synchronously on
// each turn; there is no background timer.
type Finalizer struct {
	config FinalizerConfig
	logger *zap.Logger
	clock  func() time.Time
}

func NewFinalizer(config FinalizerConfig, logger *zap.Logger) *Finalizer {
	if config.SessionTimeout <= 0 {
		config.SessionTimeout = DefaultSessionTimeout
	}
	return &Finalizer{
		config: config,
		logger: logger,
		clock:  time.Now,
	}
}

// Finalize checks the closing triggers for one turn and, on the first one
// in the session, appends the contribution suffix, QR image and card.
// It returns the (possibly extended) outgoing text. Subsequent triggers
// are no-ops.
func (f *Finalizer) Finalize(session *models.Session, text string, explicitClosing bool, rc *models.RichContent) string {
	if session.Finalized {
		return text
	}

	now := f.clock()
	timedOut := session.Elapsed(now) > f.config.SessionTimeout
	natural := IsClosingMessage(text, session.Username)
	if !explicitClosing && !natural && !timedOut {
		return text
	}

	session.Finalized = true
	session.ClosingOffer = true

	f.logger.Info("Session closing detected",
		zap.String("session_id", session.ID),
		zap.Bool("explicit_tag", explicitClosing),
		zap.Bool("natural_farewell", natural),
		zap.Bool("timed_out", timedOut))

	text = f.closingText(text, session.Username)

	rc.Add(models.Image{
		Title: "Apoya este proyecto",
		URL:   f.config.QRImageURL,
		Alt:   "Código QR para contribución voluntaria",
	})
	rc.Add(models.Card{
		Title:    "Contribución voluntaria",
		Content:  "Si esta conversación te ha sido útil, puedes apoyar el proyecto con una contribución voluntaria escaneando el código QR. Es completamente opcional y no afecta tu acceso.",
		Category: models.CardInfo,
	})

	return text
}

// closingText guarantees the outgoing farewell is speakable: an empty
// message becomes a generic farewell, a known username gets appended if
// missing, and the extended contribution suffix goes last.
func (f *Finalizer) closingText(text, username string) string {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		if username == "" {
			username = defaultUsername
		}
		text = fmt.Sprintf("Hasta pronto, %s.", username)
	case username != "" && username != defaultUsername && !strings.Contains(text, username):
		text = fmt.Sprintf("%s %s.", strings.TrimRight(text, "."), username)
	}
	return text + " Antes de que te vayas: si quieres, puedes apoyar este espacio con una contribución voluntaria."
}
