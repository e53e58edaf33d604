package richcontent

import (
	"github.com/calmaria/maria-bot/internal/models"
	"go.uber.org/zap"
)

// Processor runs the full enrichment pass for one agent reply: directive
// extraction, bare-URL classification, then session finalization.
type Processor struct {
	parser    *Parser
	links     *LinkClassifier
	finalizer *Finalizer
	logger    *zap.Logger
}

func NewProcessor(config FinalizerConfig, logger *zap.Logger) *Processor {
	return &Processor{
		parser:    NewParser(logger),
		links:     NewLinkClassifier(logger),
		finalizer: NewFinalizer(config, logger),
		logger:    logger,
	}
}

// Process enriches one outgoing reply. It fails open: on any internal
// panic the original text is returned with empty rich content, so the
// agent's reply is always deliverable.
func (p *Processor) Process(session *models.Session, text string) (msg models.EnrichedMessage) {
	msg = models.EnrichedMessage{Text: text, RichContent: models.NewRichContent()}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Enrichment failed, falling back to plain text",
				zap.Any("panic", r),
				zap.String("session_id", session.ID))
			msg = models.EnrichedMessage{Text: text, RichContent: models.NewRichContent()}
		}
	}()

	parsed := p.parser.Parse(text)
	for _, d := range parsed.Directives {
		msg.RichContent.Add(d)
	}
	msg.Text = parsed.Text

	p.links.Classify(msg.Text, msg.RichContent)

	msg.Text = p.finalizer.Finalize(session, msg.Text, parsed.Closing, msg.RichContent)

	return msg
}
