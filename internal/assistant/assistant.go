package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Assistant produces the raw agent reply for one user turn. The text may
// contain zero or more directive tags, in any order, possibly malformed;
// enrichment downstream is responsible for tolerating that.
type Assistant interface {
	Reply(ctx context.Context, username, userText string) string
}

const fallbackReply = "Lo siento, estoy teniendo un problema para responderte en este momento. ¿Puedes intentarlo de nuevo en un momento?"

const systemPromptTemplate = `Eres María, una asistente virtual empática especializada en el manejo de la ansiedad. Hablas en español, con calidez y sin juicios. El usuario se llama %s.

Puedes enriquecer tus respuestas con contenido estructurado usando estas etiquetas:
[IMAGEN: título, url, alt, descripción]
[ENLACE: título, url, descripción, tipo]
[BOTON: título, acción, estilo, icono]
[TARJETA: título, contenido, tipo, paso1|paso2|paso3]
[SUGERIR_VIDEO: título, url]

Cuando la conversación llegue a un cierre natural, despídete con calidez e incluye la etiqueta [CIERRE_DE_SESION].`

// OpenAIAssistant generates replies through the chat-completion API.
// Failures degrade to a static apology; the turn loop never sees an
// error from here.
type OpenAIAssistant struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

func NewOpenAIAssistant(apiKey, model string, maxTokens int, temperature float64, logger *zap.Logger) *OpenAIAssistant {
	return &OpenAIAssistant{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

func (a *OpenAIAssistant) Reply(ctx context.Context, username, userText string) string {
	if username == "" {
		username = "Usuario"
	}

	resp, err := a.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: a.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: fmt.Sprintf(systemPromptTemplate, username),
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userText,
				},
			},
			MaxTokens:   a.maxTokens,
			Temperature: float32(a.temperature),
		},
	)
	if err != nil {
		a.logger.Error("Failed to get assistant reply", zap.Error(err))
		return fallbackReply
	}
	if len(resp.Choices) == 0 {
		a.logger.Error("Assistant returned no choices")
		return fallbackReply
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return fallbackReply
	}
	return reply
}
