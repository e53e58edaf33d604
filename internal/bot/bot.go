package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/calmaria/maria-bot/internal/assistant"
	"github.com/calmaria/maria-bot/internal/models"
	"github.com/calmaria/maria-bot/internal/richcontent"
	"github.com/calmaria/maria-bot/internal/storage"
	"github.com/calmaria/maria-bot/internal/textutil"
	"github.com/calmaria/maria-bot/internal/voice"
)

// conversation bundles the per-chat state: the session record mutated by
// the finalizer and the adaptive voice manager.
type conversation struct {
	session *models.Session
	voice   *voice.Manager
}

type Bot struct {
	api           *tgbotapi.BotAPI
	storage       storage.Storage
	assistant     assistant.Assistant
	processor     *richcontent.Processor
	adaptiveVoice bool
	logger        *zap.Logger

	// One conversation per chat. Updates are handled sequentially, so a
	// chat's session sees strictly ordered turns.
	conversations map[int64]*conversation
}

func New(token string, store storage.Storage, asst assistant.Assistant, processor *richcontent.Processor, adaptiveVoice bool, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:           api,
		storage:       store,
		assistant:     asst,
		processor:     processor,
		adaptiveVoice: adaptiveVoice,
		logger:        logger,
		conversations: make(map[int64]*conversation),
	}, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(update.Message)
	}

	return nil
}

// conversationFor returns the chat's conversation, starting a fresh
// session on first contact.
func (b *Bot) conversationFor(message *tgbotapi.Message) *conversation {
	if conv, exists := b.conversations[message.Chat.ID]; exists {
		return conv
	}

	session := models.NewSession(uuid.New().String(), message.From.ID, displayName(message), time.Now())
	conv := &conversation{
		session: session,
		voice:   voice.NewManager(b.adaptiveVoice, b.logger),
	}
	b.conversations[message.Chat.ID] = conv

	b.logger.Info("Session started",
		zap.String("session_id", session.ID),
		zap.Int64("user_id", session.UserID),
		zap.String("username", session.Username))

	return conv
}

func displayName(message *tgbotapi.Message) string {
	if message.From.FirstName != "" {
		return message.From.FirstName
	}
	if message.From.UserName != "" {
		return message.From.UserName
	}
	return "Usuario"
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	ctx := context.Background()

	// Handle commands
	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	content := message.Text
	if message.Caption != "" {
		content = message.Caption
	}
	if content == "" {
		return
	}

	conv := b.conversationFor(message)
	conv.session.Touch(time.Now())

	// Pick the voice profile for the reply from the user's emotional
	// tone; the speech adapter consumes it outside this handler.
	profile := conv.voice.ProfileFor(content)
	b.logger.Debug("Voice profile for reply",
		zap.String("session_id", conv.session.ID),
		zap.Float64("speed", profile.Speed),
		zap.Strings("emotion", profile.Emotion))

	userMsg := &models.Message{
		ID:        uuid.New().String(),
		SessionID: conv.session.ID,
		UserID:    message.From.ID,
		Role:      models.RoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := b.storage.SaveMessage(ctx, userMsg); err != nil {
		b.logger.Error("Failed to save user message",
			zap.Error(err),
			zap.String("message_id", userMsg.ID),
			zap.Int64("user_id", message.From.ID))
	}

	reply := b.assistant.Reply(ctx, conv.session.Username, content)

	enriched := b.processor.Process(conv.session, reply)

	agentMsg := &models.Message{
		ID:          uuid.New().String(),
		SessionID:   conv.session.ID,
		UserID:      message.From.ID,
		Role:        models.RoleAgent,
		Content:     enriched.Text,
		RichContent: enriched.RichContent,
		CreatedAt:   time.Now(),
	}
	if err := b.storage.SaveMessage(ctx, agentMsg); err != nil {
		b.logger.Error("Failed to save agent message",
			zap.Error(err),
			zap.String("message_id", agentMsg.ID),
			zap.Int64("user_id", message.From.ID))
	}

	if err := b.storage.SaveSession(ctx, conv.session); err != nil {
		b.logger.Error("Failed to save session",
			zap.Error(err),
			zap.String("session_id", conv.session.ID))
	}

	b.sendEnriched(message.Chat.ID, message.MessageID, enriched)

	if conv.session.Finalized {
		// The contribution offer went out; the next message starts a new
		// session.
		delete(b.conversations, message.Chat.ID)
		b.logger.Info("Session finalized",
			zap.String("session_id", conv.session.ID),
			zap.Int("messages", conv.session.MessageCount))
	}
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "help":
		b.handleHelp(message)
	case "historial":
		b.handleHistory(ctx, message)
	case "reiniciar":
		b.handleReset(message)
	default:
		b.sendMessage(message.Chat.ID, "No conozco ese comando. Usa /help para ver los comandos disponibles.")
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	conv := b.conversationFor(message)
	b.sendMessage(message.Chat.ID, textutil.WelcomeMessage(conv.session.Username))
}

func (b *Bot) handleHelp(message *tgbotapi.Message) {
	help := `Comandos disponibles:
/start - Iniciar la conversación
/help - Mostrar esta ayuda
/historial - Ver tus mensajes recientes
/reiniciar - Empezar una sesión nueva

Escríbeme lo que sientes y te acompaño. Puedo sugerirte técnicas, recursos y videos para el manejo de la ansiedad.`

	b.sendMessage(message.Chat.ID, help)
}

func (b *Bot) handleHistory(ctx context.Context, message *tgbotapi.Message) {
	messages, err := b.storage.GetUserMessages(ctx, message.From.ID, 5, 0)
	if err != nil {
		b.logger.Error("Failed to get user messages",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID))
		b.sendErrorMessage(message.Chat.ID, "No pude recuperar tu historial. Inténtalo de nuevo más tarde.")
		return
	}

	if len(messages) == 0 {
		b.sendMessage(message.Chat.ID, "Todavía no tienes mensajes.")
		return
	}

	response := "*Tus mensajes recientes:*\n\n"
	for _, msg := range messages {
		label := "Tú"
		if msg.Role == models.RoleAgent {
			label = "María"
		}
		response += fmt.Sprintf("*%s:* %s\n\n", label, escapeMarkdown(msg.Content))
	}

	reply := tgbotapi.NewMessage(message.Chat.ID, response)
	reply.ParseMode = "MarkdownV2"
	if _, err := b.api.Send(reply); err != nil {
		b.logger.Error("Failed to send history message",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
	}
}

func (b *Bot) handleReset(message *tgbotapi.Message) {
	if conv, exists := b.conversations[message.Chat.ID]; exists {
		conv.voice.Reset()
		delete(b.conversations, message.Chat.ID)
		b.logger.Info("Session reset by user",
			zap.String("session_id", conv.session.ID),
			zap.Int64("user_id", message.From.ID))
	}
	b.sendMessage(message.Chat.ID, "Listo, empezamos de nuevo. ¿Cómo te sientes en este momento?")
}

// escapeMarkdown escapes the special characters MarkdownV2 reserves.
func escapeMarkdown(text string) string {
	specialChars := []string{"_", "*", "[", "]", "(", ")", "~", "`", ">", "#", "+", "-", "=", "|", "{", "}", ".", "!"}
	escaped := text
	for _, char := range specialChars {
		escaped = strings.ReplaceAll(escaped, char, "\\"+char)
	}
	return escaped
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "⚠️ "+text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send error message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
