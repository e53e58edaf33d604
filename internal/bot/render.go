package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/calmaria/maria-bot/internal/models"
)

// sendEnriched renders one enriched reply into Telegram messages: the
// text with buttons as an inline keyboard, then links, cards and images
// as follow-up messages.
func (b *Bot) sendEnriched(chatID int64, replyToID int, enriched models.EnrichedMessage) {
	msg := tgbotapi.NewMessage(chatID, enriched.Text)
	msg.ReplyToMessageID = replyToID
	if keyboard := buttonKeyboard(enriched.RichContent.Buttons); keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send reply",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}

	if links := renderLinks(enriched.RichContent.Links); links != "" {
		linkMsg := tgbotapi.NewMessage(chatID, links)
		linkMsg.ParseMode = "MarkdownV2"
		linkMsg.DisableWebPagePreview = true
		if _, err := b.api.Send(linkMsg); err != nil {
			b.logger.Error("Failed to send links",
				zap.Error(err),
				zap.Int64("chat_id", chatID))
		}
	}

	for _, card := range enriched.RichContent.Cards {
		cardMsg := tgbotapi.NewMessage(chatID, renderCard(card))
		cardMsg.ParseMode = "MarkdownV2"
		if _, err := b.api.Send(cardMsg); err != nil {
			b.logger.Error("Failed to send card",
				zap.Error(err),
				zap.Int64("chat_id", chatID),
				zap.String("card", card.Title))
		}
	}

	for _, image := range enriched.RichContent.Images {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(image.URL))
		photo.Caption = image.Caption
		if photo.Caption == "" {
			photo.Caption = image.Title
		}
		if _, err := b.api.Send(photo); err != nil {
			b.logger.Error("Failed to send image",
				zap.Error(err),
				zap.Int64("chat_id", chatID),
				zap.String("url", image.URL))
		}
	}
}

// buttonKeyboard maps buttons to an inline keyboard, one per row. Open
// actions become URL buttons; custom actions ride in the callback data.
func buttonKeyboard(buttons []models.Button) *tgbotapi.InlineKeyboardMarkup {
	if len(buttons) == 0 {
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, btn := range buttons {
		var kb tgbotapi.InlineKeyboardButton
		switch btn.Action.Kind {
		case models.ActionOpenLink, models.ActionOpenVideo:
			kb = tgbotapi.NewInlineKeyboardButtonURL(btn.Title, btn.Action.Payload)
		default:
			kb = tgbotapi.NewInlineKeyboardButtonData(btn.Title, btn.Action.String())
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(kb))
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &keyboard
}

func renderLinks(links []models.Link) string {
	if len(links) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("*Recursos:*\n")
	for _, link := range links {
		sb.WriteString(fmt.Sprintf("[%s](%s)", escapeMarkdown(link.Title), link.URL))
		if link.Description != "" {
			sb.WriteString(" \\- " + escapeMarkdown(link.Description))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderCard(card models.Card) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s*\n%s", escapeMarkdown(card.Title), escapeMarkdown(card.Content)))
	for i, step := range card.Steps {
		sb.WriteString(fmt.Sprintf("\n%d\\. %s", i+1, escapeMarkdown(step)))
	}
	return sb.String()
}
