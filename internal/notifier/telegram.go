package notifier

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xaenox/legal-assistant/internal/models"
	"go.uber.org/zap"
)

// Notifier tells the office about new contact requests.
type Notifier interface {
	NotifyContact(ctx context.Context, r *models.ContactRequest) error
}

// NopNotifier drops every notification.
type NopNotifier struct{}

func (NopNotifier) NotifyContact(context.Context, *models.ContactRequest) error { return nil }

// TelegramNotifier posts contact requests to a single Telegram chat.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

func NewTelegram(token string, chatID int64, logger *zap.Logger) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return NewTelegramWithAPI(api, chatID, logger), nil
}

func NewTelegramWithAPI(api *tgbotapi.BotAPI, chatID int64, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		api:    api,
		chatID: chatID,
		logger: logger,
	}
}

func (n *TelegramNotifier) NotifyContact(ctx context.Context, r *models.ContactRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, formatContact(r))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.DisableWebPagePreview = true

	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}

	n.logger.Debug("Contact notification sent",
		zap.String("contact_id", r.ID),
		zap.Int64("chat_id", n.chatID))
	return nil
}

func formatContact(r *models.ContactRequest) string {
	var b strings.Builder
	b.WriteString("*New contact request*\n\n")
	fmt.Fprintf(&b, "*Name:* %s\n", escapeMarkdown(r.Name))
	fmt.Fprintf(&b, "*Email:* %s\n", escapeMarkdown(r.Email))
	fmt.Fprintf(&b, "*Area:* %s\n", escapeMarkdown("#"+strings.ReplaceAll(r.LegalArea.Label(), " ", "_")))
	fmt.Fprintf(&b, "\n%s", escapeMarkdown(r.Description))
	return b.String()
}

// escapeMarkdown escapes the characters MarkdownV2 reserves.
func escapeMarkdown(text string) string {
	specialChars := []string{"\\", "_", "*", "[", "]", "(", ")", "~", "`", ">", "#", "+", "-", "=", "|", "{", "}", ".", "!"}
	escaped := text
	for _, char := range specialChars {
		escaped = strings.ReplaceAll(escaped, char, "\\"+char)
	}
	return escaped
}
