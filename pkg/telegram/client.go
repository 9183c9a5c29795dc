package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Config holds the Telegram connection parameters.
type Config struct {
	BotToken string
	ChatID   int64
}

// Notifier delivers Markdown messages to a configured chat.
type Notifier interface {
	SendMessage(ctx context.Context, text string) error
}

// client is an implementation of Notifier.
type client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewClient creates a new Telegram notifier client and verifies the token
// against the Bot API.
func NewClient(cfg Config) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}
	return &client{
		bot:    bot,
		chatID: cfg.ChatID,
	}, nil
}

// SendMessage sends a Markdown message to the configured chat. A canceled
// context short-circuits before the API call.
func (c *client) SendMessage(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(c.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := c.bot.Send(msg)
	return err
}
