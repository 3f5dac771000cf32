// Package telegram adapts the Bot API client to the interfaces the rest
// of the bot consumes.
package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxMessageRunes is the Bot API per-message text limit.
const maxMessageRunes = 4096

// Client wraps an authenticated Bot API session.
type Client struct {
	api *tgbotapi.BotAPI
}

// New authenticates against the Bot API with the given token.
func New(token string) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth failed: %w", err)
	}
	return &Client{api: api}, nil
}

// Username returns the bot account's username.
func (c *Client) Username() string {
	return c.api.Self.UserName
}

// Updates starts long polling and returns the update channel. The
// channel closes after Stop.
func (c *Client) Updates(pollTimeout int) tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	return c.api.GetUpdatesChan(u)
}

// SendMessage sends text to the chat, truncated to the Bot API limit.
func (c *Client) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, truncate(text, maxMessageRunes))
	if _, err := c.api.Send(msg); err != nil {
		return fmt.Errorf("telegram sendMessage to chat_id=%d failed: %w", chatID, err)
	}
	return nil
}

// Stop ends long polling; the Updates channel drains and closes.
func (c *Client) Stop() {
	c.api.StopReceivingUpdates()
}

func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
