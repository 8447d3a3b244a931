// Package notify posts generated content to the community channel.
package notify

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Sender is the subset of the bot API the broadcaster needs
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Broadcaster pushes messages to a fixed channel
type Broadcaster struct {
	sender Sender
	chatID tele.ChatID
	logger *zap.Logger
}

// NewBroadcaster creates a broadcaster for the given channel
func NewBroadcaster(sender Sender, chatID int64, logger *zap.Logger) *Broadcaster {
	return &Broadcaster{
		sender: sender,
		chatID: tele.ChatID(chatID),
		logger: logger,
	}
}

// Post sends one message to the channel. Failures are logged and
// returned; a missed broadcast never takes the bot down.
func (b *Broadcaster) Post(message string) error {
	if _, err := b.sender.Send(b.chatID, message); err != nil {
		b.logger.Error("Failed to post to channel",
			zap.Int64("chat_id", int64(b.chatID)),
			zap.Error(err),
		)
		return err
	}

	b.logger.Info("Posted to channel", zap.Int64("chat_id", int64(b.chatID)))
	return nil
}
