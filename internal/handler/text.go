package handler

import (
	"context"
	"strings"

	"github.com/parazzit213/chil-life-bot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// handleText handles all free-text messages. Whether the text is
// captured or dropped depends on the user's session; an empty render
// means nobody was waiting for it and nothing is sent back.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	sess := h.sessions.Get(userID)
	render, next := h.dispatcher.Handle(context.Background(), domain.TextEvent(userID, text), sess)
	h.sessions.Set(userID, next)

	return h.sendRender(c, userID, render)
}
