package handler

import (
	"context"

	"github.com/parazzit213/chil-life-bot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	return h.handleCommand(c, userID, "start")
}

// handleMenu handles /menu command
func (h *Handler) handleMenu(c tele.Context) error {
	return h.handleCommand(c, c.Sender().ID, "menu")
}

func (h *Handler) handleCommand(c tele.Context, userID int64, name string) error {
	sess := h.sessions.Get(userID)
	render, next := h.dispatcher.Handle(context.Background(), domain.CommandEvent(userID, name), sess)
	h.sessions.Set(userID, next)

	return h.sendRender(c, userID, render)
}
