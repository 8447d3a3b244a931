package handler

import (
	"context"
	"strings"
	"unicode"

	"github.com/parazzit213/chil-life-bot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// callbackToken extracts the screen or action token from a callback.
// Buttons built with markup.Data carry it in Unique; older clients may
// deliver it only in Data.
func callbackToken(callback *tele.Callback) string {
	if token := cleanCallbackData(callback.Unique); token != "" {
		return token
	}
	return cleanCallbackData(callback.Data)
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	userID := c.Sender().ID
	token := callbackToken(callback)

	h.logger.Info("Processing callback",
		zap.String("token", token),
		zap.String("id", callback.ID),
		zap.Int64("user_id", userID),
	)

	sess := h.sessions.Get(userID)
	render, next := h.dispatcher.Handle(context.Background(), domain.ButtonEvent(userID, token), sess)
	h.sessions.Set(userID, next)

	return h.sendRender(c, userID, render)
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	// If message is not modified, it was already edited by another callback
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// renderMarkup builds the inline keyboard for a render, or nil when
// there are no buttons
func renderMarkup(render domain.Render) *tele.ReplyMarkup {
	if len(render.Buttons) == 0 {
		return nil
	}

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(render.Buttons))
	for _, row := range render.Buttons {
		r := tele.Row{}
		for _, btn := range row {
			r = append(r, markup.Data(btn.Label, btn.Token))
		}
		rows = append(rows, r)
	}
	markup.Inline(rows...)
	return markup
}

// sendRender delivers a render to the user. Callback replies edit the
// originating message in place, falling back to a new message when the
// edit fails.
func (h *Handler) sendRender(c tele.Context, userID int64, render domain.Render) error {
	if render.IsEmpty() {
		if c.Callback() != nil {
			return c.Respond()
		}
		return nil
	}

	markup := renderMarkup(render)

	if c.Callback() != nil {
		var err error
		if markup != nil {
			err = c.Edit(render.Body, markup)
		} else {
			err = c.Edit(render.Body)
		}
		if err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil // Message was already modified, just acknowledged
			}
			if markup != nil {
				return c.Send(render.Body, markup)
			}
			return c.Send(render.Body)
		}
		return c.Respond()
	}

	if markup != nil {
		return c.Send(render.Body, markup)
	}
	return c.Send(render.Body)
}
