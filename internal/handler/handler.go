package handler

import (
	"github.com/parazzit213/chil-life-bot/internal/dispatch"
	"github.com/parazzit213/chil-life-bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler adapts telebot updates into dispatcher events. It keeps no
// conversation logic of its own; everything routes through the
// dispatcher and the session store.
type Handler struct {
	bot        *tele.Bot
	dispatcher *dispatch.Dispatcher
	sessions   *service.SessionStore
	logger     *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	dispatcher *dispatch.Dispatcher,
	sessions *service.SessionStore,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		dispatcher: dispatcher,
		sessions:   sessions,
		logger:     logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/menu", h.handleMenu)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}
