// Package dispatch routes inbound events to screens and leaf actions.
// It is the only place that interprets callback tokens; the transport
// layer stays a thin adapter around it.
package dispatch

import (
	"context"
	"time"

	"github.com/parazzit213/chil-life-bot/internal/domain"
	"github.com/parazzit213/chil-life-bot/internal/menu"
	"github.com/parazzit213/chil-life-bot/internal/service"

	"go.uber.org/zap"
)

// actionFunc is one leaf action: takes the caller's record and session,
// returns the reply and the session to continue with
type actionFunc func(ctx context.Context, rec *domain.UserRecord, sess domain.SessionState) (domain.Render, domain.SessionState)

// Dispatcher resolves events against the screen registry and the
// session state machine. Handle is deterministic given its inputs; the
// only external effects are at most one generation call and at most one
// record persist per event.
type Dispatcher struct {
	registry *menu.Registry
	users    *service.UserService
	content  *service.ContentService
	logger   *zap.Logger
	now      func() time.Time

	actions map[string]actionFunc
}

// NewDispatcher creates a dispatcher over the given collaborators
func NewDispatcher(
	registry *menu.Registry,
	users *service.UserService,
	content *service.ContentService,
	logger *zap.Logger,
) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		users:    users,
		content:  content,
		logger:   logger,
		now:      time.Now,
	}
	d.actions = d.buildActions()
	return d
}

// Handle processes one inbound event. An empty render means nothing is
// sent back (a free-text message nobody was waiting for).
func (d *Dispatcher) Handle(ctx context.Context, ev domain.Event, sess domain.SessionState) (domain.Render, domain.SessionState) {
	rec, err := d.users.Get(ev.UserID)
	if err != nil {
		d.logger.Error("Failed to load user record",
			zap.Int64("user_id", ev.UserID),
			zap.Error(err),
		)
		return textRender(msgGenericError), sess
	}

	switch ev.Kind {
	case domain.EventText:
		return d.handleText(ev, sess)
	case domain.EventCommand:
		return d.handleCommand(ev, rec, sess)
	case domain.EventButton:
		return d.handleButton(ctx, ev, rec, sess)
	default:
		return domain.Render{}, sess
	}
}

// handleText consumes an awaited free-text message, or drops the text
// silently when nothing is awaiting it
func (d *Dispatcher) handleText(ev domain.Event, sess domain.SessionState) (domain.Render, domain.SessionState) {
	if sess.Phase != domain.PhaseAwaitingInput {
		return domain.Render{}, sess
	}

	// The flag is consumed exactly once, whatever the save outcome
	switch sess.Slot {
	case domain.SlotJournal:
		if err := d.users.AppendJournal(ev.UserID, ev.Data, d.now()); err != nil {
			d.logger.Error("Failed to save journal entry",
				zap.Int64("user_id", ev.UserID),
				zap.Error(err),
			)
			return textRender(msgSaveFailed), domain.IdleSession()
		}
		return textRender(msgJournalSaved), domain.IdleSession()

	case domain.SlotChecklist:
		if err := d.users.AddChecklist(ev.UserID, ev.Data); err != nil {
			d.logger.Error("Failed to save checklist item",
				zap.Int64("user_id", ev.UserID),
				zap.Error(err),
			)
			return textRender(msgSaveFailed), domain.IdleSession()
		}
		return textRender(msgChecklistSaved), domain.IdleSession()

	default:
		d.logger.Warn("Unknown input slot", zap.String("slot", string(sess.Slot)))
		return domain.Render{}, domain.IdleSession()
	}
}

// handleCommand routes slash commands to their screens
func (d *Dispatcher) handleCommand(ev domain.Event, rec *domain.UserRecord, sess domain.SessionState) (domain.Render, domain.SessionState) {
	switch ev.Data {
	case "start":
		return d.renderScreen(menu.ScreenStart, rec.Language)
	case "menu":
		return d.renderScreen(menu.ScreenMainMenu, rec.Language)
	default:
		d.logger.Warn("Unknown command",
			zap.Int64("user_id", ev.UserID),
			zap.String("command", ev.Data),
		)
		return textRender(msgNotUnderstood), sess
	}
}

// handleButton resolves a callback token: screens render and reset the
// session, leaf actions run, anything else is an unknown callback and
// leaves state untouched
func (d *Dispatcher) handleButton(ctx context.Context, ev domain.Event, rec *domain.UserRecord, sess domain.SessionState) (domain.Render, domain.SessionState) {
	token := ev.Data

	if screen, ok := d.registry.Screen(token); ok {
		// Navigating away silently abandons an in-progress quiz or
		// free-text capture
		return menu.RenderScreen(screen, rec.Language), domain.IdleSession()
	}

	if d.registry.Resolve(token) == menu.KindLeaf {
		action, ok := d.actions[token]
		if !ok {
			// Registered token without an action is a wiring bug
			d.logger.Error("Leaf action has no handler", zap.String("token", token))
			return textRender(msgGenericError), sess
		}
		return action(ctx, rec, sess)
	}

	d.logger.Warn("Unknown callback token",
		zap.Int64("user_id", ev.UserID),
		zap.String("token", token),
	)
	return textRender(msgNotUnderstood), sess
}

// renderScreen renders a registered screen and resets the session
func (d *Dispatcher) renderScreen(token string, lang domain.Language) (domain.Render, domain.SessionState) {
	screen, ok := d.registry.Screen(token)
	if !ok {
		// Unreachable with a validated registry
		d.logger.Error("Screen missing from registry", zap.String("token", token))
		return textRender(msgGenericError), domain.IdleSession()
	}
	return menu.RenderScreen(screen, lang), domain.IdleSession()
}

func textRender(body string) domain.Render {
	return domain.Render{Body: body}
}
