package menu

import "github.com/parazzit213/chil-life-bot/internal/domain"

// fallbackChain is the order label maps are probed in when the
// requested language is missing. English first, then the two source
// languages, so a screen lacking any particular language still renders.
var fallbackChain = []domain.Language{domain.LangEN, domain.LangUK, domain.LangRU}

// Localize picks the display string for a language, falling back
// through the chain when the requested key is absent
func Localize(m map[domain.Language]string, lang domain.Language) string {
	if s, ok := m[lang]; ok {
		return s
	}
	for _, fb := range fallbackChain {
		if s, ok := m[fb]; ok {
			return s
		}
	}
	return ""
}

// RenderScreen turns a screen definition into an outbound render for
// the given language. Button order equals option order, one per row.
func RenderScreen(s Screen, lang domain.Language) domain.Render {
	buttons := make([][]domain.Button, 0, len(s.Options))
	for _, opt := range s.Options {
		buttons = append(buttons, []domain.Button{{
			Label: Localize(opt.Label, lang),
			Token: opt.Target,
		}})
	}
	return domain.Render{
		Body:    Localize(s.Title, lang),
		Buttons: buttons,
	}
}
