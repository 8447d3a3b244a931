package menu

import (
	"fmt"
	"sort"

	"github.com/parazzit213/chil-life-bot/internal/domain"
)

// Option is one button on a screen: localized label plus target token
type Option struct {
	Label  map[domain.Language]string
	Target string
}

// Screen is a menu node identified by its callback token
type Screen struct {
	Token   string
	Title   map[domain.Language]string
	Options []Option
}

// Kind classifies what a token resolves to
type Kind int

const (
	KindUnknown Kind = iota
	KindScreen
	KindLeaf
)

// Registry is an immutable token namespace built once at startup.
// Every option target must resolve to a screen or a registered leaf
// action; Validate enforces this before the bot serves traffic.
type Registry struct {
	screens map[string]Screen
	leaves  map[string]struct{}
}

// NewRegistry builds a registry from screen definitions and the set of
// leaf action tokens. Duplicate tokens are a configuration error.
func NewRegistry(screens []Screen, leafTokens []string) (*Registry, error) {
	r := &Registry{
		screens: make(map[string]Screen, len(screens)),
		leaves:  make(map[string]struct{}, len(leafTokens)),
	}

	for _, s := range screens {
		if s.Token == "" {
			return nil, fmt.Errorf("screen with empty token")
		}
		if _, exists := r.screens[s.Token]; exists {
			return nil, fmt.Errorf("duplicate screen token: %s", s.Token)
		}
		r.screens[s.Token] = s
	}

	for _, token := range leafTokens {
		if token == "" {
			return nil, fmt.Errorf("leaf action with empty token")
		}
		if _, exists := r.screens[token]; exists {
			return nil, fmt.Errorf("token registered as both screen and leaf action: %s", token)
		}
		if _, exists := r.leaves[token]; exists {
			return nil, fmt.Errorf("duplicate leaf action token: %s", token)
		}
		r.leaves[token] = struct{}{}
	}

	return r, nil
}

// Resolve returns what the token names
func (r *Registry) Resolve(token string) Kind {
	if _, ok := r.screens[token]; ok {
		return KindScreen
	}
	if _, ok := r.leaves[token]; ok {
		return KindLeaf
	}
	return KindUnknown
}

// Screen returns the screen for a token, if the token names one
func (r *Registry) Screen(token string) (Screen, bool) {
	s, ok := r.screens[token]
	return s, ok
}

// Tokens returns all registered tokens, sorted, for diagnostics
func (r *Registry) Tokens() []string {
	tokens := make([]string, 0, len(r.screens)+len(r.leaves))
	for token := range r.screens {
		tokens = append(tokens, token)
	}
	for token := range r.leaves {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Validate checks the closure property: every option target on every
// screen resolves to a registered screen or leaf action. A dangling
// target is fatal at startup, never a per-request error.
func (r *Registry) Validate() error {
	for token, s := range r.screens {
		for _, opt := range s.Options {
			if opt.Target == "" {
				return fmt.Errorf("screen %s has an option with empty target", token)
			}
			if r.Resolve(opt.Target) == KindUnknown {
				return fmt.Errorf("screen %s references unregistered token %s", token, opt.Target)
			}
		}
	}
	return nil
}
