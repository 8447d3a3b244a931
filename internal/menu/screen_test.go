package menu

import (
	"testing"

	"github.com/parazzit213/chil-life-bot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultRegistry(t *testing.T) {
	r, err := NewDefaultRegistry()
	assert.NoError(t, err)
	assert.NotNil(t, r)

	// Every option on every screen resolves
	for _, s := range Screens() {
		for _, opt := range s.Options {
			assert.NotEqual(t, KindUnknown, r.Resolve(opt.Target),
				"screen %s option target %s must resolve", s.Token, opt.Target)
		}
	}
}

func TestRegistry_Resolve(t *testing.T) {
	r, err := NewDefaultRegistry()
	assert.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		expected Kind
	}{
		{name: "main menu is a screen", token: ScreenMainMenu, expected: KindScreen},
		{name: "mood is a leaf", token: ActionMoodHappy, expected: KindLeaf},
		{name: "quiz answer is a leaf", token: ActionAnswer2, expected: KindLeaf},
		{name: "unknown token", token: "no_such_token", expected: KindUnknown},
		{name: "empty token", token: "", expected: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Resolve(tt.token))
		})
	}
}

func TestNewRegistry_Errors(t *testing.T) {
	screen := Screen{Token: "a", Title: map[domain.Language]string{domain.LangEN: "A"}}

	tests := []struct {
		name    string
		screens []Screen
		leaves  []string
	}{
		{
			name:    "duplicate screen token",
			screens: []Screen{screen, screen},
		},
		{
			name:    "duplicate leaf token",
			leaves:  []string{"x", "x"},
		},
		{
			name:    "token both screen and leaf",
			screens: []Screen{screen},
			leaves:  []string{"a"},
		},
		{
			name:    "empty screen token",
			screens: []Screen{{Token: ""}},
		},
		{
			name:   "empty leaf token",
			leaves: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.screens, tt.leaves)
			assert.Error(t, err)
		})
	}
}

func TestRegistry_Validate_DanglingTarget(t *testing.T) {
	screens := []Screen{
		{
			Token: "root",
			Title: map[domain.Language]string{domain.LangEN: "Root"},
			Options: []Option{
				{Label: map[domain.Language]string{domain.LangEN: "Go"}, Target: "missing"},
			},
		},
	}

	r, err := NewRegistry(screens, nil)
	assert.NoError(t, err)

	err = r.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestRegistry_Tokens(t *testing.T) {
	r, err := NewRegistry(
		[]Screen{{Token: "b"}, {Token: "a"}},
		[]string{"c"},
	)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, r.Tokens())
}
