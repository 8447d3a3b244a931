package handler

import (
	"testing"

	"github.com/parazzit213/chil-life-bot/internal/domain"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "main_menu",
			expected: "main_menu",
		},
		{
			name:     "string with whitespace",
			input:    "  main_menu  ",
			expected: "main_menu",
		},
		{
			name:     "string with newline",
			input:    "main\nmenu",
			expected: "mainmenu",
		},
		{
			name:     "string with tab",
			input:    "main\tmenu",
			expected: "mainmenu",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "main\x00menu\x01",
			expected: "mainmenu",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCallbackToken(t *testing.T) {
	tests := []struct {
		name     string
		callback *tele.Callback
		expected string
	}{
		{
			name:     "token in unique",
			callback: &tele.Callback{Unique: "self_assessment", Data: "ignored"},
			expected: "self_assessment",
		},
		{
			name:     "fallback to data",
			callback: &tele.Callback{Data: "main_menu"},
			expected: "main_menu",
		},
		{
			name:     "data cleaned of control bytes",
			callback: &tele.Callback{Data: "\fmain_menu"},
			expected: "main_menu",
		},
		{
			name:     "empty callback",
			callback: &tele.Callback{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, callbackToken(tt.callback))
		})
	}
}

func TestRenderMarkup(t *testing.T) {
	t.Run("no buttons yields nil markup", func(t *testing.T) {
		assert.Nil(t, renderMarkup(domain.Render{Body: "текст"}))
	})

	t.Run("rows preserve order and tokens", func(t *testing.T) {
		render := domain.Render{
			Body: "Главное меню:",
			Buttons: [][]domain.Button{
				{{Label: "📝 Путь к осознанности", Token: "mindfulness_path"}},
				{{Label: "Да", Token: "answer_0"}, {Label: "Нет", Token: "answer_1"}},
			},
		}

		markup := renderMarkup(render)
		assert.NotNil(t, markup)
		assert.Len(t, markup.InlineKeyboard, 2)
		assert.Len(t, markup.InlineKeyboard[0], 1)
		assert.Len(t, markup.InlineKeyboard[1], 2)
		assert.Equal(t, "📝 Путь к осознанности", markup.InlineKeyboard[0][0].Text)
		assert.Equal(t, "mindfulness_path", markup.InlineKeyboard[0][0].Unique)
		assert.Equal(t, "answer_1", markup.InlineKeyboard[1][1].Unique)
	})
}
