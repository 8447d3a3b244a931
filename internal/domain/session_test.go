package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionConstructors(t *testing.T) {
	idle := IdleSession()
	assert.Equal(t, PhaseIdle, idle.Phase)

	waiting := AwaitInput(SlotJournal)
	assert.Equal(t, PhaseAwaitingInput, waiting.Phase)
	assert.Equal(t, SlotJournal, waiting.Slot)
	assert.Zero(t, waiting.QuizIndex)
	assert.Zero(t, waiting.QuizScore)

	quiz := QuizSession(3, 7)
	assert.Equal(t, PhaseInQuiz, quiz.Phase)
	assert.Equal(t, 3, quiz.QuizIndex)
	assert.Equal(t, 7, quiz.QuizScore)
	assert.Empty(t, quiz.Slot)
}
