package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionData(t *testing.T) {
	assert.Equal(t, 30, QuestionCount())
	assert.Equal(t, len(questions), len(answerOptions))

	for i := 0; i < QuestionCount(); i++ {
		text, options, ok := Question(i)
		assert.True(t, ok)
		assert.NotEmpty(t, text)
		for _, opt := range options {
			assert.NotEmpty(t, opt)
		}
	}
}

func TestQuestion_OutOfRange(t *testing.T) {
	_, _, ok := Question(-1)
	assert.False(t, ok)

	_, _, ok = Question(QuestionCount())
	assert.False(t, ok)
}

func TestScoreDelta(t *testing.T) {
	assert.Equal(t, 1, ScoreDelta(0))
	assert.Equal(t, 2, ScoreDelta(1))
	assert.Equal(t, 3, ScoreDelta(2))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected Tier
	}{
		{name: "score 90 is high", score: 90, expected: TierHigh},
		{name: "score 30 boundary is high", score: 30, expected: TierHigh},
		{name: "score 29 is medium", score: 29, expected: TierMedium},
		{name: "score 20 boundary is medium", score: 20, expected: TierMedium},
		{name: "score 19 is low", score: 19, expected: TierLow},
		{name: "score zero is low", score: 0, expected: TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.score))
		})
	}
}

func TestFullRunScores(t *testing.T) {
	// All questions answered with the last option: 30 * 3 = 90, high
	lastOnly := 0
	for i := 0; i < QuestionCount(); i++ {
		lastOnly += ScoreDelta(2)
	}
	assert.Equal(t, 90, lastOnly)
	assert.Equal(t, TierHigh, Classify(lastOnly))

	// All questions answered with the first option: 30 * 1 = 30,
	// exactly the high boundary
	firstOnly := 0
	for i := 0; i < QuestionCount(); i++ {
		firstOnly += ScoreDelta(0)
	}
	assert.Equal(t, 30, firstOnly)
	assert.Equal(t, TierHigh, Classify(firstOnly))
}

func TestTierMessage(t *testing.T) {
	for _, tier := range []Tier{TierHigh, TierMedium, TierLow} {
		assert.NotEmpty(t, TierMessage(tier))
	}
}
