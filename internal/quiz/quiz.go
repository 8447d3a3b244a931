// Package quiz holds the mindfulness self-assessment: question data,
// answer scoring and tier classification.
package quiz

// OptionsPerQuestion is the number of choices offered for each question
const OptionsPerQuestion = 3

// QuestionCount returns the number of questions in a full run
func QuestionCount() int {
	return len(questions)
}

// Question returns the text and answer options for a zero-based index
func Question(index int) (string, [3]string, bool) {
	if index < 0 || index >= len(questions) {
		return "", [3]string{}, false
	}
	return questions[index], answerOptions[index], true
}

// ScoreDelta is the contribution of one answered question: the selected
// option's zero-based index plus one.
func ScoreDelta(answerIndex int) int {
	return answerIndex + 1
}

// Tier classifies a completed run's total score
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Classify maps a final score to its tier. Thresholds are fixed:
// 30 and above is high, 20 up to but excluding 30 is medium,
// below 20 is low.
func Classify(score int) Tier {
	switch {
	case score >= 30:
		return TierHigh
	case score >= 20:
		return TierMedium
	default:
		return TierLow
	}
}

var tierMessages = map[Tier]string{
	TierHigh:   "🌟 Высокий уровень осознанности! Продолжай в том же духе!",
	TierMedium: "💪 Средний уровень осознанности. Есть куда стремиться!",
	TierLow:    "❤️ Низкий уровень осознанности. Попробуй уделить больше времени медитациям.",
}

// TierMessage returns the user-facing summary for a tier
func TierMessage(t Tier) string {
	return tierMessages[t]
}
