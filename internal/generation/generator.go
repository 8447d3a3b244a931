// Package generation wraps the text-generation collaborator behind a
// single-method interface so handlers never depend on a concrete model
// provider.
package generation

import "context"

// Generator produces text for a prompt. Implementations may block on
// network calls; callers bound them with the context.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// FallbackText is returned to users whenever generation fails or times
// out. Generation failures are never fatal to the conversation.
const FallbackText = "Ошибка при генерации текста."

// Prompts for the generative leaf actions. Fixed strings, one per
// action, matching what the bot has always asked the model for.
const (
	PromptMotivationalQuote   = "Generate a motivational quote."
	PromptMindfulnessTips     = "Give practical mindfulness tips for daily life."
	PromptImproveMood         = "Give tips to improve mood."
	PromptQuizQuestion        = "Generate a quiz question."
	PromptMorningExercises    = "Generate morning exercises."
	PromptMorningMeditation   = "Guide me through a morning meditation."
	PromptBreakfast           = "Recommend a healthy breakfast."
	PromptEveningReflection   = "Guide me through an evening reflection."
	PromptBedtimeMeditation   = "Guide me through a bedtime meditation."
	PromptGeneralMeditation   = "Guide through a general meditation session."
	PromptMindfulBreathing    = "Guide me through a mindful breathing exercise."
	PromptMeditationExercises = "Suggest short meditation exercises for today."
	PromptProductivityTasks   = "Suggest three small productivity tasks for today."
	PromptDailyChallenge      = "Generate a short daily mindfulness challenge."
)

// MeditationPrompt builds the prompt for a timed meditation session
func MeditationPrompt(minutes int) string {
	switch minutes {
	case 5:
		return "Guide me through a 5-minute meditation."
	case 10:
		return "Guide me through a 10-minute meditation."
	case 20:
		return "Guide me through a 20-minute meditation."
	default:
		return PromptGeneralMeditation
	}
}
