package dispatch

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/parazzit213/chil-life-bot/internal/domain"
	"github.com/parazzit213/chil-life-bot/internal/generation"
	"github.com/parazzit213/chil-life-bot/internal/menu"
	"github.com/parazzit213/chil-life-bot/internal/quiz"

	"go.uber.org/zap"
)

// buildActions wires every leaf token to its behavior. The registry
// validates at startup that these tokens cover everything screens
// reference.
func (d *Dispatcher) buildActions() map[string]actionFunc {
	return map[string]actionFunc{
		menu.ActionSetLanguageUK: d.setLanguage(domain.LangUK, msgLangUK),
		menu.ActionSetLanguageRU: d.setLanguage(domain.LangRU, msgLangRU),
		menu.ActionSetLanguageEN: d.setLanguage(domain.LangEN, msgLangEN),

		menu.ActionSelfAssessment: d.startQuiz,
		menu.ActionAnswer0:        d.quizAnswer(0),
		menu.ActionAnswer1:        d.quizAnswer(1),
		menu.ActionAnswer2:        d.quizAnswer(2),
		menu.ActionMyResults:      d.myResults,

		menu.ActionNewEntry:        d.awaitInput(domain.SlotJournal, msgJournalPrompt),
		menu.ActionViewEntries:     d.viewEntries,
		menu.ActionCreateChecklist: d.awaitInput(domain.SlotChecklist, msgChecklistPrompt),
		menu.ActionMyChecklists:    d.myChecklists,

		menu.ActionMindfulnessTips: d.generative(generation.PromptMindfulnessTips, prefixMindfulnessTips),
		menu.ActionImproveMood:     d.generative(generation.PromptImproveMood, prefixImproveMood),

		menu.ActionMotivationalQuotes: d.generative(generation.PromptMotivationalQuote, prefixQuote),
		menu.ActionInspiringMusic:     d.static(msgInspiringMusic),
		menu.ActionInspiringVideos:    d.static(msgInspiringVideos),

		menu.ActionMeditate5:            d.generative(generation.MeditationPrompt(5), prefixTimedMeditation),
		menu.ActionMeditate10:           d.generative(generation.MeditationPrompt(10), prefixTimedMeditation),
		menu.ActionMeditate20:           d.generative(generation.MeditationPrompt(20), prefixTimedMeditation),
		menu.ActionRainSounds:           d.static(msgRainSounds),
		menu.ActionForestSounds:         d.static(msgForestSounds),
		menu.ActionOceanSounds:          d.static(msgOceanSounds),
		menu.ActionPersonalizedSessions: d.generative(generation.PromptGeneralMeditation, prefixPersonalized),

		menu.ActionGameFindDifferences: d.static(msgGameFindDifferences),
		menu.ActionGameAttention:       d.static(msgGameAttention),
		menu.ActionGameQuiz:            d.generative(generation.PromptQuizQuestion, prefixQuizQuestion),

		menu.ActionMorningExercises:  d.generative(generation.PromptMorningExercises, prefixMorningExercises),
		menu.ActionMorningMeditation: d.generative(generation.PromptMorningMeditation, prefixMorningMeditation),
		menu.ActionBreakfast:         d.generative(generation.PromptBreakfast, prefixBreakfast),

		menu.ActionEveningReflection: d.generative(generation.PromptEveningReflection, prefixEveningReflection),
		menu.ActionEveningReading:    d.static(msgEveningReading),
		menu.ActionEveningMeditation: d.generative(generation.PromptBedtimeMeditation, prefixBedtimeMeditation),

		menu.ActionMoodHappy:      d.static(msgMoodHappy),
		menu.ActionMoodCalm:       d.static(msgMoodCalm),
		menu.ActionMoodSad:        d.static(msgMoodSad),
		menu.ActionMoodThoughtful: d.static(msgMoodThoughtful),
		menu.ActionMoodTired:      d.static(msgMoodTired),

		menu.ActionMeditationProgress: d.static(msgMeditationProgress),
		menu.ActionAchievements:       d.static(msgAchievements),
		menu.ActionProfileSettings:    d.static(msgProfileSettings),

		menu.ActionMindfulBreathing:    d.generative(generation.PromptMindfulBreathing, prefixMindfulBreathing),
		menu.ActionMeditationExercises: d.generative(generation.PromptMeditationExercises, prefixMeditationExercise),
		menu.ActionProductivityTasks:   d.generative(generation.PromptProductivityTasks, prefixProductivityTasks),

		menu.ActionShareSuccess:     d.static(msgShareSuccess),
		menu.ActionInspiringStories: d.static(msgInspiringStories),
		menu.ActionCommentsReviews:  d.static(msgCommentsReviews),
		menu.ActionContactSupport:   d.static(msgContactSupport),
	}
}

// static replies with a fixed string. Only screen navigation resets
// the session, so the state passes through untouched.
func (d *Dispatcher) static(text string) actionFunc {
	return func(_ context.Context, _ *domain.UserRecord, sess domain.SessionState) (domain.Render, domain.SessionState) {
		return textRender(text), sess
	}
}

// generative builds the fixed prompt, asks the collaborator once and
// relays the result behind its prefix; fallback text on failure
func (d *Dispatcher) generative(prompt, prefix string) actionFunc {
	return func(ctx context.Context, _ *domain.UserRecord, sess domain.SessionState) (domain.Render, domain.SessionState) {
		text := d.content.Generate(ctx, prompt)
		return textRender(prefix + text), sess
	}
}

// awaitInput flips the session into free-text capture for a slot
func (d *Dispatcher) awaitInput(slot domain.InputSlot, prompt string) actionFunc {
	return func(_ context.Context, _ *domain.UserRecord, _ domain.SessionState) (domain.Render, domain.SessionState) {
		return textRender(prompt), domain.AwaitInput(slot)
	}
}

// setLanguage persists the preference and shows the main menu in the
// newly selected language
func (d *Dispatcher) setLanguage(lang domain.Language, confirmation string) actionFunc {
	return func(_ context.Context, rec *domain.UserRecord, sess domain.SessionState) (domain.Render, domain.SessionState) {
		if err := d.users.SetLanguage(rec.UserID, lang); err != nil {
			d.logger.Error("Failed to save language",
				zap.Int64("user_id", rec.UserID),
				zap.Error(err),
			)
			return textRender(msgGenericError), sess
		}

		render, next := d.renderScreen(menu.ScreenMainMenu, lang)
		render.Body = confirmation + "\n\n" + render.Body
		return render, next
	}
}

// startQuiz begins a self-assessment run at question zero
func (d *Dispatcher) startQuiz(_ context.Context, _ *domain.UserRecord, _ domain.SessionState) (domain.Render, domain.SessionState) {
	return d.questionRender(0), domain.QuizSession(0, 0)
}

// quizAnswer scores one answer and advances the run; outside a quiz the
// press is treated as an unknown callback
func (d *Dispatcher) quizAnswer(answerIndex int) actionFunc {
	return func(_ context.Context, rec *domain.UserRecord, sess domain.SessionState) (domain.Render, domain.SessionState) {
		if sess.Phase != domain.PhaseInQuiz {
			return textRender(msgNotUnderstood), sess
		}

		score := sess.QuizScore + quiz.ScoreDelta(answerIndex)
		next := sess.QuizIndex + 1

		if next < quiz.QuestionCount() {
			return d.questionRender(next), domain.QuizSession(next, score)
		}

		return d.finishQuiz(rec, score), domain.IdleSession()
	}
}

func (d *Dispatcher) questionRender(index int) domain.Render {
	text, options, ok := quiz.Question(index)
	if !ok {
		d.logger.Error("Quiz question index out of range", zap.Int("index", index))
		return textRender(msgGenericError)
	}

	row := make([]domain.Button, 0, quiz.OptionsPerQuestion)
	for i, opt := range options {
		row = append(row, domain.Button{
			Label: opt,
			Token: fmt.Sprintf("answer_%d", i),
		})
	}

	return domain.Render{Body: text, Buttons: [][]domain.Button{row}}
}

// finishQuiz classifies and records the completed run
func (d *Dispatcher) finishQuiz(rec *domain.UserRecord, score int) domain.Render {
	tier := quiz.Classify(score)
	body := fmt.Sprintf("Твой результат: %d баллов. %s", score, quiz.TierMessage(tier))

	runID := d.now().Format(domain.TimestampLayout)
	err := d.users.RecordAssessment(rec.UserID, runID, domain.Assessment{
		Score: score,
		Tier:  string(tier),
	})
	if err != nil {
		d.logger.Error("Failed to record assessment",
			zap.Int64("user_id", rec.UserID),
			zap.Error(err),
		)
		body += "\n\n⚠️ Не удалось сохранить результат."
	}

	return textRender(body)
}

// myResults lists recorded self-assessment runs in chronological order
func (d *Dispatcher) myResults(_ context.Context, rec *domain.UserRecord, sess domain.SessionState) (domain.Render, domain.SessionState) {
	if len(rec.SelfAssessment) == 0 {
		return textRender(msgNoResults), sess
	}

	runIDs := make([]string, 0, len(rec.SelfAssessment))
	for runID := range rec.SelfAssessment {
		runIDs = append(runIDs, runID)
	}
	sort.Strings(runIDs)

	lines := make([]string, 0, len(runIDs))
	for _, runID := range runIDs {
		a := rec.SelfAssessment[runID]
		lines = append(lines, fmt.Sprintf("%s: %d баллов — %s", runID, a.Score, quiz.TierMessage(quiz.Tier(a.Tier))))
	}

	return textRender("Ваши результаты:\n" + strings.Join(lines, "\n")), sess
}

// viewEntries shows the diary in insertion order
func (d *Dispatcher) viewEntries(_ context.Context, rec *domain.UserRecord, sess domain.SessionState) (domain.Render, domain.SessionState) {
	if len(rec.Journal) == 0 {
		return textRender(msgNoEntries), sess
	}

	lines := make([]string, 0, len(rec.Journal))
	for _, entry := range rec.Journal {
		lines = append(lines, fmt.Sprintf("%s: %s", entry.Timestamp, entry.Entry))
	}

	return textRender("Ваши записи:\n" + strings.Join(lines, "\n")), sess
}

// myChecklists shows saved checklist items, numbered
func (d *Dispatcher) myChecklists(_ context.Context, rec *domain.UserRecord, sess domain.SessionState) (domain.Render, domain.SessionState) {
	if len(rec.Checklists) == 0 {
		return textRender(msgNoChecklists), sess
	}

	lines := make([]string, 0, len(rec.Checklists))
	for i, item := range rec.Checklists {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}

	return textRender("Ваши чек-листы:\n" + strings.Join(lines, "\n")), sess
}
