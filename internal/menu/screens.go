package menu

import "github.com/parazzit213/chil-life-bot/internal/domain"

// Screen tokens
const (
	ScreenStart           = "start"
	ScreenMainMenu        = "main_menu"
	ScreenMindfulnessPath = "mindfulness_path"
	ScreenMeditation      = "meditation"
	ScreenShortSessions   = "short_sessions"
	ScreenAtmosphere      = "atmosphere_meditations"
	ScreenMotivation      = "get_motivation"
	ScreenJournal         = "start_journal"
	ScreenChecklist       = "productivity_checklist"
	ScreenMiniGames       = "mini_games"
	ScreenRituals         = "rituals"
	ScreenMorningRituals  = "morning_rituals"
	ScreenEveningRituals  = "evening_rituals"
	ScreenShareMood       = "share_mood"
	ScreenProfile         = "personal_profile"
	ScreenChallenges      = "daily_challenges"
	ScreenCommunity       = "community"
)

// Leaf action tokens
const (
	ActionSetLanguageUK = "set_language_uk"
	ActionSetLanguageRU = "set_language_ru"
	ActionSetLanguageEN = "set_language_en"

	ActionSelfAssessment  = "self_assessment"
	ActionMyResults       = "my_results"
	ActionMindfulnessTips = "mindfulness_tips"

	ActionMeditate5            = "meditate_5"
	ActionMeditate10           = "meditate_10"
	ActionMeditate20           = "meditate_20"
	ActionRainSounds           = "rain_sounds"
	ActionForestSounds         = "forest_sounds"
	ActionOceanSounds          = "ocean_sounds"
	ActionPersonalizedSessions = "personalized_sessions"

	ActionMotivationalQuotes = "motivational_quotes"
	ActionInspiringMusic     = "inspiring_music"
	ActionInspiringVideos    = "inspiring_videos"

	ActionNewEntry    = "new_entry"
	ActionViewEntries = "view_entries"

	ActionCreateChecklist = "create_checklist"
	ActionMyChecklists    = "my_checklists"

	ActionGameFindDifferences = "game_find_differences"
	ActionGameAttention       = "game_attention"
	ActionGameQuiz            = "game_quiz"

	ActionMorningExercises  = "morning_exercises"
	ActionMorningMeditation = "morning_meditation"
	ActionBreakfast         = "breakfast"

	ActionEveningReflection = "evening_reflection"
	ActionEveningReading    = "evening_reading"
	ActionEveningMeditation = "evening_meditation"

	ActionMoodHappy      = "mood_happy"
	ActionMoodCalm       = "mood_calm"
	ActionMoodSad        = "mood_sad"
	ActionMoodThoughtful = "mood_thoughtful"
	ActionMoodTired      = "mood_tired"
	ActionImproveMood    = "improve_mood"

	ActionMeditationProgress = "meditation_progress"
	ActionAchievements       = "achievements_levels"
	ActionProfileSettings    = "profile_settings"

	ActionMindfulBreathing    = "mindful_breathing"
	ActionMeditationExercises = "meditation_exercises"
	ActionProductivityTasks   = "productivity_tasks"

	ActionShareSuccess     = "share_success"
	ActionInspiringStories = "inspiring_stories"
	ActionCommentsReviews  = "comments_reviews"
	ActionContactSupport   = "contact_support"

	ActionAnswer0 = "answer_0"
	ActionAnswer1 = "answer_1"
	ActionAnswer2 = "answer_2"
)

// LeafTokens lists every registered leaf action
func LeafTokens() []string {
	return []string{
		ActionSetLanguageUK, ActionSetLanguageRU, ActionSetLanguageEN,
		ActionSelfAssessment, ActionMyResults, ActionMindfulnessTips,
		ActionMeditate5, ActionMeditate10, ActionMeditate20,
		ActionRainSounds, ActionForestSounds, ActionOceanSounds,
		ActionPersonalizedSessions,
		ActionMotivationalQuotes, ActionInspiringMusic, ActionInspiringVideos,
		ActionNewEntry, ActionViewEntries,
		ActionCreateChecklist, ActionMyChecklists,
		ActionGameFindDifferences, ActionGameAttention, ActionGameQuiz,
		ActionMorningExercises, ActionMorningMeditation, ActionBreakfast,
		ActionEveningReflection, ActionEveningReading, ActionEveningMeditation,
		ActionMoodHappy, ActionMoodCalm, ActionMoodSad,
		ActionMoodThoughtful, ActionMoodTired, ActionImproveMood,
		ActionMeditationProgress, ActionAchievements, ActionProfileSettings,
		ActionMindfulBreathing, ActionMeditationExercises, ActionProductivityTasks,
		ActionShareSuccess, ActionInspiringStories, ActionCommentsReviews,
		ActionContactSupport,
		ActionAnswer0, ActionAnswer1, ActionAnswer2,
	}
}

func label(uk, ru, en string) map[domain.Language]string {
	m := map[domain.Language]string{}
	if uk != "" {
		m[domain.LangUK] = uk
	}
	if ru != "" {
		m[domain.LangRU] = ru
	}
	if en != "" {
		m[domain.LangEN] = en
	}
	return m
}

// Screens returns the full static menu graph
func Screens() []Screen {
	return []Screen{
		{
			Token: ScreenStart,
			Title: label("",
				"Добро пожаловать в 'ЧілЛайф'! 🌟\n\n"+
					"Я ваш AI-помощник, который поможет вам оценить ваш внутренний мир, "+
					"получить мотивационные сообщения, вести дневник и многое другое.\n\n"+
					"Пожалуйста, выберите язык / Please choose your language / Будь ласка, виберіть мову:",
				""),
			Options: []Option{
				{Label: label("Українська", "Українська", "Українська"), Target: ActionSetLanguageUK},
				{Label: label("Русский", "Русский", "Русский"), Target: ActionSetLanguageRU},
				{Label: label("English", "English", "English"), Target: ActionSetLanguageEN},
			},
		},
		{
			Token: ScreenMainMenu,
			Title: label("Головне меню:", "Главное меню:", "Main menu:"),
			Options: []Option{
				{Label: label("📝 Шлях до осознаності", "📝 Путь к осознанности", "📝 Path to Mindfulness"), Target: ScreenMindfulnessPath},
				{Label: label("🧘‍♂️ Медитативна гармонія", "🧘‍♂️ Медитативная гармония", "🧘‍♂️ Meditative Harmony"), Target: ScreenMeditation},
				{Label: label("✨ Іскра мотивації", "✨ Искра мотивации", "✨ Spark of Motivation"), Target: ScreenMotivation},
				{Label: label("📓 Щоденник думок", "📓 Дневник мыслей", "📓 Thought Diary"), Target: ScreenJournal},
				{Label: label("📋 Чек-лист продуктивності", "📋 Чек-лист продуктивности", "📋 Productivity Checklist"), Target: ScreenChecklist},
				{Label: label("🎮 Розважальні ігри", "🎮 Развлекательные игры", "🎮 Entertaining Games"), Target: ScreenMiniGames},
				{Label: label("🌞 Денні та нічні ритуали", "🌞 Дневные и ночные ритуалы", "🌞 Daily and Nightly Rituals"), Target: ScreenRituals},
				{Label: label("❤️ Поділитися настроєм", "❤️ Поделиться настроением", "❤️ Share Your Mood"), Target: ScreenShareMood},
				{Label: label("💡 Поради щодо покращення настрою", "💡 Советы по улучшению настроения", "💡 Tips to Improve Mood"), Target: ActionImproveMood},
				{Label: label("🔄 Особистий профіль", "🔄 Личный профиль", "🔄 Personal Profile"), Target: ScreenProfile},
				{Label: label("🌟 Щоденні виклики", "🌟 Ежедневные вызовы", "🌟 Daily Challenges"), Target: ScreenChallenges},
				{Label: label("👥 Спільнота", "👥 Сообщество", "👥 Community"), Target: ScreenCommunity},
				{Label: label("🇺🇦 Змінити мову", "🌍 Изменить язык", "🌍 Change Language"), Target: ScreenStart},
			},
		},
		{
			Token: ScreenMindfulnessPath,
			Title: label("Шлях до Осознаності:", "Путь к Осознанности:", "Path to Mindfulness:"),
			Options: []Option{
				{Label: label("", "🧠 Оценка Внутреннего Мира", "🧠 Inner World Assessment"), Target: ActionSelfAssessment},
				{Label: label("", "📊 Мои Результаты", "📊 My Results"), Target: ActionMyResults},
				{Label: label("", "🌿 Советы по Осознанности", "🌿 Mindfulness Tips"), Target: ActionMindfulnessTips},
				{Label: label("", "🔄 Главное меню", "🔄 Main Menu"), Target: ScreenMainMenu},
			},
		},
		{
			Token: ScreenMeditation,
			Title: label("", "Медитативная Гармония:", "Meditative Harmony:"),
			Options: []Option{
				{Label: label("", "⏱️ Короткие Сессии", "⏱️ Short Sessions"), Target: ScreenShortSessions},
				{Label: label("", "🌧️ Атмосферные Медитации", "🌧️ Atmospheric Meditations"), Target: ScreenAtmosphere},
				{Label: label("", "🎯 Персонализированные Сессии", "🎯 Personalized Sessions"), Target: ActionPersonalizedSessions},
				{Label: label("", "🔄 Главное меню", "🔄 Main Menu"), Target: ScreenMainMenu},
			},
		},
		{
			Token: ScreenShortSessions,
			Title: label("", "Выбери длительность медитации:", "Choose a meditation length:"),
			Options: []Option{
				{Label: label("", "Короткая медитация (5 минут)", "Short meditation (5 minutes)"), Target: ActionMeditate5},
				{Label: label("", "Средняя медитация (10 минут)", "Medium meditation (10 minutes)"), Target: ActionMeditate10},
				{Label: label("", "Длительная медитация (20 минут)", "Long meditation (20 minutes)"), Target: ActionMeditate20},
				{Label: label("", "🧘‍♂️ Медитативная Гармония", "🧘‍♂️ Meditative Harmony"), Target: ScreenMeditation},
			},
		},
		{
			Token: ScreenAtmosphere,
			Title: label("", "Атмосферные Медитации:", "Atmospheric Meditations:"),
			Options: []Option{
				{Label: label("", "🌧️ Звуки Дождя", "🌧️ Rain Sounds"), Target: ActionRainSounds},
				{Label: label("", "🌲 Звуки Леса", "🌲 Forest Sounds"), Target: ActionForestSounds},
				{Label: label("", "🌊 Звуки Океана", "🌊 Ocean Sounds"), Target: ActionOceanSounds},
				{Label: label("", "🧘‍♂️ Медитативная Гармония", "🧘‍♂️ Meditative Harmony"), Target: ScreenMeditation},
			},
		},
		{
			Token: ScreenMotivation,
			Title: label("", "Искра Мотивации:", "Spark of Motivation:"),
			Options: []Option{
				{Label: label("", "📖 Мотивирующие Цитаты", "📖 Motivational Quotes"), Target: ActionMotivationalQuotes},
				{Label: label("", "🎧 Вдохновляющая Музыка", "🎧 Inspiring Music"), Target: ActionInspiringMusic},
				{Label: label("", "🎥 Вдохновляющие Видео", "🎥 Inspiring Videos"), Target: ActionInspiringVideos},
				{Label: label("", "🔄 Главное меню", "🔄 Main Menu"), Target: ScreenMainMenu},
			},
		},
		{
			Token: ScreenJournal,
			Title: label("", "Дневник Мыслей:", "Thought Diary:"),
			Options: []Option{
				{Label: label("", "✍️ Новая Запись", "✍️ New Entry"), Target: ActionNewEntry},
				{Label: label("", "📖 Просмотр Записей", "📖 View Entries"), Target: ActionViewEntries},
				{Label: label("", "🔄 Главное меню", "🔄 Main Menu"), Target: ScreenMainMenu},
			},
		},
		{
			Token: ScreenChecklist,
			Title: label("", "Чек-лист Продуктивности:", "Productivity Checklist:"),
			Options: []Option{
				{Label: label("", "🌟 Создать Новый Чек-лист", "🌟 Create New Checklist"), Target: ActionCreateChecklist},
				{Label: label("", "✅ Мои Чек-листы", "✅ My Checklists"), Target: ActionMyChecklists},
				{Label: label("", "🔄 Главное меню", "🔄 Main Menu"), Target: ScreenMainMenu},
			},
		},
		{
			Token: ScreenMiniGames,
			Title: label("", "Развлекательные Игры:", "Entertaining Games:"),
			Options: []Option{
				{Label: label("", "🔍 Найди Различия", "🔍 Find the Differences"), Target: ActionGameFindDifferences},
				{Label: label("", "🎯 Внимательная Игра", "🎯 Attention Game"), Target: ActionGameAttention},
				{Label: label("", "🧩 Викторина", "🧩 Quiz"), Target: ActionGameQuiz},
				{Label: label("", "🔄 Главное меню", "🔄 Main Menu"), Target: ScreenMainMenu},
			},
		},
		{
			Token: ScreenRituals,
			Title: label("", "Дневные и Ночные Ритуалы:", "Daily and Nightly Rituals:"),
			Options: []Option{
				{Label: label("", "☀️ Утренние Ритуалы", "☀️ Morning Rituals"), Target: ScreenMorningRituals},
				{Label: label("", "🌜 Вечерние Ритуалы", "🌜 Evening Rituals"), Target: ScreenEveningRituals},
				{Label: label("", "🔄 Главное меню", "🔄 Main Menu"), Target: ScreenMainMenu},
			},
		},
		{
			Token: ScreenMorningRituals,
			Title: label("", "Утренние Ритуалы:", "Morning Rituals:"),
			Options: []Option{
				{Label: label("", "🏋️ Упражнения", "🏋️ Exercises"), Target: ActionMorningExercises},
				{Label: label("", "🧘‍♀️ Медитация", "🧘‍♀️ Meditation"), Target: ActionMorningMeditation},
				{Label: label("", "🥣 Завтрак", "🥣 Breakfast"), Target: ActionBreakfast},
				{Label: label("", "🔄 Дневные и Ночные Ритуалы", "🔄 Daily and Nightly Rituals"), Target: ScreenRituals},
			},
		},
		{
			Token: ScreenEveningRituals,
			Title: label("", "Вечерние Ритуалы:", "Evening Rituals:"),
			Options: []Option{
				{Label: label("", "📝 Рефлексия Дня", "📝 Daily Reflection"), Target: ActionEveningReflection},
				{Label: label("", "📚 Чтение", "📚 Reading"), Target: ActionEveningReading},
				{Label: label("", "🛌 Медитация Перед Сном", "🛌 Bedtime Meditation"), Target: ActionEveningMeditation},
				{Label: label("", "🔄 Дневные и Ночные Ритуалы", "🔄 Daily and Nightly Rituals"), Target: ScreenRituals},
			},
		},
		{
			Token: ScreenShareMood,
			Title: label("", "Как ты себя чувствуешь сегодня?", "How are you feeling today?"),
			Options: []Option{
				{Label: label("", "😊 Счастлив", "😊 Happy"), Target: ActionMoodHappy},
				{Label: label("", "😌 Спокоен", "😌 Calm"), Target: ActionMoodCalm},
				{Label: label("", "😔 Грущу", "😔 Sad"), Target: ActionMoodSad},
				{Label: label("", "🤔 Задумался", "🤔 Thoughtful"), Target: ActionMoodThoughtful},
				{Label: label("", "😴 Устал", "😴 Tired"), Target: ActionMoodTired},
				{Label: label("", "🔄 Главное меню", "🔄 Main Menu"), Target: ScreenMainMenu},
			},
		},
		{
			Token: ScreenProfile,
			Title: label("", "Личный Профиль:", "Personal Profile:"),
			Options: []Option{
				{Label: label("", "🎯 Прогресс Медитаций", "🎯 Meditation Progress"), Target: ActionMeditationProgress},
				{Label: label("", "🏆 Достижения и Уровни", "🏆 Achievements and Levels"), Target: ActionAchievements},
				{Label: label("", "⚙️ Настройки Профиля", "⚙️ Profile Settings"), Target: ActionProfileSettings},
				{Label: label("", "🔄 Главное меню", "🔄 Main Menu"), Target: ScreenMainMenu},
			},
		},
		{
			Token: ScreenChallenges,
			Title: label("", "Ежедневные Вызовы:", "Daily Challenges:"),
			Options: []Option{
				{Label: label("", "🌬️ Осознанное Дыхание", "🌬️ Mindful Breathing"), Target: ActionMindfulBreathing},
				{Label: label("", "🧘 Медитативные Упражнения", "🧘 Meditation Exercises"), Target: ActionMeditationExercises},
				{Label: label("", "📋 Задачи Продуктивности", "📋 Productivity Tasks"), Target: ActionProductivityTasks},
				{Label: label("", "🔄 Главное меню", "🔄 Main Menu"), Target: ScreenMainMenu},
			},
		},
		{
			Token: ScreenCommunity,
			Title: label("", "Сообщество:", "Community:"),
			Options: []Option{
				{Label: label("", "🏅 Поделиться Успехом", "🏅 Share Success"), Target: ActionShareSuccess},
				{Label: label("", "💬 Вдохновляющие Истории", "💬 Inspiring Stories"), Target: ActionInspiringStories},
				{Label: label("", "🗨️ Комментарии и Отзывы", "🗨️ Comments and Reviews"), Target: ActionCommentsReviews},
				{Label: label("", "🤝 Связаться с Ботом", "🤝 Contact Support"), Target: ActionContactSupport},
				{Label: label("", "🔄 Главное меню", "🔄 Main Menu"), Target: ScreenMainMenu},
			},
		},
	}
}

// NewDefaultRegistry builds and validates the production registry
func NewDefaultRegistry() (*Registry, error) {
	r, err := NewRegistry(Screens(), LeafTokens())
	if err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
