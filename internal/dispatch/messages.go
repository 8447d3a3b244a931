package dispatch

// User-facing reply texts for leaf actions and error recovery. These
// are fixed strings; only screen titles and button labels are localized.
const (
	msgNotUnderstood = "Неизвестная команда. Откройте /menu."
	msgGenericError  = "Произошла ошибка. Попробуйте позже."
	msgSaveFailed    = "Не удалось сохранить запись. Попробуйте ещё раз."

	msgJournalPrompt   = "Напишите, что вас волнует, или поделитесь своими мыслями. Я запишу это для вас."
	msgJournalSaved    = "Ваши мысли сохранены! 💡"
	msgNoEntries       = "Нет записей для отображения."
	msgChecklistPrompt = "Создайте новый чек-лист. Введите название задач и нажмите Enter."
	msgChecklistSaved  = "Чек-лист сохранен! 💡"
	msgNoChecklists    = "Нет чек-листов для отображения."
	msgNoResults       = "Нет результатов для отображения."

	msgLangUK = "Мову вибрано: Українська 🇺🇦"
	msgLangRU = "Язык выбран: Русский 🇷🇺"
	msgLangEN = "Language selected: English 🇬🇧"

	msgMoodHappy      = "Радость наполняет сердце! Пусть этот день будет ярким! 🌟"
	msgMoodCalm       = "Твоя внутренняя гармония сияет! Пусть этот момент принесет умиротворение. 🕊️"
	msgMoodSad        = "Печаль — это временно. Расслабься и позволь эмоциям пройти. 🌱"
	msgMoodThoughtful = "Иногда полезно задуматься и посмотреть на мир с другой стороны. 🧠"
	msgMoodTired      = "Отдыхай и восстанавливай силы, они тебе понадобятся. 🌙"

	msgRainSounds   = "Начинаем медитацию со звуками дождя..."
	msgForestSounds = "Начинаем медитацию со звуками леса..."
	msgOceanSounds  = "Начинаем медитацию со звуками океана..."

	msgInspiringMusic  = "Вдохновляющая музыка уже в пути. 🎧"
	msgInspiringVideos = "Вдохновляющие видео уже в пути. 🎥"

	msgGameFindDifferences = "Начнем игру 'Найди Различия'. 🔍"
	msgGameAttention       = "Внимательная Игра началась. 🎯"

	msgEveningReading = "Чтение перед сном. 📚"

	msgMeditationProgress = "Здесь будет ваш прогресс в медитациях. 🎯"
	msgAchievements       = "Здесь будут ваши достижения и уровни. 🏆"
	msgProfileSettings    = "Здесь вы можете изменить настройки профиля. ⚙️"

	msgShareSuccess     = "Поделитесь своим успехом — напишите о нём в сообществе! 🏅"
	msgInspiringStories = "Вдохновляющие истории других пользователей. 💬"
	msgCommentsReviews  = "Комментарии и отзывы. 🗨️"
	msgContactSupport   = "Если у тебя возникли вопросы или пожелания, напиши нам здесь!"
)

// Prefixes prepended to generated text, per action
const (
	prefixQuote              = "Мотивирующая цитата: "
	prefixMindfulnessTips    = "Советы по осознанности: "
	prefixImproveMood        = "Советы по улучшению настроения: "
	prefixQuizQuestion       = "Вопрос викторины: "
	prefixMorningExercises   = "Упражнения для утра: "
	prefixMorningMeditation  = "Утренняя медитация: "
	prefixBreakfast          = "Рекомендации на завтрак: "
	prefixEveningReflection  = "Рефлексия дня: "
	prefixBedtimeMeditation  = "Медитация перед сном: "
	prefixPersonalized       = "Персонализированная медитация: "
	prefixTimedMeditation    = "Медитация: "
	prefixMindfulBreathing   = "Осознанное дыхание: "
	prefixMeditationExercise = "Медитативные упражнения: "
	prefixProductivityTasks  = "Задачи продуктивности: "
)
