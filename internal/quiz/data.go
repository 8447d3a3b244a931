package quiz

// questions and answerOptions carry the self-assessment test content.
// Index i of answerOptions holds the three choices for questions[i];
// the choice index drives scoring.
var questions = []string{
	"Как часто ты фокусируешься на настоящем моменте?",
	"Ты осознаешь свои эмоции в течение дня?",
	"Легко ли тебе переключаться с негативных мыслей?",
	"Часто ли ты испытываешь стресс или тревогу?",
	"Ты ощущаешь благодарность за маленькие вещи в жизни?",
	"Как часто ты уделяешь внимание своему дыханию?",
	"Ты чувствуешь связь с людьми вокруг тебя?",
	"Ты находишь время для саморазмышлений?",
	"Ты легко прощаешь себя за ошибки?",
	"Ты регулярно устраиваешь перерывы для отдыха?",
	"Как часто ты находишься в моменте, а не думаешь о прошлом или будущем?",
	"Ты осознаешь свои физические ощущения в теле?",
	"Как часто ты ощущаешь радость от простых вещей?",
	"Ты чувствуешь ли спокойствие, даже когда на работе или в жизни много дел?",
	"Ты часто чувствуешь, что время проходит слишком быстро?",
	"Ты замечаешь, когда твой ум начинает блуждать?",
	"Ты умеешь расслабляться, не думая о внешних раздражителях?",
	"Ты осознаешь свои мысли, когда они начинают быть негативными?",
	"Как часто ты оцениваешь свое эмоциональное состояние?",
	"Ты можешь спокойно сидеть в тишине и ни о чем не думать?",
	"Ты осознаешь, когда твои действия или слова не соответствуют твоим ценностям?",
	"Ты чувствуешь благодарность за то, что у тебя есть?",
	"Ты часто заботишься о своем эмоциональном состоянии?",
	"Ты умеешь оставаться спокойным в трудных ситуациях?",
	"Ты чувствуешь связь с природой?",
	"Ты понимаешь, что твои эмоции и мысли — это не ты?",
	"Ты стараешься не реагировать на ситуации автоматическими привычками?",
	"Ты знаешь, как помочь себе справиться с сильными эмоциями?",
	"Ты часто размышляешь о смысле жизни?",
	"Ты замечаешь, когда твои эмоции начинают захлестывать тебя?",
}

var answerOptions = [][3]string{
	{"Каждый день 🌟", "Иногда ⏳", "Редко 🕰️"},
	{"Да, всегда ✨", "Иногда 🤔", "Редко 😔"},
	{"Да, легко 💪", "Иногда 🙃", "Трудно 😢"},
	{"Часто 😰", "Иногда 😟", "Редко 😌"},
	{"Каждый день 💖", "Иногда 💬", "Редко 🌚"},
	{"Часто 🧘‍♂️", "Иногда 🧠", "Редко ⏳"},
	{"Да, чувствую связь 🤝", "Иногда 🌍", "Нет, редко 😔"},
	{"Каждый день 🧠", "Иногда 💬", "Редко 🌿"},
	{"Да, всегда ✨", "Иногда 🕰️", "Редко 🛋️"},
	{"Каждый день 😌", "Иногда 🕰️", "Редко 🛑"},
	{"Часто ⏳", "Иногда 🤔", "Редко 🕰️"},
	{"Да, всегда 🧘‍♂️", "Иногда 🤔", "Редко ⏳"},
	{"Каждый день ✨", "Иногда 🌟", "Редко 😶"},
	{"Да, я часто 😊", "Иногда 💬", "Редко 🌟"},
	{"Да, всегда 🕊️", "Иногда 🤯", "Редко 🧘‍♂️"},
	{"Да, часто ⏳", "Иногда 🧠", "Редко 😞"},
	{"Часто 🧘‍♂️", "Иногда ⏳", "Редко 🕰️"},
	{"Да, всегда ✨", "Иногда 🤔", "Редко 😔"},
	{"Часто 🧘‍♂️", "Иногда 🧠", "Редко 😔"},
	{"Да, всегда 🌟", "Иногда 💬", "Редко ⏳"},
	{"Каждый день 💖", "Иногда ⏳", "Редко 🕰️"},
	{"Да, всегда ✨", "Иногда 🕊️", "Редко 😴"},
	{"Часто 🧘‍♂️", "Иногда 🕰️", "Редко 🛑"},
	{"Да, всегда 💪", "Иногда 😌", "Редко 🧘‍♂️"},
	{"Часто 🌿", "Иногда ⏳", "Редко 🧘‍♂️"},
	{"Да, всегда 🌟", "Иногда 🤔", "Редко 🕰️"},
	{"Да, всегда 🧘‍♂️", "Иногда 🌱", "Редко 🧠"},
	{"Часто 🧘‍♂️", "Иногда 😌", "Редко ⏳"},
	{"Да, всегда ✨", "Иногда 🤯", "Редко 🧘‍♂️"},
	{"Часто 💪", "Иногда 🧠", "Редко ⏳"},
}
