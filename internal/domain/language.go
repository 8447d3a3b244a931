package domain

// Language is a user's interface language
type Language string

const (
	LangUK Language = "uk"
	LangRU Language = "ru"
	LangEN Language = "en"
)

// DefaultLanguage is assigned to users on first interaction
const DefaultLanguage = LangUK

// ParseLanguage maps a stored language code to a Language, falling
// back to the default for unknown or empty values
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LangUK, LangRU, LangEN:
		return Language(s)
	default:
		return DefaultLanguage
	}
}
