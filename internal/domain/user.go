package domain

// TimestampLayout is the format journal timestamps and assessment run
// identifiers are stored in. Existing records use exactly this shape.
const TimestampLayout = "2006-01-02 15:04:05"

// JournalEntry is a single timestamped diary record
type JournalEntry struct {
	Timestamp string `json:"timestamp"`
	Entry     string `json:"entry"`
}

// Assessment is the recorded outcome of one completed self-assessment run
type Assessment struct {
	Score int    `json:"score"`
	Tier  string `json:"tier"`
}

// UserRecord is the durable per-user state
type UserRecord struct {
	UserID         int64
	Language       Language
	Journal        []JournalEntry
	Checklists     []string
	SelfAssessment map[string]Assessment
}

// NewUserRecord creates a record with defaults for a first interaction
func NewUserRecord(userID int64) *UserRecord {
	return &UserRecord{
		UserID:         userID,
		Language:       DefaultLanguage,
		Journal:        []JournalEntry{},
		Checklists:     []string{},
		SelfAssessment: map[string]Assessment{},
	}
}
