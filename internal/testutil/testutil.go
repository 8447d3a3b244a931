package testutil

import (
	"github.com/parazzit213/chil-life-bot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRecord creates a user record with the given language
func NewTestRecord(userID int64, lang domain.Language) *domain.UserRecord {
	rec := domain.NewUserRecord(userID)
	rec.Language = lang
	return rec
}

// NewTestEntry creates a journal entry fixture
func NewTestEntry(timestamp, text string) domain.JournalEntry {
	return domain.JournalEntry{Timestamp: timestamp, Entry: text}
}
