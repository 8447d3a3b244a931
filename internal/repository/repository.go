package repository

import "github.com/parazzit213/chil-life-bot/internal/domain"

// UserRecords defines durable per-user record operations.
// Load of an unknown user returns a defaulted record, not an error.
type UserRecords interface {
	Load(userID int64) (*domain.UserRecord, error)
	Save(rec *domain.UserRecord) error
}
