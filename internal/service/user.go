package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/parazzit213/chil-life-bot/internal/domain"
	"github.com/parazzit213/chil-life-bot/internal/repository"
)

// UserService owns user record access. Every read-modify-write for a
// given user goes through that user's lock, so concurrent events for
// the same user cannot lose updates. No cross-user locking.
type UserService struct {
	repo repository.UserRecords

	locksMux sync.Mutex
	locks    map[int64]*sync.Mutex
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRecords) *UserService {
	return &UserService{
		repo:  repo,
		locks: make(map[int64]*sync.Mutex),
	}
}

func (s *UserService) userLock(userID int64) *sync.Mutex {
	s.locksMux.Lock()
	defer s.locksMux.Unlock()

	lock, exists := s.locks[userID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

// Get loads a user's record, defaulted on first interaction
func (s *UserService) Get(userID int64) (*domain.UserRecord, error) {
	return s.repo.Load(userID)
}

// SetLanguage persists the user's language preference
func (s *UserService) SetLanguage(userID int64, lang domain.Language) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	rec, err := s.repo.Load(userID)
	if err != nil {
		return err
	}
	rec.Language = lang
	return s.repo.Save(rec)
}

// AppendJournal appends a timestamped diary entry and persists
func (s *UserService) AppendJournal(userID int64, text string, now time.Time) error {
	if text == "" {
		return fmt.Errorf("journal entry cannot be empty")
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	rec, err := s.repo.Load(userID)
	if err != nil {
		return err
	}
	rec.Journal = append(rec.Journal, domain.JournalEntry{
		Timestamp: now.Format(domain.TimestampLayout),
		Entry:     text,
	})
	return s.repo.Save(rec)
}

// AddChecklist appends a checklist item and persists
func (s *UserService) AddChecklist(userID int64, text string) error {
	if text == "" {
		return fmt.Errorf("checklist item cannot be empty")
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	rec, err := s.repo.Load(userID)
	if err != nil {
		return err
	}
	rec.Checklists = append(rec.Checklists, text)
	return s.repo.Save(rec)
}

// RecordAssessment stores a completed self-assessment run keyed by its
// completion timestamp
func (s *UserService) RecordAssessment(userID int64, runID string, a domain.Assessment) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	rec, err := s.repo.Load(userID)
	if err != nil {
		return err
	}
	if rec.SelfAssessment == nil {
		rec.SelfAssessment = map[string]domain.Assessment{}
	}
	rec.SelfAssessment[runID] = a
	return s.repo.Save(rec)
}
