package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/parazzit213/chil-life-bot/internal/domain"
	"github.com/parazzit213/chil-life-bot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_SetLanguage(t *testing.T) {
	tests := []struct {
		name          string
		loadError     error
		saveError     error
		expectedError bool
	}{
		{name: "success"},
		{name: "load fails", loadError: fmt.Errorf("db down"), expectedError: true},
		{name: "save fails", saveError: fmt.Errorf("db down"), expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(testutil.MockUserRecords)

			if tt.loadError != nil {
				repo.On("Load", int64(123)).Return(nil, tt.loadError)
			} else {
				repo.On("Load", int64(123)).Return(domain.NewUserRecord(123), nil)
				repo.On("Save", mock.MatchedBy(func(rec *domain.UserRecord) bool {
					return rec.UserID == 123 && rec.Language == domain.LangEN
				})).Return(tt.saveError)
			}

			svc := NewUserService(repo)
			err := svc.SetLanguage(123, domain.LangEN)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_AppendJournal(t *testing.T) {
	now := time.Date(2024, 12, 12, 10, 30, 0, 0, time.UTC)

	t.Run("appends with formatted timestamp", func(t *testing.T) {
		repo := new(testutil.MockUserRecords)
		repo.On("Load", int64(123)).Return(domain.NewUserRecord(123), nil)
		repo.On("Save", mock.MatchedBy(func(rec *domain.UserRecord) bool {
			return len(rec.Journal) == 1 &&
				rec.Journal[0].Timestamp == "2024-12-12 10:30:00" &&
				rec.Journal[0].Entry == "моя мысль"
		})).Return(nil)

		svc := NewUserService(repo)
		assert.NoError(t, svc.AppendJournal(123, "моя мысль", now))
		repo.AssertExpectations(t)
	})

	t.Run("preserves entry order", func(t *testing.T) {
		rec := domain.NewUserRecord(123)
		rec.Journal = []domain.JournalEntry{testutil.NewTestEntry("2024-12-11 09:00:00", "старая")}

		repo := new(testutil.MockUserRecords)
		repo.On("Load", int64(123)).Return(rec, nil)
		repo.On("Save", mock.MatchedBy(func(saved *domain.UserRecord) bool {
			return len(saved.Journal) == 2 &&
				saved.Journal[0].Entry == "старая" &&
				saved.Journal[1].Entry == "новая"
		})).Return(nil)

		svc := NewUserService(repo)
		assert.NoError(t, svc.AppendJournal(123, "новая", now))
		repo.AssertExpectations(t)
	})

	t.Run("empty entry rejected", func(t *testing.T) {
		repo := new(testutil.MockUserRecords)
		svc := NewUserService(repo)

		assert.Error(t, svc.AppendJournal(123, "", now))
		repo.AssertNotCalled(t, "Save", mock.Anything)
	})

	t.Run("save error propagates", func(t *testing.T) {
		repo := new(testutil.MockUserRecords)
		repo.On("Load", int64(123)).Return(domain.NewUserRecord(123), nil)
		repo.On("Save", mock.Anything).Return(fmt.Errorf("disk full"))

		svc := NewUserService(repo)
		assert.Error(t, svc.AppendJournal(123, "мысль", now))
	})
}

func TestUserService_AddChecklist(t *testing.T) {
	repo := new(testutil.MockUserRecords)
	repo.On("Load", int64(5)).Return(domain.NewUserRecord(5), nil)
	repo.On("Save", mock.MatchedBy(func(rec *domain.UserRecord) bool {
		return len(rec.Checklists) == 1 && rec.Checklists[0] == "выпить воды"
	})).Return(nil)

	svc := NewUserService(repo)
	assert.NoError(t, svc.AddChecklist(5, "выпить воды"))
	assert.Error(t, svc.AddChecklist(5, ""))
	repo.AssertExpectations(t)
}

func TestUserService_RecordAssessment(t *testing.T) {
	repo := new(testutil.MockUserRecords)
	repo.On("Load", int64(9)).Return(domain.NewUserRecord(9), nil)
	repo.On("Save", mock.MatchedBy(func(rec *domain.UserRecord) bool {
		a, ok := rec.SelfAssessment["2024-12-12 11:00:00"]
		return ok && a.Score == 42 && a.Tier == "high"
	})).Return(nil)

	svc := NewUserService(repo)
	err := svc.RecordAssessment(9, "2024-12-12 11:00:00", domain.Assessment{Score: 42, Tier: "high"})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
