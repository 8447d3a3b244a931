package testutil

import (
	"context"

	"github.com/parazzit213/chil-life-bot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRecords is a mock for repository.UserRecords
type MockUserRecords struct {
	mock.Mock
}

func (m *MockUserRecords) Load(userID int64) (*domain.UserRecord, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserRecord), args.Error(1)
}

func (m *MockUserRecords) Save(rec *domain.UserRecord) error {
	args := m.Called(rec)
	return args.Error(0)
}

// MockGenerator is a mock for generation.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
