package testutil

import (
	"context"

	"wordbook/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) ListWords(ctx context.Context) ([]domain.WordEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordEntry), args.Error(1)
}

func (m *MockWordRepository) InsertWord(ctx context.Context, entry domain.WordEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
