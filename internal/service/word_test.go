package service

import (
	"context"
	"fmt"
	"testing"

	"wordbook/internal/domain"
	"wordbook/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWordService_ListWords(t *testing.T) {
	entries := []domain.WordEntry{
		testutil.NewTestEntry("hello", "greeting"),
		testutil.NewTestEntry("ephemeral", "lasting a short time"),
	}

	tests := []struct {
		name          string
		mockReturn    []domain.WordEntry
		mockError     error
		expected      []domain.WordEntry
		expectedError bool
	}{
		{
			name:          "entries found",
			mockReturn:    entries,
			mockError:     nil,
			expected:      entries,
			expectedError: false,
		},
		{
			name:          "nil from repository becomes empty",
			mockReturn:    nil,
			mockError:     nil,
			expected:      []domain.WordEntry{},
			expectedError: false,
		},
		{
			name:          "storage error",
			mockReturn:    nil,
			mockError:     domain.NewStorageError("list words", fmt.Errorf("db error")),
			expected:      nil,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("ListWords", mock.Anything).Return(tt.mockReturn, tt.mockError)

			service := NewWordService(mockRepo)

			words, err := service.ListWords(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.True(t, domain.IsStorageError(err))
				assert.Nil(t, words)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, words)
				assert.Equal(t, tt.expected, words)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestWordService_AddWord(t *testing.T) {
	tests := []struct {
		name          string
		entry         domain.WordEntry
		mockError     error
		expectedError bool
	}{
		{
			name:          "valid entry",
			entry:         testutil.NewTestEntry("hello", "greeting"),
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "empty strings are passed through",
			entry:         testutil.NewTestEntry("", ""),
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "storage error",
			entry:         testutil.NewTestEntry("hello", "greeting"),
			mockError:     domain.NewStorageError("insert word", fmt.Errorf("db error")),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockWordRepository)
			mockRepo.On("InsertWord", mock.Anything, tt.entry).Return(tt.mockError)

			service := NewWordService(mockRepo)

			err := service.AddWord(context.Background(), tt.entry)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
