package service

import (
	"context"

	"wordbook/internal/domain"
	"wordbook/internal/repository"
)

// WordService handles word-related business logic
type WordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// ListWords returns the whole glossary, never nil
func (s *WordService) ListWords(ctx context.Context) ([]domain.WordEntry, error) {
	words, err := s.wordRepo.ListWords(ctx)
	if err != nil {
		return nil, err
	}
	if words == nil {
		words = []domain.WordEntry{}
	}
	return words, nil
}

// AddWord stores an entry. Duplicates are kept: one word may carry
// several meanings.
func (s *WordService) AddWord(ctx context.Context, entry domain.WordEntry) error {
	return s.wordRepo.InsertWord(ctx, entry)
}
