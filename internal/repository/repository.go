package repository

import (
	"context"

	"wordbook/internal/domain"
)

// WordRepository defines word data operations.
// Implementations return *domain.StorageError for every database failure.
type WordRepository interface {
	ListWords(ctx context.Context) ([]domain.WordEntry, error)
	InsertWord(ctx context.Context, entry domain.WordEntry) error
}
