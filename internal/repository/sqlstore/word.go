package sqlstore

import (
	"context"
	"database/sql"

	"wordbook/internal/config"
	"wordbook/internal/domain"
	"wordbook/internal/repository"
)

const listWordsQuery = `SELECT word, meaning FROM words`

// Dialect holds the statements whose placeholder syntax differs per engine
type Dialect struct {
	Name       string
	InsertWord string
}

var (
	SQLite = Dialect{
		Name:       config.DriverSQLite,
		InsertWord: `INSERT INTO words (word, meaning) VALUES (?, ?)`,
	}
	Postgres = Dialect{
		Name:       config.DriverPostgres,
		InsertWord: `INSERT INTO words (word, meaning) VALUES ($1, $2)`,
	}
)

// DialectFor returns the dialect for a configured driver, SQLite by default
func DialectFor(driver string) Dialect {
	if driver == config.DriverPostgres {
		return Postgres
	}
	return SQLite
}

// WordRepo implements repository.WordRepository on database/sql
type WordRepo struct {
	db      *sql.DB
	dialect Dialect
}

var _ repository.WordRepository = (*WordRepo)(nil)

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB, dialect Dialect) *WordRepo {
	return &WordRepo{db: db, dialect: dialect}
}

// ListWords returns every stored entry in the order the database yields them
func (r *WordRepo) ListWords(ctx context.Context) ([]domain.WordEntry, error) {
	rows, err := r.db.QueryContext(ctx, listWordsQuery)
	if err != nil {
		return nil, domain.NewStorageError("list words", err)
	}
	defer rows.Close()

	words := make([]domain.WordEntry, 0)
	for rows.Next() {
		var w domain.WordEntry
		if err := rows.Scan(&w.Word, &w.Meaning); err != nil {
			return nil, domain.NewStorageError("list words", err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list words", err)
	}

	return words, nil
}

// InsertWord appends one entry
func (r *WordRepo) InsertWord(ctx context.Context, entry domain.WordEntry) error {
	_, err := r.db.ExecContext(ctx, r.dialect.InsertWord, entry.Word, entry.Meaning)
	return domain.NewStorageError("insert word", err)
}
