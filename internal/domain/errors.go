package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedRequest is returned when a request body cannot be turned into a WordEntry
var ErrMalformedRequest = errors.New("malformed request")

// StorageError wraps any failure talking to the database.
// Op names the repository operation that failed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err as a StorageError, returning nil for a nil err
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err carries a StorageError
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
