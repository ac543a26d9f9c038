package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed or out-of-range arguments.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks an entity that does not exist or is not owned by the caller.
	ErrNotFound = errors.New("not found")

	// ErrInvalidGroup marks a group reference that violates the ownership invariant.
	ErrInvalidGroup = errors.New("invalid group")

	// ErrMalformedFile marks a CSV payload that cannot be parsed at all.
	ErrMalformedFile = errors.New("malformed file")

	// ErrStorage marks a failure of the underlying store.
	ErrStorage = errors.New("storage failure")
)

// StorageError wraps a driver error with the operation that failed.
// errors.Is(err, ErrStorage) holds for every StorageError.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: failed to %s: %v", ErrStorage, e.Op, e.Err)
}

func (e *StorageError) Is(target error) bool { return target == ErrStorage }
func (e *StorageError) Unwrap() error        { return e.Err }
