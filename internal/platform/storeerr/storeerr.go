package storeerr

import (
	"errors"
	"fmt"
)

// Stores return these (optionally wrapped) instead of raw driver errors so
// services can decide what a missing row or a violated key means.
var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicate   = errors.New("duplicate key")
	ErrUnavailable = errors.New("store unavailable")
)

// DuplicateKeyError names the unique key that rejected a write.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %s", e.Key)
}

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicate }

func Duplicate(key string) error { return &DuplicateKeyError{Key: key} }
