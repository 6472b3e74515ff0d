package core

import "errors"

// Persistence errors.
var (
	ErrReadFailure  = errors.New("failed to read notes")
	ErrWriteFailure = errors.New("failed to write notes")
	ErrReadOnly     = errors.New("store is in read-only mode")
)

// Serialization errors.
var (
	ErrEncodeFailure = errors.New("failed to encode notes")
	ErrDecodeFailure = errors.New("failed to decode notes")
)

// Repository errors.
var (
	ErrNotFound    = errors.New("note not found")
	ErrDuplicateID = errors.New("note with this id already exists")
	ErrInvalidNote = errors.New("invalid note")
)
