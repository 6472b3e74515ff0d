package presenter

import (
	"context"
	"errors"

	"github.com/aretw0/plans/pkg/core"
)

// ErrorTitle is the title of every error notification.
const ErrorTitle = "Error"

// Checked in order; the first match wins.
var messages = []struct {
	target  error
	message string
}{
	{ErrIndexOutOfRange, "That note is no longer in the list."},
	{core.ErrNotFound, "The note could not be found. It may have been removed elsewhere."},
	{core.ErrDuplicateID, "A note with the same identity already exists."},
	{core.ErrInvalidNote, "The note is missing an identifier or date."},
	{core.ErrReadOnly, "Notes are open read-only, so changes cannot be saved."},
	{core.ErrDecodeFailure, "The notes file is damaged and could not be read."},
	{core.ErrEncodeFailure, "The notes could not be prepared for saving."},
	{core.ErrReadFailure, "The notes file could not be read."},
	{core.ErrWriteFailure, "The notes could not be saved."},
	{context.Canceled, "The operation was cancelled."},
	{context.DeadlineExceeded, "The operation timed out."},
}

// Describe turns an error into the title and message shown to the user.
// Unknown errors fall back to their own text.
func Describe(err error) (title, message string) {
	if err == nil {
		return "", ""
	}
	for _, m := range messages {
		if errors.Is(err, m.target) {
			return ErrorTitle, m.message
		}
	}
	return ErrorTitle, err.Error()
}
