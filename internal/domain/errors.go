package domain

import "github.com/cockroachdb/errors"

// Application failures. Repositories wrap these and attach a user-facing
// hint; callers classify with errors.Is.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateGroup = errors.New("group already exists")
	ErrDuplicateEntry = errors.New("player already in group")
	ErrNotFound       = errors.New("resource not found")
	ErrStorageFailure = errors.New("storage failure")
)

// StorageFailure wraps a key-value store error and marks it as
// ErrStorageFailure so it survives further wrapping.
func StorageFailure(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, op), ErrStorageFailure)
}

// UserMessage returns the human-readable message carried by a typed
// application failure. Storage failures and unclassified errors report
// false and must be shown as a generic message.
func UserMessage(err error) (string, bool) {
	if err == nil || errors.Is(err, ErrStorageFailure) {
		return "", false
	}

	var sentinel error
	switch {
	case errors.Is(err, ErrDuplicateGroup):
		sentinel = ErrDuplicateGroup
	case errors.Is(err, ErrDuplicateEntry):
		sentinel = ErrDuplicateEntry
	case errors.Is(err, ErrNotFound):
		sentinel = ErrNotFound
	case errors.Is(err, ErrInvalidInput):
		sentinel = ErrInvalidInput
	default:
		return "", false
	}

	if hints := errors.GetAllHints(err); len(hints) > 0 {
		return hints[0], true
	}
	return sentinel.Error(), true
}
