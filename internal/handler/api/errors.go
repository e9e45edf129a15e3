package api

import (
	"errors"

	"queueline/internal/domain/queue"
	"queueline/internal/domain/user"
)

// isDomainValidationErr reports whether the error is a value-object
// validation failure, which always maps to a 400.
func isDomainValidationErr(err error) bool {
	for _, target := range []error{
		user.ErrEmptyName,
		user.ErrInvalidEmail,
		user.ErrInvalidRole,
		user.ErrPasswordTooWeak,
		queue.ErrEmptyName,
		queue.ErrInvalidServiceTime,
		queue.ErrInvalidStatus,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
