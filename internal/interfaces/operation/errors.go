// Package operation
package operation

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound the looked-up account does not exist
	ErrUserNotFound = errors.New("user does not exist")
	// ErrPasswordEncode bcrypt failed to encode the password
	ErrPasswordEncode = errors.New("password encode error")
	// ErrIdentifierCheck the uniqueness pre-check itself failed
	ErrIdentifierCheck = errors.New("identifier check error")
)

// ConstraintViolationError reports a uniqueness conflict on insert. Field
// names the colliding column; user-facing messages must stay generic and
// never expose it.
type ConstraintViolationError struct {
	Field string
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("uniqueness constraint violated on %s", e.Field)
}

func IsConstraintViolation(err error) bool {
	var cv *ConstraintViolationError
	return errors.As(err, &cv)
}
