package records

import "errors"

// ValidationError rejects a command before any write (bad input, privilege).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError means the named entity does not exist; nothing was mutated.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ErrAdminOnly is the user-visible rejection for privileged operations
var ErrAdminOnly = &ValidationError{Msg: "admin only"}

func errAdminOnly() error {
	return ErrAdminOnly
}
