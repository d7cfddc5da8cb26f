package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrForbidden    = errors.New("insufficient permissions for this operation")
)
