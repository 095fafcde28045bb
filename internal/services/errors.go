package services

import "errors"

// Service errors. Handlers map these to transport status codes; the
// services themselves never shape HTTP responses.
var (
	// ErrDuplicateEmail is returned when registering with an email that
	// already has an account.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login when the email or the
	// password is wrong. The two cases are deliberately merged.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound is returned when a user, reset token, comic or
	// notification does not exist (or is owned by someone else).
	ErrNotFound = errors.New("not found")

	// ErrInvalidPassword is returned by ChangePassword when the old
	// password does not match the stored hash.
	ErrInvalidPassword = errors.New("password is invalid")

	// ErrInvalidToken is returned when a JWT fails signature, shape or
	// expiry checks.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInternal is returned when a store operation that must succeed
	// (e.g. reset-token creation) fails.
	ErrInternal = errors.New("internal error")
)
