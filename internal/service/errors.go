package service

import "errors"

var (
	// ErrInvalidEmail is returned when the email does not match the minimal
	// local@domain.tld shape.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrInvalidLanguage is returned when the language code is not exactly
	// two letters.
	ErrInvalidLanguage = errors.New("language must be a two-letter code")
	// ErrInvalidHandle is returned for an empty handle or one over 32 chars.
	ErrInvalidHandle = errors.New("handle must be 1-32 characters")
	// ErrInvalidSecret is returned for an empty secret.
	ErrInvalidSecret = errors.New("secret must not be empty")

	// ErrInvalidCredentials covers both unknown handle and wrong secret, so a
	// caller cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountInactive is returned when the credentials are correct but the
	// account has been deactivated. The HTTP layer collapses it into the same
	// response as ErrInvalidCredentials; only internal callers see the
	// distinction.
	ErrAccountInactive = errors.New("account inactive")

	// ErrEventTooLong is returned when an audit event description exceeds the
	// column limit. Overlong events are rejected, not truncated.
	ErrEventTooLong = errors.New("event description too long")
)
