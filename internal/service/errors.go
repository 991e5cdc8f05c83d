package service

import "errors"

// Validation errors: bad user input, reported back inline on the form.
var (
	// ErrMissingRequiredFields is returned when invoice number, client name,
	// issue date, or due date is empty.
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrInvalidOwnerInput is returned when the owner setup form violates
	// the account policy: username shorter than 3 characters, password
	// shorter than 6, or a mismatched confirmation.
	ErrInvalidOwnerInput = errors.New("username must be at least 3 characters, password at least 6, and passwords must match")
)

// Authentication errors: deliberately generic, no detail is leaked about
// which part of the credentials was wrong.
var (
	// ErrWrongSetupKey is returned when the owner setup key does not match
	// the operator-configured value.
	ErrWrongSetupKey = errors.New("wrong setup key")

	// ErrWrongCredentials is returned on any login failure, whether the
	// username is unknown or the password does not match.
	ErrWrongCredentials = errors.New("invalid username or password")

	// ErrSessionInvalid is returned when a session cookie is missing its
	// signature, expired, or otherwise unparseable.
	ErrSessionInvalid = errors.New("session is expired or invalid")
)

// ErrOwnerAlreadyExists is returned by owner setup once any owner account
// exists; the setup path is permanently disabled from that point on.
var ErrOwnerAlreadyExists = errors.New("owner already exists")
