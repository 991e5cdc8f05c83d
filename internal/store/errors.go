package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create a user
	// fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrInvoiceNotFound is returned when a lookup by internal ID or view
	// token matches no invoice. Callers must not reveal whether the
	// identifier was close to a real one.
	ErrInvoiceNotFound = errors.New("invoice was not found")
)
