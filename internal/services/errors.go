package services

import "errors"

// Error kinds shared across services. Handlers map these to HTTP statuses
// with errors.Is; services wrap them with operation-specific context.
var (
	// ErrNotFound: the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden: the caller is neither owner nor collaborator.
	ErrForbidden = errors.New("access denied")

	// ErrInvariant: a business-rule write did not take effect (failed
	// insert or delete, missing collaborator relation).
	ErrInvariant = errors.New("invariant violation")
)
