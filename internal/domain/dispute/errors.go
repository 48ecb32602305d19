package dispute

import "errors"

var (
	// ErrAlreadyExists is returned when a dispute for the same transaction
	// reference has already been filed.
	ErrAlreadyExists = errors.New("dispute already filed for this transaction")

	// ErrNotFound is returned by lookups for an unknown dispute.
	ErrNotFound = errors.New("dispute not found")

	// ErrValidation wraps malformed or missing filing input.
	ErrValidation = errors.New("invalid dispute request")
)
