package service

import "errors"

// Error kinds returned by the services. Callers classify with errors.Is;
// anything not wrapping one of these is an internal store failure.
var (
	ErrInvalidInput     = errors.New("invalid input")                // Malformed or missing input, rejected before any store access
	ErrNotFound         = errors.New("not found")                    // Referenced entity does not exist
	ErrAlreadyConfirmed = errors.New("operation already confirmed") // Confirmation attempted on a confirmed operation
)
