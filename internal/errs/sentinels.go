// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across api/screen layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates a missing or rejected session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the admin level does not allow the action.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation indicates input rejected before any request was made.
	ErrValidation = errors.New("validation")

	// ErrSemSessao indicates an action that requires a logged-in cliente.
	ErrSemSessao = errors.New("no client session")
)
