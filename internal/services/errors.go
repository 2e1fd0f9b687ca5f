package services

import "errors"

// Sentinel errors forming the service-level error taxonomy. Handlers match
// them with errors.Is and translate to HTTP status codes; anything that
// matches none of them is an internal error (500).
var (
	// ErrNotFound maps to 404.
	ErrNotFound = errors.New("not found")
	// ErrConflict maps to 409 (uniqueness violations).
	ErrConflict = errors.New("conflict")
	// ErrForbidden maps to 403 (role or ownership violations).
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials maps to 401. The message deliberately does not
	// say whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrTokenExpired maps to 401 for a token past its expiration.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid maps to 401 for a malformed or badly signed token.
	ErrTokenInvalid = errors.New("invalid token")
)
