package shared

import "errors"

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure. It deliberately covers
	// both unknown email and wrong password so the response never reveals
	// whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTokenInvalid indicates a bearer token that failed signature or
	// structural validation.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrForbidden indicates an authenticated principal lacking entitlement.
	ErrForbidden = errors.New("access denied")
	// ErrAlreadyInPlaylist indicates a duplicate playlist entry.
	ErrAlreadyInPlaylist = errors.New("already in playlist")
	// ErrEmailTaken indicates a registration against an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrValidation indicates malformed request input.
	ErrValidation = errors.New("validation failed")
	// ErrRateLimited indicates too many failed login attempts.
	ErrRateLimited = errors.New("too many attempts")
)
