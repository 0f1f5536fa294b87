package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidSecret      = errors.New("invalid registration secret")
	ErrRegistrationClosed = errors.New("an admin is already registered")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrMissingFields      = errors.New("missing required fields")
)
