package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrInvalidToken       = errors.New("Invalid or expired token")
	ErrAccountDisabled    = errors.New("Account is disabled")
)
