package model

import "errors"

var (
	// Input
	ErrInvalidBody = errors.New("invalid JSON body")

	// Registration
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrRegistrationFailed = errors.New("registration failed, please try again later")

	// Login. Deliberately generic: the same error covers an unknown
	// username and a wrong password so callers cannot enumerate accounts.
	ErrLoginFailed = errors.New("login failed")

	// Auth gate
	ErrMissingToken = errors.New("missing authorization token")
	ErrUnauthorized = errors.New("authentication failed")

	// Store
	ErrUserNotFound = errors.New("user not found")
)
