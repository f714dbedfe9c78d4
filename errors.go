package main

import "errors"

// ValidationError reports malformed or missing user input. Its message is
// safe to render back to the user.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ConflictError reports a registration that collides with an existing account.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

var (
	// ErrNoAccount means no account matched the given name or id.
	ErrNoAccount = errors.New("account does not exist")

	// ErrBadCredentials means the password did not match the stored hash.
	ErrBadCredentials = errors.New("wrong password")
)
