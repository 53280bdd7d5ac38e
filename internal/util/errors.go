package util

import "errors"

// Sentinel errors for the client-fault taxonomy. Controllers map these
// to status codes with errors.Is; anything unmatched surfaces as a 500
// with an opaque body.
var (
	ErrValidation         = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyRegistered  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoQuestionsFound   = errors.New("none of the referenced questions exist")
)
