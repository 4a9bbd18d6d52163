package services

import "errors"

// Sentinel errors handlers map onto HTTP statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadySubmitted   = errors.New("selections already submitted")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
