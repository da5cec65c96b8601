package services

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned when a caller supplied a value
	// outside the accepted range or set.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyExists is returned when a unique constraint would be
	// violated, e.g. registering a taken email.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized is returned when credentials do not match.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the caller lacks the role needed
	// for an operation.
	ErrForbidden = errors.New("forbidden")
)
