package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNoSession          = errors.New("no active session")
	ErrCorruptSession     = errors.New("stored session is corrupt")

	ErrTaskNotFound        = errors.New("task not found")
	ErrInvalidTask         = errors.New("invalid task")
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrTutorNotFound       = errors.New("tutor not found")
)
