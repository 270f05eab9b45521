package models

import "errors"

// Error taxonomy surfaced to the client. All of these are transient: the
// user may retry the triggering action.
var (
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrAnalysisFailed     = errors.New("biometric scan sequence failed")
	ErrTryOnFailed        = errors.New("try-on generation failed")

	ErrNoSession      = errors.New("no active session")
	ErrNoPortrait     = errors.New("no source portrait uploaded")
	ErrNoGarment      = errors.New("no garment selected")
	ErrUnknownGarment = errors.New("unknown garment id")
	ErrLookNotFound   = errors.New("saved look not found")
)
