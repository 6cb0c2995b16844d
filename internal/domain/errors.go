package domain

import "errors"

var (
	// ErrNotFound indicates the reminder id is unknown to the store
	ErrNotFound = errors.New("reminder not found")

	// ErrInvalidTransition indicates the requested state change violates the
	// reminder state machine (e.g. transitioning a terminal reminder)
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrInvalidTime indicates a due time in the past beyond the configured grace tolerance
	ErrInvalidTime = errors.New("due time is in the past")

	// ErrUnknownPersona indicates the persona id has no registered renderer
	ErrUnknownPersona = errors.New("unknown persona")
)
