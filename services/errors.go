package services

import "errors"

// Sentinel errors surfaced to controllers, which map them to HTTP statuses
var (
	ErrNotFound       = errors.New("referenced record not found")
	ErrDuplicate      = errors.New("feedback already submitted for this prescription")
	ErrInvalidOutcome = errors.New("invalid feedback outcome")
	ErrInvalidLimit   = errors.New("limit must not be negative")
)
