package services

import "errors"

// Errors shared between the services and the HTTP error mapping.
var (
	// Validation failures, rejected before any write.
	ErrFirstNameRequired = errors.New("first name is required")
	ErrLastNameRequired  = errors.New("last name is required")
	ErrInvalidStatus     = errors.New(`status must be "in" or "out"`)
	ErrOpponentRequired  = errors.New("opponent is required")
	ErrFieldRequired     = errors.New("field is required")
	ErrInvalidHomeAway   = errors.New(`home_away must be "home" or "away"`)
	ErrGameDateRequired  = errors.New("game date is required")

	// Unknown ids.
	ErrAttendeeNotFound = errors.New("attendee not found")
	ErrGameNotFound     = errors.New("game not found")
	ErrMemberNotFound   = errors.New("team member not found")

	// Duplicate active roster member.
	ErrMemberConflict = errors.New("an active team member with this name already exists")
)
