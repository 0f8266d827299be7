package models

import "time"

// AttendanceStatus matches the status ENUM in the database.
type AttendanceStatus string

const (
	StatusIn  AttendanceStatus = "in"
	StatusOut AttendanceStatus = "out"
)

// Valid reports whether the status is one of the recognized values.
func (s AttendanceStatus) Valid() bool {
	return s == StatusIn || s == StatusOut
}

// Attendee is one row of the weekly check-in ledger. The real identity is
// the (FirstName, LastName) pair; ID is only a surrogate for deletes.
type Attendee struct {
	ID          int              `json:"id" db:"id"`
	FirstName   string           `json:"first_name" db:"first_name"`
	LastName    string           `json:"last_name" db:"last_name"`
	Status      AttendanceStatus `json:"status" db:"status"`
	CheckedInAt time.Time        `json:"checked_in_at" db:"checked_in_at"`
}

// AttendanceStats is the aggregate view over the current ledger.
// GameStatus is derived from Attending against the configured minimum.
type AttendanceStats struct {
	Attending    int    `json:"attending"`
	NotAttending int    `json:"not_attending"`
	Total        int    `json:"total"`
	GameStatus   string `json:"game_status"`
}
