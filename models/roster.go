package models

// TeamMember is a roster entry. Removal is soft: IsActive flips to false
// so attendance history keyed by name stays joinable.
type TeamMember struct {
	ID        int    `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	IsActive  bool   `json:"is_active" db:"is_active"`
}
