package models

import (
	"strings"
	"time"
)

// HomeAway matches the home_away ENUM in the database.
type HomeAway string

const (
	GameHome HomeAway = "home"
	GameAway HomeAway = "away"
)

func (h HomeAway) Valid() bool {
	return h == GameHome || h == GameAway
}

// holidayMarker is the sentinel substring in Opponent that marks a
// no-game week on the schedule.
const holidayMarker = "Holiday"

// Game is one entry of the season schedule. At most one game has
// IsActive set at any time; the rotation service owns that invariant.
type Game struct {
	ID       int       `json:"id" db:"id"`
	Opponent string    `json:"opponent" db:"opponent"`
	HomeAway HomeAway  `json:"home_away" db:"home_away"`
	Field    string    `json:"field" db:"field"`
	Date     time.Time `json:"date" db:"date"`
	Time     string    `json:"time" db:"time"`
	IsActive bool      `json:"is_active" db:"is_active"`
}

// IsHoliday reports whether this schedule slot is a holiday placeholder
// rather than a playable game.
func (g Game) IsHoliday() bool {
	return strings.Contains(g.Opponent, holidayMarker)
}
