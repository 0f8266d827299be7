package services

import (
	"time"

	"github.com/chico-slowpitch/attendance-system/models"
)

func fridayOf(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// defaultSeasonSchedule is the Friday-night summer league schedule the
// tracker starts with when the games table is empty. The opening game is
// active; the weekly rotation walks the rest.
var defaultSeasonSchedule = []models.Game{
	{
		Opponent: "Chico Islanders",
		HomeAway: models.GameHome,
		Field:    "Hooker Oak Park, Chico, CA",
		Date:     fridayOf(2025, time.June, 20),
		Time:     "7:10 PM PST",
		IsActive: true,
	},
	{
		Opponent: "Hignell Hooligans",
		HomeAway: models.GameHome,
		Field:    "Hooker Oak Park, Chico, CA",
		Date:     fridayOf(2025, time.June, 27),
		Time:     "6:00 PM PST",
	},
	{
		Opponent: "Holiday - July 4th, no games",
		HomeAway: models.GameHome,
		Field:    "No games scheduled",
		Date:     fridayOf(2025, time.July, 4),
		Time:     "Holiday",
	},
	{
		Opponent: "Butte Roofing Company",
		HomeAway: models.GameAway,
		Field:    "Hooker Oak Park, Chico, CA",
		Date:     fridayOf(2025, time.July, 11),
		Time:     "6:00 PM PST",
	},
	{
		Opponent: "Bat Habits",
		HomeAway: models.GameHome,
		Field:    "Hooker Oak Park, Chico, CA",
		Date:     fridayOf(2025, time.July, 18),
		Time:     "9:30 PM PST",
	},
	{
		Opponent: "The Not So Glum Lot",
		HomeAway: models.GameAway,
		Field:    "Hooker Oak Park, Chico, CA",
		Date:     fridayOf(2025, time.July, 25),
		Time:     "8:20 PM PST",
	},
	{
		Opponent: "Sticks and Chicks",
		HomeAway: models.GameHome,
		Field:    "Hooker Oak Park, Chico, CA",
		Date:     fridayOf(2025, time.August, 1),
		Time:     "7:10 PM PST",
	},
	{
		Opponent: "Bat Intentions",
		HomeAway: models.GameAway,
		Field:    "Hooker Oak Park, Chico, CA",
		Date:     fridayOf(2025, time.August, 8),
		Time:     "8:20 PM PST",
	},
	{
		Opponent: "Chico Islanders",
		HomeAway: models.GameAway,
		Field:    "Hooker Oak Park, Chico, CA",
		Date:     fridayOf(2025, time.August, 15),
		Time:     "9:30 PM PST",
	},
}
