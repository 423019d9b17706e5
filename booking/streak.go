package booking

import (
	"partyinbangalore-backend/model"
	"time"
)

// PartyStreak counts how many consecutive calendar months, ending with the
// current one, contain at least one booking. Bookings dated after now are
// left out of the month set; the first missing month stops the walk.
func PartyStreak(bookings []model.Booking, now time.Time) int {
	type month struct {
		year int
		mon  time.Month
	}

	seen := map[month]bool{}
	for _, b := range bookings {
		if b.Date.After(now) {
			continue
		}
		seen[month{b.Date.Year(), b.Date.Month()}] = true
	}

	streak := 0
	cursor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for seen[month{cursor.Year(), cursor.Month()}] {
		streak++
		cursor = cursor.AddDate(0, -1, 0)
	}
	return streak
}
