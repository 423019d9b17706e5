package booking

import (
	"testing"
	"time"

	"partyinbangalore-backend/model"

	"github.com/stretchr/testify/assert"
)

func booked(year int, month time.Month, day int) model.Booking {
	return model.Booking{Date: time.Date(year, month, day, 20, 0, 0, 0, time.UTC)}
}

func TestStreakConsecutiveMonths(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	bookings := []model.Booking{
		booked(2026, time.January, 10),
		booked(2026, time.February, 20),
		booked(2026, time.March, 1),
	}
	assert.Equal(t, 3, PartyStreak(bookings, now))
}

func TestStreakStopsAtFirstGap(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	bookings := []model.Booking{
		booked(2026, time.January, 10),
		booked(2026, time.March, 1),
	}
	assert.Equal(t, 1, PartyStreak(bookings, now))
}

func TestStreakZeroWithoutBookings(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, PartyStreak(nil, now))
}

func TestStreakZeroWhenCurrentMonthEmpty(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	bookings := []model.Booking{
		booked(2026, time.January, 10),
		booked(2026, time.February, 20),
	}
	assert.Equal(t, 0, PartyStreak(bookings, now))
}

func TestStreakMultipleBookingsInOneMonthCountOnce(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	bookings := []model.Booking{
		booked(2026, time.March, 1),
		booked(2026, time.March, 7),
		booked(2026, time.March, 14),
	}
	assert.Equal(t, 1, PartyStreak(bookings, now))
}

func TestStreakIgnoresFutureDatedBookings(t *testing.T) {
	// A booking later this month but after "now" does not start a streak;
	// only bookings up to now enter the month set.
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	bookings := []model.Booking{
		booked(2026, time.March, 20),
		booked(2026, time.April, 2),
	}
	assert.Equal(t, 0, PartyStreak(bookings, now))
}

func TestStreakCrossesYearBoundary(t *testing.T) {
	now := time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)
	bookings := []model.Booking{
		booked(2025, time.November, 28),
		booked(2025, time.December, 31),
		booked(2026, time.January, 2),
	}
	assert.Equal(t, 3, PartyStreak(bookings, now))
}
