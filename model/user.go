package model

import "time"

const (
	RoleSuperAdmin = "super-admin"
	RoleOrganizer  = "organizer"
	RoleUser       = "user"
)

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
	Phone    string `json:"phone,omitempty"`
}

const (
	BookingUpcoming = "upcoming"
	BookingPast     = "past"
)

// Booking is a confirmed ticket purchase snapshot. Event and venue names
// are copied at purchase time so history survives later edits.
type Booking struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	EventID   int64     `json:"event_id"`
	EventName string    `json:"event_name"`
	VenueName string    `json:"venue_name"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	ImageURL  string    `json:"image_url"`
}
