package model

// TicketType is one purchasable tier of an event. Permits is how many
// people a single ticket of this tier admits.
type TicketType struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Permits     int     `json:"permits"`
}

type Event struct {
	ID                 int64        `json:"id"`
	Title              string       `json:"title"`
	Category           string       `json:"category"`
	EventDate          string       `json:"event_date"`
	StartTime          string       `json:"start_time"`
	EndTime            string       `json:"end_time"`
	VenueID            int64        `json:"venue_id"`
	OrganizerID        int64        `json:"organizer_id"`
	PriceDisplay       string       `json:"price_display"`
	PriceValue         float64      `json:"price_value"`
	PosterImages       []string     `json:"poster_images"`
	EventDetails       string       `json:"event_details"`
	TermsAndConditions string       `json:"terms_and_conditions"`
	GoogleMapURL       string       `json:"google_map_url"`
	TicketTypes        []TicketType `json:"ticket_types"`

	// Joined display names on public reads.
	VenueName     string `json:"venue_name,omitempty"`
	OrganizerName string `json:"organizer_name,omitempty"`
}
