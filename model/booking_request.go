package model

// TicketSelection pairs a ticket tier index with the chosen quantity.
type TicketSelection struct {
	TicketIndex int `json:"ticket_index"`
	Quantity    int `json:"quantity"`
}

type CheckoutRequest struct {
	EventID        int64             `json:"event_id"`
	Selections     []TicketSelection `json:"selections"`
	Name           string            `json:"name"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	TermsAccepted  bool              `json:"terms_accepted"`
	IdempotencyKey string            `json:"idempotency_key"`
}

type ReservationRequest struct {
	VenueID       int64  `json:"venue_id"`
	Slot          Slot   `json:"slot"`
	OrganizerName string `json:"organizer_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	EventType     string `json:"event_type"`
	TermsAccepted bool   `json:"terms_accepted"`
}
