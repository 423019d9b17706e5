// Package reservation books a venue slot for an organizer. A venue with
// no slot cost confirms locally; anything payable goes through the
// payment gateway.
package reservation

import (
	"context"
	"fmt"
	"partyinbangalore-backend/logger"
	"partyinbangalore-backend/model"
	"partyinbangalore-backend/payment"
	"partyinbangalore-backend/response"
	"strconv"
	"strings"
)

// Each terminal outcome has its own wording so a cancelled payment can
// never be mistaken for a confirmed slot.
const (
	MsgConfirmed        = "Reservation confirmed! The venue will reach out to you shortly."
	MsgPaymentFailed    = "Payment failed. Your slot has not been reserved."
	MsgPaymentDismissed = "Payment cancelled. Your slot has not been reserved."
)

type venueStore interface {
	VenueByID(ctx context.Context, id int64) (*model.Venue, error)
}

func NewService(venues venueStore, gateway payment.Gateway) *Service {
	return &Service{venues: venues, gateway: gateway}
}

type Service struct {
	venues  venueStore
	gateway payment.Gateway
}

type Result struct {
	Confirmed bool           `json:"confirmed"`
	Fee       float64        `json:"fee"`
	Order     *payment.Order `json:"order,omitempty"`
	Message   string         `json:"message,omitempty"`
}

func (s *Service) Reserve(ctx context.Context, req model.ReservationRequest) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	venue, err := s.venues.VenueByID(ctx, req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("reserve: error fetching venue: %d: %w", req.VenueID, err)
	}

	fee := venue.CostPerSlot
	if fee == 0 {
		return &Result{Confirmed: true, Message: MsgConfirmed}, nil
	}

	notes := map[string]string{
		"venue_id":       strconv.FormatInt(venue.ID, 10),
		"slot_details":   fmt.Sprintf("%s %s %s-%s", req.Slot.Day, req.Slot.Name, req.Slot.Start, req.Slot.End),
		"organizer_name": req.OrganizerName,
		"event_type":     req.EventType,
	}
	order, err := s.gateway.CreateOrder(ctx, fee, notes)
	if err != nil {
		logger.Errorf(ctx, "reserve: error creating payment order: %+v", err)
		return nil, response.PaymentFailed()
	}

	return &Result{Fee: fee, Order: order}, nil
}

func validate(req model.ReservationRequest) error {
	if strings.TrimSpace(req.OrganizerName) == "" {
		return response.ValidationFailed("Please enter your name")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return response.ValidationFailed("Please enter your phone number")
	}
	if strings.TrimSpace(req.Email) == "" {
		return response.ValidationFailed("Please enter your email")
	}
	if strings.TrimSpace(req.EventType) == "" {
		return response.ValidationFailed("Please select an event type")
	}
	if !req.TermsAccepted {
		return response.ValidationFailed("Please accept the terms and conditions")
	}
	return nil
}
