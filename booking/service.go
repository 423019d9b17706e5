package booking

import (
	"context"
	"fmt"
	"partyinbangalore-backend/logger"
	"partyinbangalore-backend/model"
	"partyinbangalore-backend/payment"
	"partyinbangalore-backend/response"
	"partyinbangalore-backend/store"
	"strconv"
	"strings"
	"sync"
	"time"
)

// The three terminal payment outcomes carry distinct user-visible
// messages; a cancelled or failed payment must never read as a success.
const (
	MsgConfirmed        = "Booking confirmed! See you at the party."
	MsgPaymentFailed    = "Payment failed. Please try again."
	MsgPaymentDismissed = "Payment cancelled. No ticket has been booked."
)

func NewService(st *store.Store, gateway payment.Gateway, platformFee float64) *Service {
	return &Service{
		store:       st,
		gateway:     gateway,
		platformFee: platformFee,
	}
}

type Service struct {
	store       *store.Store
	gateway     payment.Gateway
	platformFee float64
	inflight    sync.Map
}

type CheckoutResult struct {
	Summary Summary        `json:"summary"`
	Order   *payment.Order `json:"order,omitempty"`
	Booking *model.Booking `json:"booking,omitempty"`
	Message string         `json:"message,omitempty"`
}

// Summary prices a selection against the event's ticket tiers without any
// side effects; the order page calls this on every quantity change.
func (s *Service) Summary(ctx context.Context, eventID int64, selections []model.TicketSelection) (*Summary, error) {
	event, err := s.store.EventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("summary: error fetching event: %d: %w", eventID, err)
	}

	summary := Summarize(event.TicketTypes, selections, s.platformFee)
	return &summary, nil
}

// Checkout validates the order and either confirms it locally, when
// nothing is payable, or opens a payment order. A second submission with
// the same idempotency key is rejected while the first is still running;
// without a client key the guard falls back to the event/phone pair, so a
// double-click still collides with itself.
func (s *Service) Checkout(ctx context.Context, req model.CheckoutRequest) (*CheckoutResult, error) {
	key := strings.TrimSpace(req.IdempotencyKey)
	if key == "" {
		key = fmt.Sprintf("%d:%s", req.EventID, req.Phone)
	}

	if _, loaded := s.inflight.LoadOrStore(key, true); loaded {
		return nil, response.ValidationFailed("Your booking is already being processed, please wait")
	}
	defer s.inflight.Delete(key)

	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	event, err := s.store.EventByID(ctx, req.EventID)
	if err != nil {
		return nil, fmt.Errorf("checkout: error fetching event: %d: %w", req.EventID, err)
	}

	summary := Summarize(event.TicketTypes, req.Selections, s.platformFee)
	if summary.TotalPeople == 0 {
		return nil, response.ValidationFailed("Please select at least one ticket")
	}

	if summary.TotalPayable == 0 {
		b, err := s.confirm(ctx, req.Phone, event)
		if err != nil {
			return nil, fmt.Errorf("checkout: %w", err)
		}
		return &CheckoutResult{Summary: summary, Booking: b, Message: MsgConfirmed}, nil
	}

	notes := map[string]string{
		"event_id":   strconv.FormatInt(event.ID, 10),
		"event_name": event.Title,
		"venue_name": event.VenueName,
		"people":     strconv.Itoa(summary.TotalPeople),
	}
	order, err := s.gateway.CreateOrder(ctx, summary.TotalPayable, notes)
	if err != nil {
		logger.Errorf(ctx, "checkout: error creating payment order: %+v", err)
		return nil, response.PaymentFailed()
	}

	return &CheckoutResult{Summary: summary, Order: order}, nil
}

// ConfirmPayment is the success callback. The booking snapshot is written
// only here, so a failed or dismissed payment leaves no record behind.
func (s *Service) ConfirmPayment(ctx context.Context, phone string, eventID int64) (*model.Booking, error) {
	event, err := s.store.EventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("confirmPayment: error fetching event: %d: %w", eventID, err)
	}
	return s.confirm(ctx, phone, event)
}

func (s *Service) confirm(ctx context.Context, phone string, event *model.Event) (*model.Booking, error) {
	user, err := s.store.EnsureUserByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("confirm: error resolving user: %w", err)
	}

	date, err := time.Parse("2006-01-02", event.EventDate)
	if err != nil {
		logger.Warnf(ctx, "confirm: unparsable event date %q, using now", event.EventDate)
		date = time.Now().UTC()
	}

	image := ""
	if len(event.PosterImages) > 0 {
		image = event.PosterImages[0]
	}

	b := model.Booking{
		UserID:    user.ID,
		EventID:   event.ID,
		EventName: event.Title,
		VenueName: event.VenueName,
		Date:      date,
		Status:    bookingStatus(date, time.Now().UTC()),
		ImageURL:  image,
	}
	if _, err := s.store.CreateBooking(ctx, &b); err != nil {
		return nil, fmt.Errorf("confirm: error persisting booking: %w", err)
	}
	return &b, nil
}

type History struct {
	Bookings []model.Booking `json:"bookings"`
	Streak   int             `json:"streak"`
}

// History returns the user's bookings with statuses recomputed for today,
// plus the party streak.
func (s *Service) History(ctx context.Context, userID int64) (*History, error) {
	bookings, err := s.store.BookingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("history: error fetching bookings: %w", err)
	}

	now := time.Now().UTC()
	for i := range bookings {
		bookings[i].Status = bookingStatus(bookings[i].Date, now)
	}

	return &History{
		Bookings: bookings,
		Streak:   PartyStreak(bookings, now),
	}, nil
}

func bookingStatus(date, now time.Time) string {
	if date.Before(now.Truncate(24 * time.Hour)) {
		return model.BookingPast
	}
	return model.BookingUpcoming
}

func validateCheckout(req model.CheckoutRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return response.ValidationFailed("Please enter your name")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return response.ValidationFailed("Please enter your phone number")
	}
	if strings.TrimSpace(req.Email) == "" {
		return response.ValidationFailed("Please enter your email")
	}
	if !req.TermsAccepted {
		return response.ValidationFailed("Please accept the terms and conditions")
	}
	return nil
}
