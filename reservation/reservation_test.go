package reservation

import (
	"context"
	"errors"
	"testing"

	"partyinbangalore-backend/model"
	"partyinbangalore-backend/payment"
	"partyinbangalore-backend/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVenues struct {
	venue *model.Venue
}

func (s *stubVenues) VenueByID(_ context.Context, id int64) (*model.Venue, error) {
	if s.venue == nil || s.venue.ID != id {
		return nil, errors.New("venue not found")
	}
	return s.venue, nil
}

type stubGateway struct {
	amount float64
	notes  map[string]string
	fail   bool
}

func (s *stubGateway) CreateOrder(_ context.Context, amount float64, notes map[string]string) (*payment.Order, error) {
	if s.fail {
		return nil, errors.New("gateway down")
	}
	s.amount = amount
	s.notes = notes
	return &payment.Order{ID: "order_xyz", Amount: payment.MinorUnits(amount), Currency: "INR", Notes: notes}, nil
}

func validRequest() model.ReservationRequest {
	return model.ReservationRequest{
		VenueID:       7,
		Slot:          model.Slot{Day: "Fri", Name: "Evening", Start: "18:00", End: "22:00"},
		OrganizerName: "Asha",
		Phone:         "+919876543210",
		Email:         "asha@example.com",
		EventType:     "Birthday",
		TermsAccepted: true,
	}
}

func TestReserveFreeVenueConfirmsLocally(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(&stubVenues{venue: &model.Venue{ID: 7, CostPerSlot: 0}}, gw)

	res, err := svc.Reserve(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, res.Confirmed)
	assert.Equal(t, MsgConfirmed, res.Message)
	assert.Nil(t, res.Order)
	assert.Empty(t, gw.notes, "no gateway call for a free slot")
}

func TestReservePayableVenueOpensOrderInMinorUnits(t *testing.T) {
	gw := &stubGateway{}
	svc := NewService(&stubVenues{venue: &model.Venue{ID: 7, CostPerSlot: 4500}}, gw)

	res, err := svc.Reserve(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, res.Confirmed)
	require.NotNil(t, res.Order)
	assert.Equal(t, int64(450000), res.Order.Amount)
	assert.Equal(t, 4500.0, gw.amount)
	assert.Equal(t, "7", gw.notes["venue_id"])
	assert.Equal(t, "Fri Evening 18:00-22:00", gw.notes["slot_details"])
	assert.Equal(t, "Asha", gw.notes["organizer_name"])
	assert.Equal(t, "Birthday", gw.notes["event_type"])
}

func TestReserveGatewayFailureIsNotASuccess(t *testing.T) {
	gw := &stubGateway{fail: true}
	svc := NewService(&stubVenues{venue: &model.Venue{ID: 7, CostPerSlot: 4500}}, gw)

	res, err := svc.Reserve(context.Background(), validRequest())
	assert.Nil(t, res)
	assert.Equal(t, response.PaymentFailed(), err)
}

func TestReserveValidationMessages(t *testing.T) {
	svc := NewService(&stubVenues{venue: &model.Venue{ID: 7}}, &stubGateway{})

	cases := []struct {
		mutate  func(*model.ReservationRequest)
		message string
	}{
		{func(r *model.ReservationRequest) { r.OrganizerName = " " }, "Please enter your name"},
		{func(r *model.ReservationRequest) { r.Phone = "" }, "Please enter your phone number"},
		{func(r *model.ReservationRequest) { r.Email = "" }, "Please enter your email"},
		{func(r *model.ReservationRequest) { r.EventType = "" }, "Please select an event type"},
		{func(r *model.ReservationRequest) { r.TermsAccepted = false }, "Please accept the terms and conditions"},
	}

	for _, tc := range cases {
		req := validRequest()
		tc.mutate(&req)

		_, err := svc.Reserve(context.Background(), req)
		assert.Equal(t, response.ValidationFailed(tc.message), err)
	}
}

func TestOutcomeMessagesAreDistinct(t *testing.T) {
	assert.NotEqual(t, MsgConfirmed, MsgPaymentFailed)
	assert.NotEqual(t, MsgConfirmed, MsgPaymentDismissed)
	assert.NotEqual(t, MsgPaymentFailed, MsgPaymentDismissed)
}
