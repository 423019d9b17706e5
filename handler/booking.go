package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"partyinbangalore-backend/booking"
	c "partyinbangalore-backend/context"
	"partyinbangalore-backend/model"
	"partyinbangalore-backend/response"
	"strconv"
)

type summaryRequest struct {
	EventID    int64                   `json:"event_id"`
	Selections []model.TicketSelection `json:"selections"`
}

type paymentOutcome struct {
	Phone   string `json:"phone"`
	EventID int64  `json:"event_id"`
}

// OrderSummary reprices the selection on every quantity change; it has no
// side effects.
func OrderSummary(service *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req summaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", fmt.Sprintf("orderSummary: error unmarshalling request body: %+v", err)).Send(ctx, w)
			return
		}

		summary, err := service.Summary(ctx, req.EventID, req.Selections)
		if err != nil {
			sendError(ctx, w, err)
			return
		}

		response.OK(map[string]interface{}{
			"summary":            summary,
			"total_payable_text": booking.FormatMoney(summary.TotalPayable),
		}).Send(w)
	}
}

func Checkout(service *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.CheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", fmt.Sprintf("checkout: error unmarshalling request body: %+v", err)).Send(ctx, w)
			return
		}

		result, err := service.Checkout(ctx, req)
		if err != nil {
			sendError(ctx, w, err)
			return
		}

		response.OK(result).Send(w)
	}
}

// PaymentSuccess is the gateway success callback; only here does a
// booking record get written.
func PaymentSuccess(service *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req paymentOutcome
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", fmt.Sprintf("paymentSuccess: error unmarshalling request body: %+v", err)).Send(ctx, w)
			return
		}

		b, err := service.ConfirmPayment(ctx, req.Phone, req.EventID)
		if err != nil {
			sendError(ctx, w, err)
			return
		}

		response.OK(map[string]interface{}{
			"booking": b,
			"message": booking.MsgConfirmed,
		}).Send(w)
	}
}

// PaymentFailure and PaymentDismissed acknowledge the two non-success
// outcomes. Neither writes anything and neither reports success.
func PaymentFailure() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.ErrorResponse{
			StatusCode: http.StatusPaymentRequired,
			Success:    false,
			Message:    booking.MsgPaymentFailed,
			Status:     "PAYMENT_FAILED",
		}.Send(r.Context(), w)
	}
}

func PaymentDismissed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.ErrorResponse{
			StatusCode: http.StatusOK,
			Success:    false,
			Message:    booking.MsgPaymentDismissed,
			Status:     "PAYMENT_DISMISSED",
		}.Send(r.Context(), w)
	}
}

// BookingHistory returns the session user's bookings and party streak.
func BookingHistory(service *booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := strconv.ParseInt(c.GetContextValue(ctx, c.ContextKeyUserID), 10, 64)
		if err != nil {
			response.Unauthorized().Send(ctx, w)
			return
		}

		history, err := service.History(ctx, userID)
		if err != nil {
			sendError(ctx, w, err)
			return
		}

		response.OK(history).Send(w)
	}
}
