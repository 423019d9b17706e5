package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"partyinbangalore-backend/model"
	"partyinbangalore-backend/reservation"
	"partyinbangalore-backend/response"
)

func Reserve(service *reservation.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.ReservationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", fmt.Sprintf("reserve: error unmarshalling request body: %+v", err)).Send(ctx, w)
			return
		}

		result, err := service.Reserve(ctx, req)
		if err != nil {
			sendError(ctx, w, err)
			return
		}

		response.OK(result).Send(w)
	}
}

func ReservationPaid() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.OK(map[string]string{"message": reservation.MsgConfirmed}).Send(w)
	}
}

func ReservationPaymentFailed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.ErrorResponse{
			StatusCode: http.StatusPaymentRequired,
			Success:    false,
			Message:    reservation.MsgPaymentFailed,
			Status:     "PAYMENT_FAILED",
		}.Send(r.Context(), w)
	}
}

func ReservationPaymentDismissed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.ErrorResponse{
			StatusCode: http.StatusOK,
			Success:    false,
			Message:    reservation.MsgPaymentDismissed,
			Status:     "PAYMENT_DISMISSED",
		}.Send(r.Context(), w)
	}
}
