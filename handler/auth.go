package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"partyinbangalore-backend/auth"
	"partyinbangalore-backend/model"
	"partyinbangalore-backend/otp"
	"partyinbangalore-backend/response"
	"partyinbangalore-backend/store"
)

func RequestOTP(service *otp.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.Auth
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", fmt.Sprintf("requestOTP: error unmarshalling request body: %+v", err)).Send(ctx, w)
			return
		}

		if err := service.Request(ctx, req.Phone); err != nil {
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{Success: true, StatusCode: http.StatusOK}.Send(w)
	}
}

// VerifyOTP consumes the challenge, resolves the account behind the phone
// and mints the session token the success payload carries.
func VerifyOTP(service *otp.Service, st *store.Store, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.Auth
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", fmt.Sprintf("verifyOTP: error unmarshalling request body: %+v", err)).Send(ctx, w)
			return
		}

		if err := service.Verify(ctx, req.Phone, req.OTP); err != nil {
			sendError(ctx, w, err)
			return
		}

		user, err := st.EnsureUserByPhone(ctx, req.Phone)
		if err != nil {
			sendError(ctx, w, err)
			return
		}

		token, err := auth.IssueToken(secret, user.ID, model.RoleUser)
		if err != nil {
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Success:    true,
			Token:      token,
			Data:       user,
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

// Login is the back-office password login for organizers and admins.
func Login(st *store.Store, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.Login
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", fmt.Sprintf("login: error unmarshalling request body: %+v", err)).Send(ctx, w)
			return
		}

		user, err := st.UserByUsername(ctx, req.Username)
		if err != nil {
			response.CanNotLogin().Send(ctx, w)
			return
		}

		if user.Password == "" || user.Password != req.Password {
			response.CanNotLogin().Send(ctx, w)
			return
		}

		token, err := auth.IssueToken(secret, user.ID, user.Role)
		if err != nil {
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Success:    true,
			Token:      token,
			Data:       user,
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}
