package response

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"partyinbangalore-backend/logger"
)

type ErrorResponse struct {
	StatusCode  int
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	Description string
}

func (r ErrorResponse) Error() string {
	return fmt.Sprintf("StatusCode: %d, Success: %t, Message: %s, Status: %s, Description: %s", r.StatusCode, r.Success, r.Message, r.Status, r.Description)
}

func (r ErrorResponse) Send(ctx context.Context, w http.ResponseWriter) {
	logger.Errorf(ctx, r.Error())
	if r.StatusCode == 0 {
		r.StatusCode = http.StatusBadRequest
	}
	w.WriteHeader(r.StatusCode)
	json.NewEncoder(w).Encode(r)
}

func BadRequest(message, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     message,
		Status:      "BAD_REQUEST",
		Description: description,
	}
}

func ResourceNotFound(message, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusNotFound,
		Success:     false,
		Message:     message,
		Status:      "NOT_FOUND",
		Description: description,
	}
}

func Unauthorized() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusUnauthorized,
		Success:    false,
		Message:    "No valid Auth Token",
		Status:     "UNAUTHORISED",
	}
}

func SomethingWrong() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Success:    false,
		Message:    "Sorry, Something went wrong",
		Status:     "SOMETHING_WRONG",
	}
}

func InvalidData(description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     "Invalid data passed",
		Status:      "INVALID_DATA",
		Description: description,
	}
}

// ValidationFailed carries the message shown to the user for a failed
// form precondition, for example a missing phone number at checkout.
func ValidationFailed(message string) ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    message,
		Status:     "VALIDATION_FAILED",
	}
}

func InvalidPhone() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "Please enter a valid 10 digit phone number",
		Status:     "INVALID_PHONE",
	}
}

func UserNotExist() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusNotFound,
		Success:    false,
		Message:    "No such user exists",
		Status:     "USER_NOT_EXIST",
	}
}

func CanNotLogin() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusUnauthorized,
		Success:    false,
		Message:    "Wrong Username or Password",
		Status:     "CANT_LOGIN",
	}
}

func SMSNotSent() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadGateway,
		Success:    false,
		Message:    "Could not send OTP, please try again",
		Status:     "SMS_NOT_SENT",
	}
}

func OTPNotRequested() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "No OTP was requested for this number",
		Status:     "OTP_NOT_REQUESTED",
	}
}

func OTPExpired() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusGone,
		Success:    false,
		Message:    "OTP Expired, Please try again",
		Status:     "OTP_EXPIRED",
	}
}

func OTPMismatch() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "Wrong OTP entered",
		Status:     "OTP_MISMATCH",
	}
}

func OTPAttemptsExceeded() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusTooManyRequests,
		Success:    false,
		Message:    "Too many wrong attempts, please request a new OTP",
		Status:     "OTP_ATTEMPTS_EXCEEDED",
	}
}

func PaymentFailed() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusPaymentRequired,
		Success:    false,
		Message:    "Payment failed. Please try again.",
		Status:     "PAYMENT_FAILED",
	}
}

func NotFound() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusNotFound,
		Success:    false,
		Message:    "Requested Resource Not Found",
		Status:     "NOT_FOUND",
	}
}
