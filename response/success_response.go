package response

import (
	"encoding/json"
	"net/http"
)

type SuccessResponse struct {
	Success    bool        `json:"success"`
	Token      string      `json:"token,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	StatusCode int         `json:"-"`
}

func OK(data interface{}) SuccessResponse {
	return SuccessResponse{
		Success:    true,
		Data:       data,
		StatusCode: http.StatusOK,
	}
}

func Created(data interface{}) SuccessResponse {
	return SuccessResponse{
		Success:    true,
		Data:       data,
		StatusCode: http.StatusCreated,
	}
}

func (r SuccessResponse) Send(w http.ResponseWriter) {
	if r.StatusCode == 0 {
		r.StatusCode = http.StatusOK
	}
	w.WriteHeader(r.StatusCode)
	if r.StatusCode == http.StatusNoContent {
		return
	}
	json.NewEncoder(w).Encode(r)
}
