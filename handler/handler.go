// Package handler holds the HTTP handlers. Each handler decodes the
// request, delegates to a service and converts the outcome into the
// response envelope.
package handler

import (
	"context"
	"errors"
	"net/http"
	"partyinbangalore-backend/logger"
	"partyinbangalore-backend/response"
	"partyinbangalore-backend/store"
)

// sendError maps service failures onto the wire. ErrorResponse values
// pass through as-is, a store miss becomes a 404, anything else is an
// opaque 500 with the detail kept in the logs.
func sendError(ctx context.Context, w http.ResponseWriter, err error) {
	var er response.ErrorResponse
	if errors.As(err, &er) {
		er.Send(ctx, w)
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound().Send(ctx, w)
		return
	}
	logger.Errorf(ctx, "handler: %+v", err)
	response.SomethingWrong().Send(ctx, w)
}
