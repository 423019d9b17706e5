package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"partyinbangalore-backend/model"
	"partyinbangalore-backend/normalize"
	"partyinbangalore-backend/response"
	"partyinbangalore-backend/store"
	"strconv"

	"github.com/gorilla/mux"
)

// Admin CRUD over the managed content kinds. The kind rides the URL and
// is parsed against the finite registry before anything touches the store.

type saveRequest struct {
	Form    normalize.Form    `json:"form"`
	Uploads normalize.Uploads `json:"uploads,omitempty"`
}

func ListContent(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		kind, err := contentKind(r)
		if err != nil {
			response.InvalidData(err.Error()).Send(ctx, w)
			return
		}

		rows, err := st.List(ctx, kind)
		if err != nil {
			sendError(ctx, w, err)
			return
		}

		response.OK(rows).Send(w)
	}
}

func GetContent(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		kind, err := contentKind(r)
		if err != nil {
			response.InvalidData(err.Error()).Send(ctx, w)
			return
		}

		id, err := contentID(r)
		if err != nil {
			response.InvalidData(err.Error()).Send(ctx, w)
			return
		}

		row, err := st.Get(ctx, kind, id)
		if err != nil {
			sendError(ctx, w, err)
			return
		}

		response.OK(row).Send(w)
	}
}

// SaveContent normalizes the submitted form and routes it to insert or
// update based on what the store finds, not on the shape of the id.
func SaveContent(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		kind, err := contentKind(r)
		if err != nil {
			response.InvalidData(err.Error()).Send(ctx, w)
			return
		}

		var req saveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest("invalid request body", fmt.Sprintf("saveContent: error unmarshalling request body: %+v", err)).Send(ctx, w)
			return
		}

		rec, err := normalize.Normalize(kind, req.Form, req.Uploads)
		if err != nil {
			response.InvalidData(err.Error()).Send(ctx, w)
			return
		}

		creating := rec.ID == 0
		id, err := st.Save(ctx, rec)
		if err != nil {
			sendError(ctx, w, err)
			return
		}

		data := map[string]interface{}{"id": id, "persisted": rec.Persisted}
		if creating {
			response.Created(data).Send(w)
			return
		}
		response.OK(data).Send(w)
	}
}

func DeleteContent(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		kind, err := contentKind(r)
		if err != nil {
			response.InvalidData(err.Error()).Send(ctx, w)
			return
		}

		id, err := contentID(r)
		if err != nil {
			response.InvalidData(err.Error()).Send(ctx, w)
			return
		}

		if err := st.Delete(ctx, kind, id); err != nil {
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{Success: true, StatusCode: http.StatusNoContent}.Send(w)
	}
}

// FormOptions feeds the admin form selectors. A store failure is an error
// response, never an empty list the form would render as "no venues".
func FormOptions(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		kind, err := contentKind(r)
		if err != nil {
			response.InvalidData(err.Error()).Send(ctx, w)
			return
		}

		options, err := st.Options(ctx, kind)
		if err != nil {
			sendError(ctx, w, err)
			return
		}

		response.OK(options).Send(w)
	}
}

func contentKind(r *http.Request) (model.Kind, error) {
	return model.ParseKind(mux.Vars(r)["kind"])
}

func contentID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("contentID: invalid id: %q", mux.Vars(r)["id"])
	}
	return id, nil
}
