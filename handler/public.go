package handler

import (
	"net/http"
	"partyinbangalore-backend/model"
	"partyinbangalore-backend/response"
	"partyinbangalore-backend/store"
	"strconv"

	"github.com/gorilla/mux"
)

// Visitor-facing reads. These wrap the typed store queries that join in
// display names.

func Events(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		events, err := st.Events(ctx)
		if err != nil {
			sendError(ctx, w, err)
			return
		}
		response.OK(events).Send(w)
	}
}

func Event(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := pathID(r)
		if err != nil {
			response.InvalidData(err.Error()).Send(ctx, w)
			return
		}

		event, err := st.EventByID(ctx, id)
		if err != nil {
			sendError(ctx, w, err)
			return
		}
		response.OK(event).Send(w)
	}
}

func Venues(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		venues, err := st.Venues(ctx)
		if err != nil {
			sendError(ctx, w, err)
			return
		}
		response.OK(venues).Send(w)
	}
}

func Venue(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := pathID(r)
		if err != nil {
			response.InvalidData(err.Error()).Send(ctx, w)
			return
		}

		venue, err := st.VenueByID(ctx, id)
		if err != nil {
			sendError(ctx, w, err)
			return
		}
		response.OK(venue).Send(w)
	}
}

func Categories(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		categories, err := st.Categories(ctx)
		if err != nil {
			sendError(ctx, w, err)
			return
		}
		response.OK(categories).Send(w)
	}
}

func Promos(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		promos, err := st.Promos(ctx)
		if err != nil {
			sendError(ctx, w, err)
			return
		}
		response.OK(promos).Send(w)
	}
}

func Partners(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		partners, err := st.Partners(ctx)
		if err != nil {
			sendError(ctx, w, err)
			return
		}
		response.OK(partners).Send(w)
	}
}

func Galleries(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		galleries, err := st.Galleries(ctx)
		if err != nil {
			sendError(ctx, w, err)
			return
		}
		response.OK(galleries).Send(w)
	}
}

func Highlights(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		highlights, err := st.Highlights(ctx)
		if err != nil {
			sendError(ctx, w, err)
			return
		}
		response.OK(highlights).Send(w)
	}
}

// Stories composes the story-viewer payload: highlights grouped per
// event, first media as the cover.
func Stories(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		highlights, err := st.Highlights(ctx)
		if err != nil {
			sendError(ctx, w, err)
			return
		}

		response.OK(composeStories(highlights)).Send(w)
	}
}

func composeStories(highlights []model.Highlight) []model.Story {
	var order []int64
	byEvent := map[int64]*model.Story{}
	for _, h := range highlights {
		if len(h.MediaURLs) == 0 {
			continue
		}
		s, ok := byEvent[h.EventID]
		if !ok {
			s = &model.Story{
				EventID:    h.EventID,
				EventTitle: h.EventTitle,
				CoverURL:   h.MediaURLs[0],
			}
			byEvent[h.EventID] = s
			order = append(order, h.EventID)
		}
		s.MediaURLs = append(s.MediaURLs, h.MediaURLs...)
	}

	out := make([]model.Story, 0, len(order))
	for _, id := range order {
		out = append(out, *byEvent[id])
	}
	return out
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
