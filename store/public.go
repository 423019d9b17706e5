package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"partyinbangalore-backend/model"
)

// Public read queries for the visitor-facing site. These return typed rows
// with display names joined in, unlike the admin reads which stay generic.

func (s *Store) Events(ctx context.Context) ([]model.Event, error) {
	query := `SELECT e.id, e.title, e.category, e.event_date, e.start_time, e.end_time,
			e.venue_id, e.organizer_id, e.price_display, e.price_value, e.poster_images,
			e.event_details, e.terms_and_conditions, e.google_map_url, e.ticket_types,
			COALESCE(v.name, ''), COALESCE(u.name, '')
		FROM events e
		LEFT JOIN venues v ON v.id = e.venue_id
		LEFT JOIN users u ON u.id = e.organizer_id
		ORDER BY e.event_date, e.start_time`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("events: error preparing query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("events: error executing query: %w", err)
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (s *Store) EventByID(ctx context.Context, id int64) (*model.Event, error) {
	query := `SELECT e.id, e.title, e.category, e.event_date, e.start_time, e.end_time,
			e.venue_id, e.organizer_id, e.price_display, e.price_value, e.poster_images,
			e.event_details, e.terms_and_conditions, e.google_map_url, e.ticket_types,
			COALESCE(v.name, ''), COALESCE(u.name, '')
		FROM events e
		LEFT JOIN venues v ON v.id = e.venue_id
		LEFT JOIN users u ON u.id = e.organizer_id
		WHERE e.id = $1`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("eventByID: error preparing query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("eventByID: error executing query: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		return scanEvent(rows)
	}
	return nil, ErrNotFound
}

func scanEvent(rows *sql.Rows) (*model.Event, error) {
	var e model.Event
	var posters, ticketTypes []byte
	err := rows.Scan(
		&e.ID, &e.Title, &e.Category, &e.EventDate, &e.StartTime, &e.EndTime,
		&e.VenueID, &e.OrganizerID, &e.PriceDisplay, &e.PriceValue, &posters,
		&e.EventDetails, &e.TermsAndConditions, &e.GoogleMapURL, &ticketTypes,
		&e.VenueName, &e.OrganizerName,
	)
	if err != nil {
		return nil, fmt.Errorf("scanEvent: error while scanning row: %w", err)
	}
	if len(posters) > 0 {
		if err := json.Unmarshal(posters, &e.PosterImages); err != nil {
			return nil, fmt.Errorf("scanEvent: error decoding poster_images: %w", err)
		}
	}
	if len(ticketTypes) > 0 {
		if err := json.Unmarshal(ticketTypes, &e.TicketTypes); err != nil {
			return nil, fmt.Errorf("scanEvent: error decoding ticket_types: %w", err)
		}
	}
	return &e, nil
}

func (s *Store) Venues(ctx context.Context) ([]model.Venue, error) {
	query := venueSelect + ` ORDER BY id`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("venues: error preparing query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("venues: error executing query: %w", err)
	}
	defer rows.Close()

	var out []model.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

func (s *Store) VenueByID(ctx context.Context, id int64) (*model.Venue, error) {
	query := venueSelect + ` WHERE id = $1`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("venueByID: error preparing query: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("venueByID: error executing query: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		return scanVenue(rows)
	}
	return nil, ErrNotFound
}

const venueSelect = `SELECT id, name, location, image_url, capacity, cost_per_slot,
		amenities, details, menu, gallery, event_photos, available_slots
	FROM venues`

func scanVenue(rows *sql.Rows) (*model.Venue, error) {
	var v model.Venue
	var amenities, details, menu, gallery, photos, slots []byte
	err := rows.Scan(
		&v.ID, &v.Name, &v.Location, &v.ImageURL, &v.Capacity, &v.CostPerSlot,
		&amenities, &details, &menu, &gallery, &photos, &slots,
	)
	if err != nil {
		return nil, fmt.Errorf("scanVenue: error while scanning row: %w", err)
	}

	for _, col := range []struct {
		raw  []byte
		into interface{}
	}{
		{amenities, &v.Amenities},
		{details, &v.Details},
		{menu, &v.Menu},
		{gallery, &v.Gallery},
		{photos, &v.EventPhotos},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.into); err != nil {
			return nil, fmt.Errorf("scanVenue: error decoding column: %w", err)
		}
	}
	if err := v.ScanSlots(slots); err != nil {
		return nil, fmt.Errorf("scanVenue: %w", err)
	}
	return &v, nil
}

func (s *Store) Categories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, icon FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("categories: error executing query: %w", err)
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon); err != nil {
			return nil, fmt.Errorf("categories: error while scanning row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) Promos(ctx context.Context) ([]model.Promo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, subtitle, background_url, event_id, link_type, button_link, button_text
		 FROM promos ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("promos: error executing query: %w", err)
	}
	defer rows.Close()

	var out []model.Promo
	for rows.Next() {
		var p model.Promo
		if err := rows.Scan(&p.ID, &p.Title, &p.Subtitle, &p.BackgroundURL,
			&p.EventID, &p.LinkType, &p.ButtonLink, &p.ButtonText); err != nil {
			return nil, fmt.Errorf("promos: error while scanning row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) Partners(ctx context.Context) ([]model.Partner, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, logo_url, website_url FROM partners ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("partners: error executing query: %w", err)
	}
	defer rows.Close()

	var out []model.Partner
	for rows.Next() {
		var p model.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.LogoURL, &p.WebsiteURL); err != nil {
			return nil, fmt.Errorf("partners: error while scanning row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) Galleries(ctx context.Context) ([]model.Gallery, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.id, g.event_id, g.image_urls, g.caption, COALESCE(e.title, '')
		 FROM galleries g LEFT JOIN events e ON e.id = g.event_id
		 ORDER BY g.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("galleries: error executing query: %w", err)
	}
	defer rows.Close()

	var out []model.Gallery
	for rows.Next() {
		var g model.Gallery
		var urls []byte
		if err := rows.Scan(&g.ID, &g.EventID, &urls, &g.Caption, &g.EventTitle); err != nil {
			return nil, fmt.Errorf("galleries: error while scanning row: %w", err)
		}
		if len(urls) > 0 {
			if err := json.Unmarshal(urls, &g.ImageURLs); err != nil {
				return nil, fmt.Errorf("galleries: error decoding image_urls: %w", err)
			}
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *Store) Highlights(ctx context.Context) ([]model.Highlight, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT h.id, h.event_id, h.media_url, h.caption, COALESCE(e.title, '')
		 FROM highlights h LEFT JOIN events e ON e.id = h.event_id
		 ORDER BY h.id`)
	if err != nil {
		return nil, fmt.Errorf("highlights: error executing query: %w", err)
	}
	defer rows.Close()

	var out []model.Highlight
	for rows.Next() {
		var h model.Highlight
		var urls []byte
		if err := rows.Scan(&h.ID, &h.EventID, &urls, &h.Caption, &h.EventTitle); err != nil {
			return nil, fmt.Errorf("highlights: error while scanning row: %w", err)
		}
		if len(urls) > 0 {
			if err := json.Unmarshal(urls, &h.MediaURLs); err != nil {
				return nil, fmt.Errorf("highlights: error decoding media_url: %w", err)
			}
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Options returns the selector list feeding an admin form picker. A query
// failure surfaces as an error so the form never renders a silently-empty
// list.
func (s *Store) Options(ctx context.Context, kind model.Kind) ([]model.Option, error) {
	var query string
	switch kind {
	case model.KindVenue:
		query = `SELECT id, name FROM venues ORDER BY name`
	case model.KindOrganizer:
		query = `SELECT id, name FROM users WHERE role IN ('organizer', 'super-admin') ORDER BY name`
	case model.KindCategory:
		query = `SELECT id, name FROM categories ORDER BY name`
	case model.KindEvent:
		query = `SELECT id, title FROM events ORDER BY event_date DESC`
	default:
		return nil, fmt.Errorf("options: no selector list for kind: %q", kind)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("options: error executing query for %s: %w", kind, err)
	}
	defer rows.Close()

	var out []model.Option
	for rows.Next() {
		var o model.Option
		if err := rows.Scan(&o.ID, &o.Label); err != nil {
			return nil, fmt.Errorf("options: error while scanning row: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
