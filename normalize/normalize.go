// Package normalize turns decoded admin-form JSON into write payloads with
// persisted column names. Each kind has its own normalizer; only listed
// fields are copied, so form-only keys never reach the store.
package normalize

import (
	"encoding/json"
	"fmt"
	"partyinbangalore-backend/model"
	"partyinbangalore-backend/timeenc"
	"regexp"
	"strconv"
	"strings"
)

// Form is a decoded JSON object as submitted by the admin forms.
type Form map[string]interface{}

// Uploads maps an uploader field name, as the form names it, to the
// hosted URLs that came back from the image host.
type Uploads map[string][]string

type normalizer func(Form) (*model.Record, error)

var normalizers = map[model.Kind]normalizer{
	model.KindEvent:     event,
	model.KindVenue:     venue,
	model.KindCategory:  category,
	model.KindPromo:     promo,
	model.KindPartner:   partner,
	model.KindGallery:   gallery,
	model.KindHighlight: highlight,
	model.KindOrganizer: organizer,
}

// Normalize folds uploads into the form under persisted key names and runs
// the kind's normalizer. The returned record carries the submitted id when
// one parses to a positive integer; Persisted stays false until the store
// confirms the row exists.
func Normalize(kind model.Kind, form Form, uploads Uploads) (*model.Record, error) {
	n, ok := normalizers[kind]
	if !ok {
		return nil, fmt.Errorf("normalize: no normalizer for kind: %q", kind)
	}

	merged := Form{}
	for k, v := range form {
		merged[k] = v
	}
	for k, urls := range uploads {
		merged[SnakeCase(k)] = urls
	}

	rec, err := n(merged)
	if err != nil {
		return nil, fmt.Errorf("normalize: %s: %w", kind, err)
	}
	rec.Kind = kind
	rec.ID = recordID(merged)
	return rec, nil
}

var upperRx = regexp.MustCompile(`([A-Z])`)

// SnakeCase converts a camelCase form key to its persisted spelling, for
// example "posterImages" to "poster_images".
func SnakeCase(key string) string {
	return strings.ToLower(upperRx.ReplaceAllString(key, "_$1"))
}

func event(f Form) (*model.Record, error) {
	r := &model.Record{}
	r.Set("title", text(f, "title"))
	r.Set("category", text(f, "category"))
	r.Set("event_date", text(f, "event_date", "eventDate"))
	r.Set("start_time", text(f, "start_time", "startTime"))
	r.Set("end_time", text(f, "end_time", "endTime"))
	r.Set("venue_id", whole(f, "venue_id", "venueId"))
	r.Set("organizer_id", whole(f, "organizer_id", "organizerId"))
	r.Set("price_display", text(f, "price_display", "priceDisplay"))
	r.Set("price_value", number(f, "price_value", "priceValue"))
	r.Set("poster_images", list(f, "poster_images", "posterImages"))
	r.Set("event_details", text(f, "event_details", "eventDetails"))
	r.Set("terms_and_conditions", text(f, "terms_and_conditions", "termsAndConditions"))
	r.Set("google_map_url", text(f, "google_map_url", "googleMapUrl"))
	if v, ok := pick(f, "ticket_types", "ticketTypes"); ok {
		tiers, err := tierList(v)
		if err != nil {
			return nil, fmt.Errorf("event: %w", err)
		}
		r.Set("ticket_types", tiers)
	}
	return r, nil
}

// tierList rebuilds submitted ticket tiers through the model type and
// rejects negative prices or permit counts.
func tierList(v interface{}) ([]model.TicketType, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("tierList: error marshalling ticket types: %w", err)
	}

	var tiers []model.TicketType
	if err := json.Unmarshal(raw, &tiers); err != nil {
		return nil, fmt.Errorf("tierList: error unmarshalling ticket types: %w", err)
	}

	for i, tier := range tiers {
		if tier.Price < 0 {
			return nil, fmt.Errorf("tierList: tier %d: negative price", i)
		}
		if tier.Permits < 0 {
			return nil, fmt.Errorf("tierList: tier %d: negative permits", i)
		}
	}
	return tiers, nil
}

func venue(f Form) (*model.Record, error) {
	r := &model.Record{}
	r.Set("name", text(f, "name"))
	r.Set("location", text(f, "location", "address"))
	r.Set("image_url", first(f, "image_url", "imageUrl"))
	r.Set("capacity", whole(f, "capacity"))
	r.Set("cost_per_slot", number(f, "cost_per_slot", "price_per_slot", "pricePerSlot"))
	r.Set("amenities", tags(text(f, "amenities")))
	r.Set("menu", list(f, "menu"))
	r.Set("gallery", list(f, "gallery"))
	r.Set("event_photos", list(f, "event_photos", "eventPhotos"))
	if v, ok := pick(f, "available_slots", "availableSlots"); ok {
		slots, err := slotList(v)
		if err != nil {
			return nil, fmt.Errorf("venue: %w", err)
		}
		r.Set("available_slots", slots)
	}

	// Nested details object, absent fields stay absent rather than null.
	details := map[string]string{}
	for col, keys := range map[string][]string{
		"address":     {"address", "location"},
		"description": {"description"},
		"map_url":     {"map_url", "mapUrl"},
		"equipment":   {"equipment"},
	} {
		if v := text(f, keys...); v != "" {
			details[col] = v
		}
	}
	r.Set("details", details)
	return r, nil
}

func category(f Form) (*model.Record, error) {
	icon := text(f, "icon")
	if icon != "" && !validIcon(icon) {
		return nil, fmt.Errorf("category: unknown icon: %q", icon)
	}
	r := &model.Record{}
	r.Set("name", text(f, "name"))
	r.Set("icon", icon)
	return r, nil
}

// promo keeps both link branches as submitted. link_type alone decides
// which one the reader follows, so a stale value on the inactive branch
// is harmless and must not be blanked.
func promo(f Form) (*model.Record, error) {
	linkType := text(f, "link_type", "linkType")
	if linkType != "" && linkType != "event" && linkType != "url" {
		return nil, fmt.Errorf("promo: invalid link_type: %q", linkType)
	}
	r := &model.Record{}
	r.Set("title", text(f, "title"))
	r.Set("subtitle", text(f, "subtitle"))
	r.Set("background_url", first(f, "background_url", "backgroundUrl"))
	r.Set("event_id", whole(f, "event_id", "eventId"))
	r.Set("link_type", linkType)
	r.Set("button_link", text(f, "button_link", "buttonLink"))
	r.Set("button_text", text(f, "button_text", "buttonText"))
	return r, nil
}

func partner(f Form) (*model.Record, error) {
	r := &model.Record{}
	r.Set("name", text(f, "name"))
	r.Set("logo_url", first(f, "logo_url", "logoUrl"))
	r.Set("website_url", text(f, "website_url", "websiteUrl"))
	return r, nil
}

func gallery(f Form) (*model.Record, error) {
	r := &model.Record{}
	r.Set("event_id", whole(f, "event_id", "eventId"))
	r.Set("image_urls", list(f, "image_urls", "imageUrls"))
	r.Set("caption", text(f, "caption"))
	return r, nil
}

func highlight(f Form) (*model.Record, error) {
	r := &model.Record{}
	r.Set("event_id", whole(f, "event_id", "eventId"))
	r.Set("media_url", list(f, "media_url", "mediaUrl"))
	r.Set("caption", text(f, "caption"))
	return r, nil
}

func organizer(f Form) (*model.Record, error) {
	r := &model.Record{}
	r.Set("name", text(f, "name"))
	r.Set("username", text(f, "username"))
	if v := text(f, "password"); v != "" {
		r.Set("password", v)
	}
	role := text(f, "role")
	if role == "" {
		role = model.RoleOrganizer
	}
	r.Set("role", role)
	return r, nil
}

var slotDays = map[string]bool{
	"Mon": true, "Tue": true, "Wed": true, "Thu": true,
	"Fri": true, "Sat": true, "Sun": true,
}

// slotList rebuilds the submitted slot objects through the model type,
// which drops draft keys and any stray fields, then checks each window.
func slotList(v interface{}) ([]model.Slot, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("slotList: error marshalling slots: %w", err)
	}

	var slots []model.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, fmt.Errorf("slotList: error unmarshalling slots: %w", err)
	}

	for i, s := range slots {
		if !slotDays[s.Day] {
			return nil, fmt.Errorf("slotList: slot %d: invalid day: %q", i, s.Day)
		}
		if !timeenc.Valid(s.Start) {
			return nil, fmt.Errorf("slotList: slot %d: invalid start time: %q", i, s.Start)
		}
		if !timeenc.Valid(s.End) {
			return nil, fmt.Errorf("slotList: slot %d: invalid end time: %q", i, s.End)
		}
	}
	return slots, nil
}

func validIcon(icon string) bool {
	for _, i := range model.CategoryIcons {
		if i == icon {
			return true
		}
	}
	return false
}

func pick(f Form, keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := f[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func text(f Form, keys ...string) string {
	v, ok := pick(f, keys...)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return ""
}

func number(f Form, keys ...string) float64 {
	v, ok := pick(f, keys...)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return parsed
	}
	return 0
}

func whole(f Form, keys ...string) int64 {
	return int64(number(f, keys...))
}

// list coerces a form value into a URL or text list. A lone string counts
// as a single-element list.
func list(f Form, keys ...string) []string {
	v, ok := pick(f, keys...)
	if !ok {
		return []string{}
	}
	switch vv := v.(type) {
	case []string:
		return vv
	case []interface{}:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		if strings.TrimSpace(vv) == "" {
			return []string{}
		}
		return []string{strings.TrimSpace(vv)}
	}
	return []string{}
}

// first collapses an array-emitting uploader value into the one URL a
// single-valued column holds.
func first(f Form, keys ...string) string {
	items := list(f, keys...)
	if len(items) == 0 {
		return ""
	}
	return items[0]
}

// tags splits comma-separated text, trims each entry and drops empties.
func tags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func recordID(f Form) int64 {
	v, ok := f["id"]
	if !ok {
		return 0
	}
	var id int64
	switch n := v.(type) {
	case float64:
		id = int64(n)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0
		}
		id = parsed
	}
	if id < 1 {
		return 0
	}
	return id
}
