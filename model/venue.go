package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Slot is one bookable window at a venue. The ID is a draft key handed to
// the admin UI so rows can be addressed before saving; it is never written
// to the store.
type Slot struct {
	ID    string `json:"-"`
	Day   string `json:"day"`
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type VenueDetails struct {
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	MapURL      string `json:"map_url,omitempty"`
	Equipment   string `json:"equipment,omitempty"`
}

type Venue struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Location       string       `json:"location"`
	ImageURL       string       `json:"image_url"`
	Capacity       int64        `json:"capacity"`
	CostPerSlot    float64      `json:"cost_per_slot"`
	Amenities      []string     `json:"amenities"`
	Details        VenueDetails `json:"details"`
	Menu           []string     `json:"menu"`
	Gallery        []string     `json:"gallery"`
	EventPhotos    []string     `json:"event_photos"`
	AvailableSlots []Slot       `json:"available_slots"`
}

// AddSlot appends the draft with a fresh key. Day defaults are the
// caller's concern, slot times must already be "HH:MM".
func (v *Venue) AddSlot(s Slot) Slot {
	s.ID = uuid.NewString()
	v.AvailableSlots = append(v.AvailableSlots, s)
	return s
}

// RemoveSlot deletes by position. Slots carry no persisted identity, so
// position is the only stable address within one edit session.
func (v *Venue) RemoveSlot(i int) error {
	if i < 0 || i >= len(v.AvailableSlots) {
		return fmt.Errorf("removeSlot: index out of range: %d", i)
	}
	v.AvailableSlots = append(v.AvailableSlots[:i], v.AvailableSlots[i+1:]...)
	return nil
}

// SlotsJSON serializes the slot list for the jsonb column.
func (v *Venue) SlotsJSON() ([]byte, error) {
	if v.AvailableSlots == nil {
		return []byte("[]"), nil
	}
	b, err := json.Marshal(v.AvailableSlots)
	if err != nil {
		return nil, fmt.Errorf("slotsJSON: error marshalling slots: %w", err)
	}
	return b, nil
}

// ScanSlots restores the slot list from the stored column.
func (v *Venue) ScanSlots(raw []byte) error {
	if len(raw) == 0 {
		v.AvailableSlots = nil
		return nil
	}
	if err := json.Unmarshal(raw, &v.AvailableSlots); err != nil {
		return fmt.Errorf("scanSlots: error unmarshalling slots: %w", err)
	}
	return nil
}
