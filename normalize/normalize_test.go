package normalize

import (
	"testing"

	"partyinbangalore-backend/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueFormKeysLandUnderPersistedNames(t *testing.T) {
	form := Form{
		"name":          "Skybar",
		"address":       "12 MG Road",
		"pricePerSlot":  "4500",
		"capacity":      float64(120),
		"amenities":     " DJ , Rooftop ,, Parking ",
		"mapUrl":        "https://maps.example/skybar",
		"description":   "Rooftop lounge",
		"ignoredUIOnly": "x",
	}
	rec, err := Normalize(model.KindVenue, form, Uploads{"imageUrl": {"https://cdn/img1.jpg"}})
	require.NoError(t, err)

	loc, ok := rec.Value("location")
	require.True(t, ok)
	assert.Equal(t, "12 MG Road", loc)

	cost, ok := rec.Value("cost_per_slot")
	require.True(t, ok)
	assert.Equal(t, 4500.0, cost)

	img, ok := rec.Value("image_url")
	require.True(t, ok)
	assert.Equal(t, "https://cdn/img1.jpg", img)

	am, ok := rec.Value("amenities")
	require.True(t, ok)
	assert.Equal(t, []string{"DJ", "Rooftop", "Parking"}, am)

	details, ok := rec.Value("details")
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"address":     "12 MG Road",
		"description": "Rooftop lounge",
		"map_url":     "https://maps.example/skybar",
	}, details)

	// No form-side spelling survives into the payload.
	for _, uiKey := range []string{"address", "pricePerSlot", "mapUrl", "ignoredUIOnly"} {
		assert.False(t, rec.Has(uiKey), "leaked form key %q", uiKey)
	}
}

func TestVenueDetailsOmitsAbsentFields(t *testing.T) {
	rec, err := Normalize(model.KindVenue, Form{"name": "Den"}, nil)
	require.NoError(t, err)

	details, ok := rec.Value("details")
	require.True(t, ok)
	assert.Equal(t, map[string]string{}, details)
}

func TestPromoKeepsInactiveBranch(t *testing.T) {
	form := Form{
		"title":      "Friday Night",
		"linkType":   "url",
		"buttonLink": "https://tickets.example/f",
		"eventId":    float64(42),
		"buttonText": "Book now",
	}
	rec, err := Normalize(model.KindPromo, form, Uploads{"backgroundUrl": {"https://cdn/a.jpg", "https://cdn/b.jpg"}})
	require.NoError(t, err)

	linkType, _ := rec.Value("link_type")
	assert.Equal(t, "url", linkType)

	link, _ := rec.Value("button_link")
	assert.Equal(t, "https://tickets.example/f", link)

	// The event branch is inactive but its value is retained untouched.
	eventID, _ := rec.Value("event_id")
	assert.Equal(t, int64(42), eventID)

	// Single-valued column collapses to the first uploaded URL.
	bg, _ := rec.Value("background_url")
	assert.Equal(t, "https://cdn/a.jpg", bg)
}

func TestPromoRejectsUnknownLinkType(t *testing.T) {
	_, err := Normalize(model.KindPromo, Form{"linkType": "deeplink"}, nil)
	assert.Error(t, err)
}

func TestPartnerLogoCollapses(t *testing.T) {
	rec, err := Normalize(model.KindPartner, Form{"name": "BrewCo", "websiteUrl": "https://brew.co"}, Uploads{"logoUrl": {"https://cdn/logo.png"}})
	require.NoError(t, err)

	logo, _ := rec.Value("logo_url")
	assert.Equal(t, "https://cdn/logo.png", logo)

	site, _ := rec.Value("website_url")
	assert.Equal(t, "https://brew.co", site)
}

func TestRecordIDDiscrimination(t *testing.T) {
	rec, err := Normalize(model.KindCategory, Form{"name": "Techno", "icon": "disc", "id": "17"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(17), rec.ID)
	assert.False(t, rec.Persisted)
	assert.False(t, rec.Has("id"))

	rec, err = Normalize(model.KindCategory, Form{"name": "Techno", "icon": "disc", "id": "draft-abc"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.ID)

	rec, err = Normalize(model.KindCategory, Form{"name": "Techno", "icon": "disc", "id": float64(-3)}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.ID)
}

func TestCategoryIconVocabulary(t *testing.T) {
	_, err := Normalize(model.KindCategory, Form{"name": "Live", "icon": "music"}, nil)
	assert.NoError(t, err)

	_, err = Normalize(model.KindCategory, Form{"name": "Live", "icon": "violin"}, nil)
	assert.Error(t, err)
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "poster_images", SnakeCase("posterImages"))
	assert.Equal(t, "background_url", SnakeCase("backgroundUrl"))
	assert.Equal(t, "name", SnakeCase("name"))
}

func TestVenueSlotsScrubbedAndValidated(t *testing.T) {
	form := Form{
		"name": "Skybar",
		"availableSlots": []interface{}{
			map[string]interface{}{"id": "draft-1", "day": "Fri", "name": "Evening", "start": "18:00", "end": "22:00"},
		},
	}
	rec, err := Normalize(model.KindVenue, form, nil)
	require.NoError(t, err)

	slots, ok := rec.Value("available_slots")
	require.True(t, ok)
	typed, ok := slots.([]model.Slot)
	require.True(t, ok)
	require.Len(t, typed, 1)
	assert.Empty(t, typed[0].ID, "draft key must not survive normalization")
	assert.Equal(t, "Fri", typed[0].Day)

	form["availableSlots"] = []interface{}{
		map[string]interface{}{"day": "Fri", "name": "Evening", "start": "25:00", "end": "22:00"},
	}
	_, err = Normalize(model.KindVenue, form, nil)
	assert.Error(t, err)

	form["availableSlots"] = []interface{}{
		map[string]interface{}{"day": "Friday", "name": "Evening", "start": "18:00", "end": "22:00"},
	}
	_, err = Normalize(model.KindVenue, form, nil)
	assert.Error(t, err)
}

func TestHighlightKeepsEveryMediaURL(t *testing.T) {
	uploads := Uploads{"mediaUrl": {
		"https://cdn/story1.mp4",
		"https://cdn/story2.mp4",
		"https://cdn/story3.mp4",
	}}
	rec, err := Normalize(model.KindHighlight, Form{"event_id": float64(4), "caption": "Teaser"}, uploads)
	require.NoError(t, err)

	media, ok := rec.Value("media_url")
	require.True(t, ok)
	assert.Equal(t, []string{
		"https://cdn/story1.mp4",
		"https://cdn/story2.mp4",
		"https://cdn/story3.mp4",
	}, media)
}

func TestEventTicketTiersRebuiltAndChecked(t *testing.T) {
	form := Form{
		"title": "Warehouse Rave",
		"ticketTypes": []interface{}{
			map[string]interface{}{"name": "Stag", "price": float64(499), "permits": float64(1), "junk": "x"},
			map[string]interface{}{"name": "Couple", "price": float64(899), "permits": float64(2)},
		},
	}
	rec, err := Normalize(model.KindEvent, form, nil)
	require.NoError(t, err)

	v, ok := rec.Value("ticket_types")
	require.True(t, ok)
	tiers, ok := v.([]model.TicketType)
	require.True(t, ok)
	require.Len(t, tiers, 2)
	assert.Equal(t, "Stag", tiers[0].Name)
	assert.Equal(t, 2, tiers[1].Permits)

	form["ticketTypes"] = []interface{}{
		map[string]interface{}{"name": "Stag", "price": float64(-1), "permits": float64(1)},
	}
	_, err = Normalize(model.KindEvent, form, nil)
	assert.Error(t, err)
}

func TestEventUploaderListStaysAList(t *testing.T) {
	rec, err := Normalize(model.KindEvent, Form{"title": "Warehouse Rave"}, Uploads{"posterImages": {"https://cdn/1.jpg", "https://cdn/2.jpg"}})
	require.NoError(t, err)

	posters, _ := rec.Value("poster_images")
	assert.Equal(t, []string{"https://cdn/1.jpg", "https://cdn/2.jpg"}, posters)
}
