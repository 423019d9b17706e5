package model

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// CategoryIcons is the fixed icon vocabulary offered by the admin form.
var CategoryIcons = []string{
	"music", "glass-water", "disc", "headphones", "plug-zap",
	"party-popper", "rocket", "beer", "star", "award", "camera",
}

// Promo links either to an event or to an external URL. LinkType selects
// which branch is live; the other branch keeps whatever value it had.
type Promo struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	BackgroundURL string `json:"background_url"`
	EventID       int64  `json:"event_id"`
	LinkType      string `json:"link_type"`
	ButtonLink    string `json:"button_link"`
	ButtonText    string `json:"button_text"`
}

type Partner struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	LogoURL    string `json:"logo_url"`
	WebsiteURL string `json:"website_url"`
}

type Gallery struct {
	ID         int64    `json:"id"`
	EventID    int64    `json:"event_id"`
	ImageURLs  []string `json:"image_urls"`
	Caption    string   `json:"caption"`
	EventTitle string   `json:"event_title,omitempty"`
}

// Highlight carries the ordered story media of one event. The first URL
// doubles as the story cover.
type Highlight struct {
	ID         int64    `json:"id"`
	EventID    int64    `json:"event_id"`
	MediaURLs  []string `json:"media_url"`
	Caption    string   `json:"caption"`
	EventTitle string   `json:"event_title,omitempty"`
}

// Story is the public story-viewer shape composed from the highlights of
// one event: a cover plus the ordered media list.
type Story struct {
	EventID    int64    `json:"event_id"`
	EventTitle string   `json:"event_title"`
	CoverURL   string   `json:"cover_url"`
	MediaURLs  []string `json:"media_urls"`
}

type Organizer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Option is one entry of a form selector list, such as the venue picker
// on the event form.
type Option struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}
