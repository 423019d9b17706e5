package model

import "fmt"

// Kind identifies one of the managed content types. Handlers resolve the
// kind from the URL and every layer below dispatches on it through a
// finite registry, never by building names from strings.
type Kind string

const (
	KindEvent     Kind = "event"
	KindVenue     Kind = "venue"
	KindCategory  Kind = "category"
	KindPromo     Kind = "promo"
	KindPartner   Kind = "partner"
	KindGallery   Kind = "gallery"
	KindHighlight Kind = "highlight"
	KindOrganizer Kind = "organizer"
)

var kinds = map[string]Kind{
	"event":     KindEvent,
	"venue":     KindVenue,
	"category":  KindCategory,
	"promo":     KindPromo,
	"partner":   KindPartner,
	"gallery":   KindGallery,
	"highlight": KindHighlight,
	"organizer": KindOrganizer,
}

func ParseKind(s string) (Kind, error) {
	k, ok := kinds[s]
	if !ok {
		return "", fmt.Errorf("parseKind: unknown content kind: %q", s)
	}
	return k, nil
}

func Kinds() []Kind {
	return []Kind{
		KindEvent, KindVenue, KindCategory, KindPromo,
		KindPartner, KindGallery, KindHighlight, KindOrganizer,
	}
}
