// Package menu composes the secondary action list shown for a media item.
// Composition is pure string templating; identical input always yields the
// same actions in the same order.
package menu

import (
	"net/url"

	"github.com/linernotes/liner/internal/domain"
)

const (
	songLinkBase   = "https://song.link/"
	googleSearch   = "https://www.google.com/search?q="
	songLinkLabel  = "Other Streaming Services"
	googleLabel    = "Search on Google"
	extraControlID = "extra"
)

// Extra is an optional caller-supplied link placed ahead of the fixed
// entries. It is only included when both fields are set.
type Extra struct {
	Label string
	URL   string
}

// Compose builds the menu action list for an item: the optional extra link
// first, then an alternate-source link templated from the item's canonical
// external reference, then an external search link with the item's display
// name (and, for composite items, its artist names) percent-encoded.
func Compose(item domain.ItemMeta, extra *Extra) []domain.Control {
	var controls []domain.Control

	if extra != nil && extra.Label != "" && extra.URL != "" {
		controls = append(controls, domain.Control{
			ID:    extraControlID,
			Label: extra.Label,
			URL:   extra.URL,
		})
	}

	controls = append(controls, domain.Control{
		ID:    "songlink",
		Label: songLinkLabel,
		URL:   songLinkBase + item.ExternalURL,
	})

	query := url.QueryEscape(item.Name)
	if item.Artists != "" {
		query += "+" + url.QueryEscape(item.Artists)
	}
	controls = append(controls, domain.Control{
		ID:    "google",
		Label: googleLabel,
		URL:   googleSearch + query,
	})

	return controls
}
